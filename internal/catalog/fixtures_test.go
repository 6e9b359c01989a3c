package catalog

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

const bulbasaurJSON = `{
	"id": 1,
	"name": "bulbasaur",
	"types": [
		{"slot": 1, "type": {"name": "grass", "url": "https://pokeapi.co/api/v2/type/12/"}},
		{"slot": 2, "type": {"name": "poison", "url": "https://pokeapi.co/api/v2/type/4/"}}
	],
	"species": {"name": "bulbasaur", "url": "%s/pokemon-species/1/"},
	"abilities": [
		{"ability": {"name": "overgrow", "url": ""}, "is_hidden": false, "slot": 1},
		{"ability": {"name": "chlorophyll", "url": ""}, "is_hidden": true, "slot": 3}
	],
	"stats": [
		{"base_stat": 45, "effort": 0, "stat": {"name": "hp", "url": ""}},
		{"base_stat": 65, "effort": 1, "stat": {"name": "special-attack", "url": ""}}
	],
	"sprites": {"other": {"official-artwork": {"front_default": "%s/artwork/1.png"}}},
	"weight": 69,
	"height": 7
}`

const speciesJSON = `{
	"id": 1,
	"name": "bulbasaur",
	"flavor_text_entries": [
		{"flavor_text": "Fushigi na tane", "language": {"name": "ja", "url": ""}, "version": {"name": "red", "url": ""}},
		{"flavor_text": "A strange seed was planted on its back at birth.", "language": {"name": "en", "url": ""}, "version": {"name": "red", "url": ""}},
		{"flavor_text": "A later english entry.", "language": {"name": "en", "url": ""}, "version": {"name": "blue", "url": ""}}
	]
}`

// fakeCatalog serves a one-entry catalog and counts every request.
type fakeCatalog struct {
	server *httptest.Server
	hits   atomic.Int32
	status atomic.Int32 // forced status for every route when non-zero
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	f := &fakeCatalog{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		if forced := f.status.Load(); forced != 0 {
			w.WriteHeader(int(forced))
			return
		}
		switch r.URL.Path {
		case "/pokemon/1", "/pokemon/bulbasaur":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, bulbasaurJSON, f.server.URL, f.server.URL)
		case "/pokemon-species/1/":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(speciesJSON))
		case "/artwork/1.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("\x89PNG-bytes"))
		case "/pokemon/broken":
			_, _ = w.Write([]byte(`{"id": `))
		case "/pokemon/":
			_, _ = w.Write([]byte(`{"count": 1302, "results": []}`))
		default:
			if strings.HasPrefix(r.URL.Path, "/pokemon/") {
				http.NotFound(w, r)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCatalog) URL() string {
	return f.server.URL
}
