// Package e2e drives the pokedex HTTP surface through godog scenarios against
// an in-process catalog.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"

	"pokedex/internal/catalog"
	httpapi "pokedex/internal/http"
	"pokedex/internal/pokedex"
	"pokedex/internal/pokedex/handler"
	"pokedex/pkg/platform/circuit"
)

// lastEntry is the highest id the fake catalog knows.
const lastEntry = 151

var names = map[int]string{
	1:   "bulbasaur",
	2:   "ivysaur",
	4:   "charmander",
	25:  "pikachu",
	150: "mewtwo",
	151: "mew",
}

// TestContext holds one scenario's server, catalog and last response.
type TestContext struct {
	catalog    *httptest.Server
	server     *httptest.Server
	outage     atomic.Bool
	entityHits atomic.Int32

	status int
	body   map[string]any
	header http.Header
}

// Start resets the context, then starts a fake catalog and a pokedex server
// wired to it.
func (tc *TestContext) Start() error {
	tc.outage.Store(false)
	tc.entityHits.Store(0)
	tc.status, tc.body, tc.header = 0, nil, nil
	tc.catalog = httptest.NewServer(http.HandlerFunc(tc.serveCatalog))

	logger := slog.New(slog.DiscardHandler)
	client := catalog.New(tc.catalog.URL,
		catalog.WithBreaker(circuit.New("catalog", circuit.WithFailureThreshold(2))),
	)
	nav, err := pokedex.NewNavigator(client,
		pokedex.WithPlaceholderImage(tc.catalog.URL+"/placeholder.jpg"),
	)
	if err != nil {
		tc.catalog.Close()
		return err
	}
	h := handler.New(nav, logger, client.Degraded)
	h.Seed(context.Background())
	// Scenarios count catalog traffic from their own first step.
	tc.entityHits.Store(0)
	tc.server = httptest.NewServer(httpapi.NewRouter(h, nil, logger))
	return nil
}

func (tc *TestContext) Close() {
	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}
	if tc.catalog != nil {
		tc.catalog.Close()
		tc.catalog = nil
	}
}

// SetOutage makes every catalog JSON endpoint answer 503.
func (tc *TestContext) SetOutage(down bool) {
	tc.outage.Store(down)
}

func (tc *TestContext) EntityHits() int {
	return int(tc.entityHits.Load())
}

func nameOf(id int) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("entry-%d", id)
}

func (tc *TestContext) lookup(segment string) (int, bool) {
	var id int
	if _, err := fmt.Sscanf(segment, "%d", &id); err == nil && fmt.Sprint(id) == segment {
		return id, id >= 1 && id <= lastEntry
	}
	for id, name := range names {
		if name == segment {
			return id, true
		}
	}
	return 0, false
}

func (tc *TestContext) serveCatalog(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == "/placeholder.jpg" || strings.HasPrefix(path, "/art/"):
		_, _ = w.Write([]byte{0xff, 0xd8})
		return
	case tc.outage.Load():
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	case strings.HasPrefix(path, "/pokemon-species/"):
		_, _ = io.WriteString(w, `{"flavor_text_entries": [{"flavor_text": "Seen in the wild.", "language": {"name": "en"}}]}`)
		return
	case strings.HasPrefix(path, "/pokemon/"):
		tc.entityHits.Add(1)
		id, ok := tc.lookup(strings.TrimPrefix(path, "/pokemon/"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"id": %[1]d, "name": %[2]q,
			"types": [{"slot": 1, "type": {"name": "normal"}}],
			"species": {"name": %[2]q, "url": "%[3]s/pokemon-species/%[1]d/"},
			"abilities": [{"slot": 1, "ability": {"name": "run-away"}}],
			"stats": [{"base_stat": 50, "stat": {"name": "hp"}}],
			"sprites": {"other": {"official-artwork": {"front_default": "%[3]s/art/%[1]d.png"}}},
			"weight": 69, "height": 7}`, id, nameOf(id), tc.catalog.URL)
	default:
		http.NotFound(w, r)
	}
}

// POST sends a JSON request to the pokedex server and records the response.
func (tc *TestContext) POST(path string, body any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	resp, err := http.Post(tc.server.URL+path, "application/json", reader)
	if err != nil {
		return err
	}
	return tc.record(resp)
}

func (tc *TestContext) GET(path string) error {
	resp, err := http.Get(tc.server.URL + path)
	if err != nil {
		return err
	}
	return tc.record(resp)
}

func (tc *TestContext) record(resp *http.Response) error {
	defer resp.Body.Close()
	tc.status = resp.StatusCode
	tc.header = resp.Header
	tc.body = nil
	return json.NewDecoder(resp.Body).Decode(&tc.body)
}

func (tc *TestContext) StatusCode() int {
	return tc.status
}

func (tc *TestContext) Header(key string) string {
	return tc.header.Get(key)
}

// RecordField returns a string field of the last response's record.
func (tc *TestContext) RecordField(field string) (string, error) {
	record, ok := tc.body["record"].(map[string]any)
	if !ok {
		return "", fmt.Errorf("response has no record: %v", tc.body)
	}
	v, ok := record[field].(string)
	if !ok {
		return "", fmt.Errorf("record field %q missing or not a string", field)
	}
	return v, nil
}

// CurrentID returns the position reported by the last response.
func (tc *TestContext) CurrentID() (int, bool) {
	v, ok := tc.body["current_id"].(float64)
	if !ok {
		return 0, false
	}
	return int(v), true
}
