package handler

import "pokedex/internal/pokedex"

// StateResponse is returned by every pokedex endpoint. CurrentID is null once
// a search has missed.
type StateResponse struct {
	Record    pokedex.Record `json:"record"`
	CurrentID *int           `json:"current_id"`
}

func newStateResponse(record pokedex.Record, current int, ok bool) StateResponse {
	resp := StateResponse{Record: record}
	if ok {
		resp.CurrentID = &current
	}
	return resp
}
