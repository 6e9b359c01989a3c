package handler

import (
	"unicode/utf8"

	dErrors "pokedex/pkg/domain-errors"
)

const maxQueryLength = 100

// SearchRequest is the body of POST /pokedex/search. An empty query is valid
// and yields the not-found record.
type SearchRequest struct {
	Query string `json:"query"`
}

func (r *SearchRequest) Validate() error {
	if utf8.RuneCountInString(r.Query) > maxQueryLength {
		return dErrors.New(dErrors.CodeValidation, "query is too long")
	}
	return nil
}
