package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseItemIDs parses a client-supplied item-id list such as "1,2,3" or
// "1 2, 3" into an ordered slice of ids. Tokens may be separated by any run
// of commas and/or spaces. Order is preserved and duplicates are kept — the
// create path intentionally inserts one association row per submitted id.
//
// Both the list filter and the create path use this single function, so the
// two endpoints can never drift in how they read the items field.
// An empty list or a non-integer token returns an error wrapping ErrValidation.
func ParseItemIDs(s string) ([]int64, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: items list is empty", ErrValidation)
	}

	ids := make([]int64, 0, len(tokens))
	for _, tok := range tokens {
		id, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid item id %q", ErrValidation, tok)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
