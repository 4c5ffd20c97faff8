package ledger

import (
	"fmt"
	"strings"
)

// ValidationError reports bad user input: a non-positive amount, an unknown
// transaction type, or a category outside the taxonomy for that type.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation referencing a nonexistent transaction.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("transaction %s not found", e.ID)
}

// SchemaError reports a persisted or imported payload that does not match
// the ledger schema: required top-level fields are missing, or the payload
// is not valid JSON at all.
type SchemaError struct {
	Missing []string
	Reason  string
}

func (e SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("ledger payload missing required fields: %s", strings.Join(e.Missing, ", "))
	}
	return "malformed ledger payload: " + e.Reason
}
