package pulse

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when an aggregate needs a non-zero population
// and the table has no rows.
var ErrEmptyDataset = errors.New("empty dataset")

// SchemaMismatchError reports an input that does not conform to the
// employee schema: a missing or unexpected column, or a cell that cannot be
// coerced to its declared type. The whole load fails; there is no partial
// recovery.
type SchemaMismatchError struct {
	Column string
	Row    int // 1-based data row; 0 for header-level problems
	Reason string
}

func (e *SchemaMismatchError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("schema mismatch: column %s, row %d: %s", e.Column, e.Row, e.Reason)
	}
	if e.Column != "" {
		return fmt.Sprintf("schema mismatch: column %s: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("schema mismatch: %s", e.Reason)
}
