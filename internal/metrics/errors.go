package metrics

import "fmt"

// FormatError reports a source that is missing required fields or carries a
// negative or non-numeric value. It is fatal: the input cannot be trusted.
type FormatError struct {
	Source string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Source == "" {
		return "bad measurement data: " + e.Reason
	}
	return fmt.Sprintf("bad measurement data in %s: %s", e.Source, e.Reason)
}

// ConflictError reports two records sharing the same (implementation,
// operation, scenario) key within one load. Duplicates are never silently
// overwritten; they usually mean a data-entry mistake.
type ConflictError struct {
	Key Key
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate measurement for %s", e.Key)
}
