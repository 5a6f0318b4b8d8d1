package compare

import (
	"fmt"

	"github.com/gx14ac/zart/internal/metrics"
)

// Reason explains why a ratio could not be computed.
type Reason string

const (
	MissingBaseline  Reason = "missing-baseline"
	MissingCandidate Reason = "missing-candidate"
	ZeroBaseline     Reason = "zero-baseline"
)

// InvalidMetricError reports a measurement that violates the non-negative
// invariant. The loaders reject negative values, so hitting this means the
// store was built by hand with bad data; the run aborts rather than letting
// a negative ratio through.
type InvalidMetricError struct {
	Op    metrics.Op
	Value float64
}

func (e *InvalidMetricError) Error() string {
	return fmt.Sprintf("negative measurement %g for %s", e.Value, e.Op)
}

// Entry is the comparison result for one operation. When Defined is false
// the Ratio and Verdict fields are meaningless and Reason says why.
type Entry struct {
	Op        metrics.Op
	Baseline  metrics.Value
	Candidate metrics.Value
	Ratio     float64
	Verdict   Verdict
	Defined   bool
	Reason    Reason
}

// Compute derives one Entry per operation, in the caller-supplied order.
// ratio = candidate / baseline, with no rounding; rounding is left to the
// renderers. An unavailable record or a zero baseline yields an undefined
// entry instead of Inf or NaN.
func Compute(store *metrics.Store, baseline, candidate string, ops []metrics.Op) ([]Entry, error) {
	entries := make([]Entry, 0, len(ops))
	for _, op := range ops {
		e := Entry{
			Op:        op,
			Baseline:  store.Get(baseline, op),
			Candidate: store.Get(candidate, op),
		}

		b, bOK := e.Baseline.Float()
		c, cOK := e.Candidate.Float()
		if bOK && b < 0 {
			return nil, &InvalidMetricError{Op: op, Value: b}
		}
		if cOK && c < 0 {
			return nil, &InvalidMetricError{Op: op, Value: c}
		}

		switch {
		case !bOK:
			e.Reason = MissingBaseline
		case !cOK:
			e.Reason = MissingCandidate
		case b == 0:
			e.Reason = ZeroBaseline
		default:
			e.Ratio = c / b
			e.Verdict = Classify(e.Ratio)
			e.Defined = true
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Defined filters entries down to the ones with a computable ratio,
// preserving order.
func Defined(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Defined {
			out = append(out, e)
		}
	}
	return out
}
