// Package compare derives candidate/baseline performance ratios from a
// measurement store and classifies them into verdict tiers.
package compare

// Verdict is the discrete classification of a performance ratio.
type Verdict int

const (
	// Faster: the candidate beat the baseline (ratio < 1.0).
	Faster Verdict = iota
	// Good: within 2x of the baseline (1.0 <= ratio <= 2.0).
	Good
	// NeedsImprovement: more than 2x slower than the baseline.
	NeedsImprovement
)

func (v Verdict) String() string {
	switch v {
	case Faster:
		return "faster"
	case Good:
		return "good"
	case NeedsImprovement:
		return "needs improvement"
	default:
		return "unknown"
	}
}

// Classify maps a finite non-negative ratio to its verdict tier. Both
// boundaries are inclusive on the Good side: exactly 1.0 and exactly 2.0
// are Good.
func Classify(ratio float64) Verdict {
	switch {
	case ratio < 1.0:
		return Faster
	case ratio <= 2.0:
		return Good
	default:
		return NeedsImprovement
	}
}
