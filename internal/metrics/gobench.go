package metrics

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/perf/benchfmt"
)

var gomaxprocsSuffix = regexp.MustCompile(`-\d+$`)

// opFromBenchName maps a Go benchmark name to an operation. The leading
// "Benchmark" prefix and the trailing GOMAXPROCS suffix are stripped, and the
// first subtest segment becomes the scenario:
//
//	BenchmarkContains/IPv4-14  ->  Op{Name: "Contains", Scenario: "IPv4"}
//	BenchmarkLookupPrefix-8    ->  Op{Name: "LookupPrefix"}
func opFromBenchName(full string) Op {
	full = strings.TrimPrefix(full, "Benchmark")
	full = strings.TrimPrefix(full, "_")
	full = gomaxprocsSuffix.ReplaceAllString(full, "")
	name, scenario, _ := strings.Cut(full, "/")
	return Op{Name: name, Scenario: scenario}
}

// LoadGoBench reads `go test -bench` output and records each benchmark's
// ns/op under the given implementation name. Multiple runs of the same
// benchmark (-count > 1) keep the first result; later duplicates of a name
// are averaged into it so repeated runs do not trip the conflict check.
func LoadGoBench(r io.Reader, impl, source string) (*Store, error) {
	s := NewStore()
	sums := make(map[Op]float64)
	counts := make(map[Op]int)

	reader := benchfmt.NewReader(r, source)
	for reader.Scan() {
		res, ok := reader.Result().(*benchfmt.Result)
		if !ok {
			// Syntax errors and unknown records are skipped, matching
			// how benchstat treats stray output lines.
			continue
		}
		ns, ok := res.Value("ns/op")
		if !ok {
			continue
		}
		if ns < 0 {
			return nil, &FormatError{Source: source, Reason: "negative ns/op for " + string(res.Name.Full())}
		}
		op := opFromBenchName(string(res.Name.Full()))
		sums[op] += ns
		counts[op]++
		if counts[op] == 1 {
			if err := s.Add(Record{Impl: impl, Op: op, Unit: "ns/op", Value: Val(ns)}); err != nil {
				return nil, err
			}
		}
	}
	if err := reader.Err(); err != nil {
		return nil, &FormatError{Source: source, Reason: err.Error()}
	}
	if s.Len() == 0 {
		return nil, &FormatError{Source: source, Reason: "no benchmark results"}
	}

	// Replace first-run values with per-op averages.
	for op, n := range counts {
		if n > 1 {
			s.records[Key{Impl: impl, Op: op}] = Record{
				Impl: impl, Op: op, Unit: "ns/op", Value: Val(sums[op] / float64(n)),
			}
		}
	}
	return s, nil
}
