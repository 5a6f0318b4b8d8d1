package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanBench = `goos: linux
goarch: amd64
pkg: github.com/gx14ac/zart
BenchmarkContains/IPv4-14 	214170000	         5.523 ns/op
BenchmarkLookup/IPv4-14 	69812345	        17.15 ns/op
BenchmarkLookupPrefix/IPv4-14 	59123456	        20.22 ns/op
PASS
`

func TestOpFromBenchName(t *testing.T) {
	cases := map[string]Op{
		"BenchmarkContains/IPv4-14":  {Name: "Contains", Scenario: "IPv4"},
		"BenchmarkLookupPrefix-8":    {Name: "LookupPrefix"},
		"Benchmark_Contains/IPv6-14": {Name: "Contains", Scenario: "IPv6"},
		"BenchmarkMissLookup/IPv4":   {Name: "MissLookup", Scenario: "IPv4"},
	}
	for full, want := range cases {
		assert.Equal(t, want, opFromBenchName(full), full)
	}
}

func TestLoadGoBench(t *testing.T) {
	s, err := LoadGoBench(strings.NewReader(cleanBench), "bart", "bench.txt")
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"bart"}, s.Impls())
	assert.Equal(t, []Op{
		{Name: "Contains", Scenario: "IPv4"},
		{Name: "Lookup", Scenario: "IPv4"},
		{Name: "LookupPrefix", Scenario: "IPv4"},
	}, s.Ops())

	f, ok := s.Get("bart", Op{Name: "Contains", Scenario: "IPv4"}).Float()
	require.True(t, ok)
	assert.InDelta(t, 5.523, f, 1e-9)
}

func TestLoadGoBenchAveragesRepeatedRuns(t *testing.T) {
	doc := `BenchmarkContains/IPv4-14 	1000000	        10.0 ns/op
BenchmarkContains/IPv4-14 	1000000	        20.0 ns/op
`
	s, err := LoadGoBench(strings.NewReader(doc), "bart", "bench.txt")
	require.NoError(t, err)

	f, ok := s.Get("bart", Op{Name: "Contains", Scenario: "IPv4"}).Float()
	require.True(t, ok)
	assert.InDelta(t, 15.0, f, 1e-9)
}

func TestLoadGoBenchEmptyInput(t *testing.T) {
	_, err := LoadGoBench(strings.NewReader("no benchmarks here\n"), "bart", "bench.txt")
	var format *FormatError
	require.ErrorAs(t, err, &format)
}
