package metrics

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlRecord struct {
	Implementation string   `yaml:"implementation"`
	Operation      string   `yaml:"operation"`
	Scenario       string   `yaml:"scenario"`
	Unit           string   `yaml:"unit"`
	Value          *float64 `yaml:"value"`
	Unavailable    bool     `yaml:"unavailable"`
}

type yamlFile struct {
	Unit    string       `yaml:"unit"`
	Records []yamlRecord `yaml:"records"`
}

// LoadYAML reads a measurement set from a YAML document of the form
//
//	unit: ns/op
//	records:
//	  - implementation: bart
//	    operation: Contains
//	    scenario: IPv4
//	    value: 5.523
//	  - implementation: zart
//	    operation: Lookup
//	    scenario: IPv6
//	    unavailable: true
//
// Records missing a required field, carrying a negative value, or both a
// value and the unavailable marker fail the whole load.
func LoadYAML(r io.Reader, source string) (*Store, error) {
	var f yamlFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, &FormatError{Source: source, Reason: err.Error()}
	}
	if len(f.Records) == 0 {
		return nil, &FormatError{Source: source, Reason: "no records"}
	}

	s := NewStore()
	for i, yr := range f.Records {
		if yr.Implementation == "" || yr.Operation == "" {
			return nil, &FormatError{
				Source: source,
				Reason: fmt.Sprintf("record %d missing implementation or operation", i),
			}
		}
		if yr.Unavailable && yr.Value != nil {
			return nil, &FormatError{
				Source: source,
				Reason: fmt.Sprintf("record %d has both a value and the unavailable marker", i),
			}
		}
		if !yr.Unavailable && yr.Value == nil {
			return nil, &FormatError{
				Source: source,
				Reason: fmt.Sprintf("record %d has no value", i),
			}
		}

		val := Unavailable
		if yr.Value != nil {
			if *yr.Value < 0 {
				return nil, &FormatError{
					Source: source,
					Reason: fmt.Sprintf("record %d has negative value %g", i, *yr.Value),
				}
			}
			val = Val(*yr.Value)
		}
		unit := yr.Unit
		if unit == "" {
			unit = f.Unit
		}
		rec := Record{
			Impl:  yr.Implementation,
			Op:    Op{Name: yr.Operation, Scenario: yr.Scenario},
			Unit:  unit,
			Value: val,
		}
		if err := s.Add(rec); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadYAMLFile is LoadYAML on a file path.
func LoadYAMLFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadYAML(f, path)
}
