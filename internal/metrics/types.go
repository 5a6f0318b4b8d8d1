package metrics

import "fmt"

// Op identifies a benchmarked operation, optionally qualified by a
// scenario tag such as "IPv4" or "IPv6".
type Op struct {
	Name     string
	Scenario string
}

// Label returns the human-readable form used for chart ticks and table rows.
func (o Op) Label() string {
	if o.Scenario == "" {
		return o.Name
	}
	return o.Name + " " + o.Scenario
}

func (o Op) String() string { return o.Label() }

// Key uniquely identifies a measurement within one run.
type Key struct {
	Impl string
	Op   Op
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Impl, k.Op.Label())
}

// Value is a measurement that may be unavailable. A zero measurement is a
// valid (fast) result and must stay distinguishable from a missing one, so
// the zero Value is "unavailable" and measured values are built with Val.
type Value struct {
	f  float64
	ok bool
}

// Unavailable is the explicit marker for a missing measurement.
var Unavailable = Value{}

// Val wraps a measured number.
func Val(f float64) Value { return Value{f: f, ok: true} }

// Available reports whether the value was actually measured.
func (v Value) Available() bool { return v.ok }

// Float returns the measured number and whether it is available.
func (v Value) Float() (float64, bool) { return v.f, v.ok }

func (v Value) String() string {
	if !v.ok {
		return "N/A"
	}
	return fmt.Sprintf("%g", v.f)
}

// Record is one named scalar measurement for one implementation.
type Record struct {
	Impl  string
	Op    Op
	Unit  string
	Value Value
}
