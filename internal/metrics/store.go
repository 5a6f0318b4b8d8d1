package metrics

// Store holds the measurements of one benchmark run, keyed by
// (implementation, operation, scenario). Records are bulk-loaded once and
// never mutated afterwards. The first-seen order of operations is preserved
// so chart layout stays stable across runs.
type Store struct {
	records map[Key]Record
	ops     []Op
	opSeen  map[Op]struct{}
	impls   []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[Key]Record),
		opSeen:  make(map[Op]struct{}),
	}
}

// Add inserts a record. A duplicate key is a ConflictError and a negative
// value is a FormatError; neither is ever silently absorbed.
func (s *Store) Add(r Record) error {
	if r.Impl == "" || r.Op.Name == "" {
		return &FormatError{Reason: "record missing implementation or operation"}
	}
	if f, ok := r.Value.Float(); ok && f < 0 {
		return &FormatError{Reason: "negative value for " + Key{r.Impl, r.Op}.String()}
	}
	k := Key{Impl: r.Impl, Op: r.Op}
	if _, dup := s.records[k]; dup {
		return &ConflictError{Key: k}
	}
	s.records[k] = r
	if _, seen := s.opSeen[r.Op]; !seen {
		s.opSeen[r.Op] = struct{}{}
		s.ops = append(s.ops, r.Op)
	}
	if !contains(s.impls, r.Impl) {
		s.impls = append(s.impls, r.Impl)
	}
	return nil
}

// Get returns the measurement for one implementation and operation.
// A record that was never loaded reads as Unavailable, same as one that was
// loaded with an explicit unavailable marker.
func (s *Store) Get(impl string, op Op) Value {
	r, ok := s.records[Key{Impl: impl, Op: op}]
	if !ok {
		return Unavailable
	}
	return r.Value
}

// Unit returns the unit of the record, or "" when absent.
func (s *Store) Unit(impl string, op Op) string {
	return s.records[Key{Impl: impl, Op: op}].Unit
}

// Ops returns the operations in first-seen insertion order.
func (s *Store) Ops() []Op {
	out := make([]Op, len(s.ops))
	copy(out, s.ops)
	return out
}

// Impls returns the implementation names in first-seen insertion order.
func (s *Store) Impls() []string {
	out := make([]string, len(s.impls))
	copy(out, s.impls)
	return out
}

// Merge adds every record of other into s, preserving other's operation
// order. A key present in both stores is a ConflictError.
func (s *Store) Merge(other *Store) error {
	for _, op := range other.ops {
		for _, impl := range other.impls {
			r, ok := other.records[Key{Impl: impl, Op: op}]
			if !ok {
				continue
			}
			if err := s.Add(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len returns the number of loaded records.
func (s *Store) Len() int { return len(s.records) }

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
