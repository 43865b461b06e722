package core

// Params is the full tunable state of a patch: a mapping from parameter
// name to value. Mutation is always expressed as "derive a new Params with
// these overrides" so that older snapshots held by in-flight frames or by
// the generator cache never observe later writes.
type Params struct {
	vals map[string]float64
}

// NewParams creates a parameter set from initial values. The input map is
// copied; the caller keeps ownership of its argument.
func NewParams(vals map[string]float64) Params {
	m := make(map[string]float64, len(vals))
	for k, v := range vals {
		m[k] = v
	}
	return Params{vals: m}
}

// Get returns the value for key, or 0.0 when the key is absent.
func (p Params) Get(key string) float64 {
	return p.vals[key]
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p.vals[key]
	return ok
}

// Len returns the number of stored parameters.
func (p Params) Len() int {
	return len(p.vals)
}

// With derives a new Params with one key overridden.
func (p Params) With(key string, value float64) Params {
	m := make(map[string]float64, len(p.vals)+1)
	for k, v := range p.vals {
		m[k] = v
	}
	m[key] = value
	return Params{vals: m}
}

// Merge derives a new Params with all overrides applied.
func (p Params) Merge(overrides map[string]float64) Params {
	m := make(map[string]float64, len(p.vals)+len(overrides))
	for k, v := range p.vals {
		m[k] = v
	}
	for k, v := range overrides {
		m[k] = v
	}
	return Params{vals: m}
}

// Project extracts the subset of parameters named by keys. Absent keys
// project to 0.0 so that a generator reading a missing parameter and the
// cache snapshot agree on what was observed.
func (p Params) Project(keys []string) map[string]float64 {
	out := make(map[string]float64, len(keys))
	for _, k := range keys {
		out[k] = p.vals[k]
	}
	return out
}

// Snapshot returns a copy of all parameters, for persistence and display.
func (p Params) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(p.vals))
	for k, v := range p.vals {
		out[k] = v
	}
	return out
}

// ProjectionEqual reports whether two projections are value-equal.
func ProjectionEqual(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || bv != v {
			return false
		}
	}
	return true
}
