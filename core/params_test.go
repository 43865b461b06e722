package core

import "testing"

// TestParamsGetMissingReturnsZero verifies the zero default for absent keys
func TestParamsGetMissingReturnsZero(t *testing.T) {
	p := NewParams(nil)
	if v := p.Get("nonexistent"); v != 0.0 {
		t.Errorf("Expected 0.0 for missing key, got %v", v)
	}
	if p.Has("nonexistent") {
		t.Error("Expected Has to report false for missing key")
	}
}

// TestParamsWithDoesNotMutateOriginal verifies copy-on-write semantics
func TestParamsWithDoesNotMutateOriginal(t *testing.T) {
	p := NewParams(map[string]float64{"zoom": 1.0})
	q := p.With("zoom", 2.0)

	if v := p.Get("zoom"); v != 1.0 {
		t.Errorf("Expected original to keep zoom=1.0, got %v", v)
	}
	if v := q.Get("zoom"); v != 2.0 {
		t.Errorf("Expected derived zoom=2.0, got %v", v)
	}
}

// TestParamsMerge verifies override application and isolation
func TestParamsMerge(t *testing.T) {
	p := NewParams(map[string]float64{"a": 1, "b": 2})
	q := p.Merge(map[string]float64{"b": 20, "c": 30})

	if q.Get("a") != 1 || q.Get("b") != 20 || q.Get("c") != 30 {
		t.Errorf("Unexpected merged values: a=%v b=%v c=%v", q.Get("a"), q.Get("b"), q.Get("c"))
	}
	if p.Get("b") != 2 || p.Has("c") {
		t.Error("Merge mutated the original parameter set")
	}
}

// TestParamsNewCopiesInput verifies the constructor does not alias its argument
func TestParamsNewCopiesInput(t *testing.T) {
	src := map[string]float64{"x": 1}
	p := NewParams(src)
	src["x"] = 99

	if v := p.Get("x"); v != 1 {
		t.Errorf("Expected params to be isolated from input map, got x=%v", v)
	}
}

// TestProjection verifies projection extraction and equality
func TestProjection(t *testing.T) {
	p := NewParams(map[string]float64{"width": 100, "height": 50, "time": 3})

	proj := p.Project([]string{"width", "height"})
	if len(proj) != 2 || proj["width"] != 100 || proj["height"] != 50 {
		t.Errorf("Unexpected projection: %v", proj)
	}

	same := p.With("time", 4).Project([]string{"width", "height"})
	if !ProjectionEqual(proj, same) {
		t.Error("Expected projections to be equal when only a non-projected key changed")
	}

	diff := p.With("width", 101).Project([]string{"width", "height"})
	if ProjectionEqual(proj, diff) {
		t.Error("Expected projections to differ when a projected key changed")
	}
}

// TestProjectionAbsentKeyProjectsToZero verifies missing keys are observed as zero
func TestProjectionAbsentKeyProjectsToZero(t *testing.T) {
	p := NewParams(nil)
	proj := p.Project([]string{"zoom"})
	if v, ok := proj["zoom"]; !ok || v != 0 {
		t.Errorf("Expected absent key to project as 0, got %v (present=%v)", v, ok)
	}
}

// TestRGBBlend verifies alpha blending endpoints and midpoint
func TestRGBBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Expected alpha=0 to return dst, got %v", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Expected alpha=1 to return src, got %v", got)
	}
	mid := dst.Blend(src, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("Expected midpoint blend {100 50 25}, got %v", mid)
	}
}

// TestRGBScale verifies fade clamping behavior
func TestRGBScale(t *testing.T) {
	c := RGB{100, 200, 255}
	if got := c.Scale(0); got != RGBBlack {
		t.Errorf("Expected scale 0 to be black, got %v", got)
	}
	if got := c.Scale(1.5); got != c {
		t.Errorf("Expected scale >1 to clamp to original, got %v", got)
	}
	half := c.Scale(0.5)
	if half.R != 50 || half.G != 100 || half.B != 127 {
		t.Errorf("Unexpected half scale: %v", half)
	}
}
