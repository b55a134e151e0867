package types

import "testing"

func TestWideningLattice(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{Int, Double, true},
		{Int, Float, true},
		{Byte, Long, true},
		{Double, Int, false},
		{Float, Int, false},
		{Int, Int, false}, // identity is handled by Equal, not widening
		{Long, Byte, false},
	}

	for _, c := range cases {
		if got := WidensTo(c.from, c.to); got != c.want {
			t.Errorf("WidensTo(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsNumericIsPrimitive(t *testing.T) {
	if !New(Int).IsNumeric() {
		t.Error("int should be numeric")
	}
	if New(String).IsNumeric() {
		t.Error("string should not be numeric")
	}
	if !New(String).IsPrimitive() {
		t.Error("string should be primitive")
	}
	if New("Dog").IsPrimitive() {
		t.Error("class type should not be primitive")
	}
	if Array(Int).IsNumeric() {
		t.Error("int[] should not be numeric")
	}
}

func TestEqual(t *testing.T) {
	a := New(Int)
	b := New(Int)
	if !a.Equal(b) {
		t.Error("identical types should be equal")
	}

	c := Array(Int)
	if a.Equal(c) {
		t.Error("int and int[] should not be equal")
	}

	d := a.Nullable()
	if a.Equal(d) {
		t.Error("int and int? should not be equal")
	}
}
