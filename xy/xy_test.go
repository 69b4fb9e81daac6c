package xy

import "testing"

func TestAddSub(t *testing.T) {
	a := New(3, 4)
	b := New(1, 2)
	if got := a.Add(b); got != New(4, 6) {
		t.Fatalf("Add: got %v", got)
	}
	if got := a.Sub(b); got != New(2, 2) {
		t.Fatalf("Sub: got %v", got)
	}
}

func TestSubClampSaturates(t *testing.T) {
	a := New(1, 1)
	b := New(3, 0)
	got := a.SubClamp(b)
	if got != New(0, 1) {
		t.Fatalf("SubClamp: got %v", got)
	}
}

func TestMulDivRem(t *testing.T) {
	a := New(10, 9)
	b := New(3, 4)
	if got := a.Mul(b); got != New(30, 36) {
		t.Fatalf("Mul: got %v", got)
	}
	if got := a.Div(b); got != New(3, 2) {
		t.Fatalf("Div: got %v", got)
	}
	if got := a.Rem(b); got != New(1, 1) {
		t.Fatalf("Rem: got %v", got)
	}
}

func TestLessEqPartialOrder(t *testing.T) {
	a := New(1, 5)
	b := New(2, 3)
	if _, ok := a.LessEq(b); ok {
		t.Fatalf("expected incomparable pair")
	}
	c := New(1, 1)
	d := New(2, 2)
	if le, ok := c.LessEq(d); !ok || !le {
		t.Fatalf("expected c <= d")
	}
}

func TestClamp(t *testing.T) {
	got := New(100, 0).Clamp(New(5, 5), New(10, 10))
	if got != New(10, 5) {
		t.Fatalf("Clamp: got %v", got)
	}
}
