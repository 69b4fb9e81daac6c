package adapter

import (
	"testing"
	"time"
)

func TestFrameTimerReadyOnFirstCall(t *testing.T) {
	f := NewFrameTimer(time.Hour)
	if !f.Ready() {
		t.Fatal("a fresh FrameTimer must be ready immediately")
	}
}

func TestFrameTimerNotReadyUntilIntervalElapses(t *testing.T) {
	f := NewFrameTimer(50 * time.Millisecond)
	f.Ready() // consume the initial free tick
	if f.Ready() {
		t.Fatal("FrameTimer fired again before its interval elapsed")
	}
	time.Sleep(60 * time.Millisecond)
	if !f.Ready() {
		t.Fatal("FrameTimer did not fire after its interval elapsed")
	}
}

func TestFrameTimerRemainingShrinksTowardZero(t *testing.T) {
	f := NewFrameTimer(40 * time.Millisecond)
	f.Ready()
	first := f.Remaining()
	if first <= 0 {
		t.Fatalf("Remaining() = %v right after a tick, want > 0", first)
	}
	time.Sleep(50 * time.Millisecond)
	if got := f.Remaining(); got != 0 {
		t.Fatalf("Remaining() = %v after the interval elapsed, want 0", got)
	}
}
