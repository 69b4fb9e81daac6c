package agent

import (
	"testing"
	"time"
)

func TestContinueIsReady(t *testing.T) {
	if !Continue().IsReady() {
		t.Fatal("expected Continue to be ready")
	}
}

func TestKillIsNeverReady(t *testing.T) {
	if Kill().IsReady() {
		t.Fatal("expected Kill to never be ready")
	}
	if !Kill().IsKill() {
		t.Fatal("expected IsKill to report true")
	}
}

func TestWaitReadiesAfterWake(t *testing.T) {
	cf, h := Wait()
	if cf.IsReady() {
		t.Fatal("expected a fresh wait to not be ready")
	}
	h.Wake()
	if !cf.IsReady() {
		t.Fatal("expected the wait to be ready after Wake")
	}
}

func TestSleepUntilReadiesAfterTime(t *testing.T) {
	cf := SleepUntil(time.Now().Add(60 * time.Millisecond))
	if cf.IsReady() {
		t.Fatal("expected to not be ready immediately")
	}
	time.Sleep(90 * time.Millisecond)
	if !cf.IsReady() {
		t.Fatal("expected to be ready once the deadline passed")
	}
}

func TestSleepForReadiesAfterDuration(t *testing.T) {
	cf := SleepFor(60 * time.Millisecond)
	if cf.IsReady() {
		t.Fatal("expected to not be ready immediately")
	}
	time.Sleep(90 * time.Millisecond)
	if !cf.IsReady() {
		t.Fatal("expected to be ready once the duration elapsed")
	}
}

func TestWaitHandleReferencesStartAtTwo(t *testing.T) {
	cf, h := Wait()
	internal, ok := cf.Handle()
	if !ok {
		t.Fatal("expected cf to carry a handle")
	}
	if got := internal.References(); got != 2 {
		t.Fatalf("expected 2 references (internal + external), got %d", got)
	}
	if h.References() != 2 {
		t.Fatalf("expected the external copy to see the same count, got %d", h.References())
	}
}
