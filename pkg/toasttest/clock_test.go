package toasttest

import (
	"testing"
	"time"
)

func TestClockFiresAfterAdvance(t *testing.T) {
	clk := NewClock()

	fired := false
	clk.AfterFunc(time.Second, func() { fired = true })

	clk.Advance(999 * time.Millisecond)
	if fired {
		t.Fatal("timer fired before its deadline")
	}

	clk.Advance(time.Millisecond)
	if !fired {
		t.Fatal("timer did not fire at its deadline")
	}
	if clk.Pending() != 0 {
		t.Errorf("expected 0 pending timers, got %d", clk.Pending())
	}
}

func TestClockFiresInDeadlineOrder(t *testing.T) {
	clk := NewClock()

	var order []string
	clk.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	clk.AfterFunc(time.Second, func() { order = append(order, "early") })

	clk.Advance(3 * time.Second)

	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("expected [early late], got %v", order)
	}
}

func TestClockStop(t *testing.T) {
	clk := NewClock()

	fired := false
	timer := clk.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("Stop before firing should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}

	clk.Advance(time.Second)
	if fired {
		t.Error("stopped timer must not fire")
	}

	expired := clk.AfterFunc(time.Second, func() {})
	clk.Advance(time.Second)
	if expired.Stop() {
		t.Error("Stop after firing should report false")
	}
}

func TestClockRelativeToCurrentTime(t *testing.T) {
	clk := NewClock()
	clk.Advance(time.Hour)

	fired := false
	clk.AfterFunc(time.Second, func() { fired = true })

	clk.Advance(time.Second)
	if !fired {
		t.Error("deadline must be relative to the advanced clock, not zero")
	}
}
