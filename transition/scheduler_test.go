package transition

import (
	"testing"
	"time"

	"github.com/atomicstack/pi-menu-control/page"
)

// manualManager records begun requests and lets tests complete them one at
// a time.
type manualManager struct {
	current  page.Screen
	begun    []Request
	complete []func()
}

func (m *manualManager) Current() page.Screen { return m.current }

func (m *manualManager) Begin(req Request, progress func(float64), complete func()) {
	m.begun = append(m.begun, req)
	m.complete = append(m.complete, complete)
	progress(0)
}

func (m *manualManager) finish(t *testing.T) {
	t.Helper()
	if len(m.complete) == 0 {
		t.Fatalf("no transition in flight")
	}
	done := m.complete[0]
	m.complete = m.complete[1:]
	m.current = m.begun[len(m.begun)-len(m.complete)-1].Screen
	done()
}

func screens(n int) []page.Screen {
	out := make([]page.Screen, n)
	for i := range out {
		out[i] = &page.Base{}
	}
	return out
}

func TestSwitchToSameScreenIsNoOp(t *testing.T) {
	mgr := &manualManager{}
	s := NewScheduler(mgr, nil)
	screen := &page.Base{}
	mgr.current = screen

	s.SwitchTo(Request{Screen: screen, Kind: Slide})
	if len(mgr.begun) != 0 {
		t.Fatalf("expected no transition, got %d", len(mgr.begun))
	}
	if s.Busy() {
		t.Fatalf("expected idle scheduler")
	}
}

func TestDefaultDurationApplied(t *testing.T) {
	mgr := &manualManager{}
	s := NewScheduler(mgr, nil)
	target := &page.Base{}

	s.SwitchTo(Request{Screen: target, Kind: Slide})
	if len(mgr.begun) != 1 {
		t.Fatalf("expected one begun transition, got %d", len(mgr.begun))
	}
	if mgr.begun[0].Duration != DefaultDuration {
		t.Fatalf("expected default duration, got %s", mgr.begun[0].Duration)
	}
	mgr.finish(t)
	if s.Busy() {
		t.Fatalf("expected idle scheduler after completion")
	}
}

func TestNoneKindDoesNotOccupyScheduler(t *testing.T) {
	mgr := &manualManager{}
	s := NewScheduler(mgr, nil)
	target := &page.Base{}

	s.SwitchTo(Request{Screen: target, Kind: None})
	if s.Busy() {
		t.Fatalf("unanimated switch must not mark the scheduler busy")
	}
	if len(mgr.begun) != 1 {
		t.Fatalf("expected the switch to reach the manager")
	}
}

func TestQueuedRequestsReplayInOrder(t *testing.T) {
	mgr := &manualManager{}
	s := NewScheduler(mgr, nil)
	sc := screens(3)

	s.SwitchTo(Request{Screen: sc[0], Kind: Slide, Direction: Up})
	s.SwitchTo(Request{Screen: sc[1], Kind: Slide, Direction: Down})
	s.SwitchTo(Request{Screen: sc[2], Kind: Swap, Direction: Left})

	if got := s.QueueLen(); got != 2 {
		t.Fatalf("expected 2 queued requests, got %d", got)
	}
	mgr.finish(t)
	mgr.finish(t)
	mgr.finish(t)

	if len(mgr.begun) != 3 {
		t.Fatalf("expected 3 transitions, got %d", len(mgr.begun))
	}
	for i, screen := range sc {
		if mgr.begun[i].Screen != screen {
			t.Fatalf("transition %d ran out of order", i)
		}
	}
	if s.Busy() || s.QueueLen() != 0 {
		t.Fatalf("expected drained scheduler")
	}
}

func TestBacklogCoalescesToFastDuration(t *testing.T) {
	mgr := &manualManager{}
	s := NewScheduler(mgr, nil)
	sc := screens(5)

	for _, screen := range sc {
		s.SwitchTo(Request{Screen: screen, Kind: Slide, Direction: Up})
	}
	for len(mgr.complete) > 0 {
		mgr.finish(t)
	}

	if len(mgr.begun) != 5 {
		t.Fatalf("expected 5 transitions, got %d", len(mgr.begun))
	}
	if mgr.begun[0].Duration != DefaultDuration {
		t.Fatalf("first transition must keep its duration, got %s", mgr.begun[0].Duration)
	}
	for i := 1; i < 4; i++ {
		if mgr.begun[i].Duration != FastDuration {
			t.Fatalf("backlogged transition %d must run fast, got %s", i, mgr.begun[i].Duration)
		}
	}
	if mgr.begun[4].Duration != DefaultDuration {
		t.Fatalf("last transition must keep its duration, got %s", mgr.begun[4].Duration)
	}
}

func TestExplicitDurationPreserved(t *testing.T) {
	mgr := &manualManager{}
	s := NewScheduler(mgr, nil)
	target := &page.Base{}

	s.SwitchTo(Request{Screen: target, Kind: Swap, Duration: 200 * time.Millisecond})
	if mgr.begun[0].Duration != 200*time.Millisecond {
		t.Fatalf("expected 200ms, got %s", mgr.begun[0].Duration)
	}
}

func TestProgressCrossFadesScreens(t *testing.T) {
	mgr := &manualManager{}
	s := NewScheduler(mgr, nil)
	outgoing := &page.Base{}
	incoming := &page.Base{}
	mgr.current = outgoing

	s.SwitchTo(Request{Screen: incoming, Kind: Slide})
	s.progress(0.25)
	if got := outgoing.Opacity(); got != 0.75 {
		t.Fatalf("expected outgoing opacity 0.75, got %v", got)
	}
	if got := incoming.Opacity(); got != 0.25 {
		t.Fatalf("expected incoming opacity 0.25, got %v", got)
	}

	mgr.finish(t)
	if outgoing.Opacity() != 0 || incoming.Opacity() != 1 {
		t.Fatalf("expected completion to pin opacities, got %v and %v",
			outgoing.Opacity(), incoming.Opacity())
	}
}
