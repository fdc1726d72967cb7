// Package transition serializes screen-switch requests so that rapid
// navigation input never overlaps in-flight visual transitions. Requests
// arriving while a transition runs are queued FIFO; when the backlog grows,
// queued transitions are replayed at a fixed fast duration so the animation
// debt stays bounded.
package transition

import (
	"sync"
	"time"

	"github.com/atomicstack/pi-menu-control/internal/logging/events"
	"github.com/atomicstack/pi-menu-control/page"
)

// Kind selects the visual style of a screen switch.
type Kind uint8

const (
	// None switches immediately with no animation. It bypasses duration
	// coalescing and does not occupy the scheduler.
	None Kind = iota
	Slide
	Swap
	RiseIn
)

// Direction of a sliding transition.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

const (
	// DefaultDuration is used when a request leaves Duration unset.
	DefaultDuration = 300 * time.Millisecond
	// FastDuration replaces the requested duration while a backlog is
	// being drained.
	FastDuration = 80 * time.Millisecond
)

// Request describes one screen switch.
type Request struct {
	Screen    page.Screen
	Kind      Kind
	Direction Direction
	// Duration of the animation; zero means DefaultDuration.
	Duration time.Duration
}

// Manager is the host surface that owns the visible screen and animates
// switches. Begin must eventually invoke the progress callback with values
// in [0..1] and the complete callback exactly once, on the UI thread.
type Manager interface {
	Current() page.Screen
	Begin(req Request, progress func(float64), complete func())
}

// Scheduler owns the transition queue. All methods are safe for concurrent
// use; the actual switch is marshaled through the dispatch function so it
// runs on the UI-owning loop.
type Scheduler struct {
	manager  Manager
	dispatch func(func())

	mu        sync.Mutex
	queue     []Request
	running   bool
	preparing bool
	outgoing  page.Screen
	incoming  page.Screen
}

// NewScheduler creates a scheduler on top of the given manager. dispatch
// marshals work onto the UI loop; nil means run synchronously.
func NewScheduler(manager Manager, dispatch func(func())) *Scheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Scheduler{manager: manager, dispatch: dispatch}
}

// Busy reports whether a transition is currently running.
func (s *Scheduler) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Preparing reports whether a switch has been requested but the manager has
// not started animating it yet. Input arriving in this window is expected
// to be dropped by the caller.
func (s *Scheduler) Preparing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preparing
}

// QueueLen returns the number of pending requests.
func (s *Scheduler) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// SwitchTo requests a switch to req.Screen. Switching to the screen already
// showing is a no-op regardless of kind. When a transition is in flight the
// request is appended to the queue and replayed from the completion
// callback.
func (s *Scheduler) SwitchTo(req Request) {
	if req.Screen != nil && s.manager.Current() == req.Screen {
		return
	}
	if req.Duration == 0 {
		req.Duration = DefaultDuration
	}

	s.mu.Lock()
	if s.running {
		s.queue = append(s.queue, req)
		events.Transition.Queued(len(s.queue))
		s.mu.Unlock()
		return
	}
	if req.Kind != None {
		s.running = true
	}
	s.preparing = true
	s.mu.Unlock()

	s.begin(req)
}

func (s *Scheduler) begin(req Request) {
	s.dispatch(func() {
		s.mu.Lock()
		s.outgoing = s.manager.Current()
		s.incoming = req.Screen
		s.preparing = false
		s.mu.Unlock()

		events.Transition.Begin(int(req.Kind), string(req.Direction), req.Duration)
		s.manager.Begin(req, s.progress, s.complete)
	})
}

// progress cross-fades the outgoing and incoming screens linearly.
func (s *Scheduler) progress(t float64) {
	s.mu.Lock()
	out, in := s.outgoing, s.incoming
	s.mu.Unlock()
	if out != nil {
		out.SetOpacity(1 - t)
	}
	if in != nil {
		in.SetOpacity(t)
	}
}

// complete pins opacities to exact end values and starts the next queued
// request, if any.
func (s *Scheduler) complete() {
	s.mu.Lock()
	out, in := s.outgoing, s.incoming
	s.mu.Unlock()
	if out != nil {
		out.SetOpacity(0)
	}
	if in != nil {
		in.SetOpacity(1)
	}

	s.mu.Lock()
	if len(s.queue) == 0 {
		s.running = false
		s.mu.Unlock()
		events.Transition.Idle()
		return
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	if len(s.queue) > 0 && next.Kind != None {
		next.Duration = FastDuration
	}
	s.preparing = true
	s.mu.Unlock()

	s.begin(next)
}
