package events

import (
	"time"

	"github.com/atomicstack/pi-menu-control/internal/logging"
)

type AppTracer struct{}

type NavTracer struct{}

type TransitionTracer struct{}

var (
	App        = AppTracer{}
	Nav        = NavTracer{}
	Transition = TransitionTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (NavTracer) Push(kind, title string, depth int) {
	logging.Trace("nav.push", map[string]interface{}{
		"kind":  kind,
		"title": title,
		"depth": depth,
	})
}

func (NavTracer) Pop(depth int) {
	logging.Trace("nav.pop", map[string]interface{}{"depth": depth})
}

func (NavTracer) Replace(title string, depth int) {
	logging.Trace("nav.replace", map[string]interface{}{"title": title, "depth": depth})
}

func (NavTracer) Home(removed int) {
	logging.Trace("nav.home", map[string]interface{}{"removed": removed})
}

func (NavTracer) Select(index int, label string) {
	logging.Trace("nav.select", map[string]interface{}{"index": index, "label": label})
}

func (NavTracer) Page(index, pages int) {
	logging.Trace("nav.page", map[string]interface{}{"index": index, "pages": pages})
}

func (NavTracer) CloseApplication(id string, removed int) {
	logging.Trace("nav.close-application", map[string]interface{}{
		"id":      id,
		"removed": removed,
	})
}

func (TransitionTracer) Begin(kind int, direction string, duration time.Duration) {
	logging.Trace("transition.begin", map[string]interface{}{
		"kind":      kind,
		"direction": direction,
		"duration":  duration.String(),
	})
}

func (TransitionTracer) Queued(depth int) {
	logging.Trace("transition.queued", map[string]interface{}{"depth": depth})
}

func (TransitionTracer) Idle() {
	logging.Trace("transition.idle", nil)
}
