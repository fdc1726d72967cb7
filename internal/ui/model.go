package ui

import (
	"reflect"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pi-menu-control/internal/metrics"
	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/menu"
	"github.com/atomicstack/pi-menu-control/navigation"
	"github.com/atomicstack/pi-menu-control/notification"
	"github.com/atomicstack/pi-menu-control/page"
	"github.com/atomicstack/pi-menu-control/transition"
	"github.com/atomicstack/pi-menu-control/widgets"
)

const (
	defaultWidth  = 32
	frameInterval = 16 * time.Millisecond
	tickInterval  = 100 * time.Millisecond
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configure the UI model.
type Options struct {
	Width        int
	Surroundings bool
	Verbose      bool
	Metrics      *metrics.Poller

	// RootMenu overrides the built-in demo menu.
	RootMenu menu.Menu
}

// animation is one in-flight screen transition driven by frame ticks.
type animation struct {
	req      transition.Request
	progress func(float64)
	complete func()
	start    time.Time
}

// Model implements the Bubble Tea model hosting the menu system. It is
// also the transition manager: it owns the visible screen and animates
// switches with frame ticks.
type Model struct {
	nav           *navigation.Navigator
	notifications *notification.Manager
	metrics       *metrics.Poller

	width      int
	height     int
	fixedWidth bool
	verbose    bool
	volume     float64
	title      string
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	surface *widgets.PageSurface

	current page.Screen
	anim    *animation

	program *tea.Program
	queueMu sync.Mutex
	queue   []func()

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state, builds the root menu, and wires the
// navigation engine to it.
func NewModel(opts Options) *Model {
	m := &Model{
		notifications: notification.NewManager(),
		metrics:       opts.Metrics,
		verbose:       opts.Verbose,
		width:         defaultWidth,
		volume:        0.5,
	}
	if m.metrics == nil {
		// Idle poller so the demo menu still has streams to bind to.
		m.metrics = metrics.NewPoller(time.Second)
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	m.surface = &widgets.PageSurface{
		Width:        m.width,
		Surroundings: opts.Surroundings,
		Styles:       styles,
	}

	navOpts := []navigation.Option{
		navigation.WithDispatch(m.Dispatch),
		navigation.WithTitleListener(func(title string) { m.title = title }),
	}
	if opts.Surroundings {
		navOpts = append(navOpts, navigation.WithRenderSurroundings())
	}
	m.nav = navigation.New(m.surface, m, navOpts...)

	root := opts.RootMenu
	if root == nil {
		root = m.demoMenu()
	}
	m.nav.SetRootMenu(root)
	m.drainDispatch()

	m.registerHandlers()
	return m
}

// AttachProgram lets the model wake the program loop when background
// goroutines dispatch work.
func (m *Model) AttachProgram(program *tea.Program) {
	m.program = program
}

// Navigator exposes the navigation engine.
func (m *Model) Navigator() *navigation.Navigator { return m.nav }

// Notifications exposes the notification feed.
func (m *Model) Notifications() *notification.Manager { return m.notifications }

// Dispatch marshals fn onto the program loop. Work dispatched before the
// program runs is drained on the next Update.
func (m *Model) Dispatch(fn func()) {
	m.queueMu.Lock()
	m.queue = append(m.queue, fn)
	m.queueMu.Unlock()
	if m.program != nil {
		go m.program.Send(dispatchMsg{})
	}
}

// drainDispatch runs queued engine work, including work queued by the
// work itself.
func (m *Model) drainDispatch() {
	for {
		m.queueMu.Lock()
		if len(m.queue) == 0 {
			m.queueMu.Unlock()
			return
		}
		fn := m.queue[0]
		m.queue = m.queue[1:]
		m.queueMu.Unlock()
		fn()
	}
}

// Current implements the transition manager: the screen currently shown.
func (m *Model) Current() page.Screen { return m.current }

// Begin implements the transition manager. Unanimated switches complete
// synchronously; animated ones run on frame ticks until their duration
// elapses.
func (m *Model) Begin(req transition.Request, progress func(float64), complete func()) {
	if req.Kind == transition.None || req.Duration <= 0 {
		m.current = req.Screen
		progress(1)
		complete()
		return
	}
	m.anim = &animation{req: req, progress: progress, complete: complete, start: time.Now()}
	progress(0)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return dispatchMsg{} }, tick())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.drainDispatch()

	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := m.maybeAnimate(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(dispatchMsg{}):       m.handleDispatchMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// maybeAnimate returns the next frame tick while a transition is running.
func (m *Model) maybeAnimate() tea.Cmd {
	if m.anim == nil {
		return nil
	}
	return frameTick()
}

func (m *Model) handleDispatchMsg(tea.Msg) tea.Cmd {
	// Queued work was already drained at the top of Update.
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth && size.Width > 0 {
		m.width = size.Width
		m.surface.Width = size.Width
	}
	m.height = size.Height
	return nil
}

// handleFrameMsg advances the running transition and completes it when its
// duration has elapsed. Completion may start the next queued transition.
func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	if m.anim == nil {
		return nil
	}
	t := float64(time.Since(m.anim.start)) / float64(m.anim.req.Duration)
	if t < 1 {
		m.anim.progress(t)
		return frameTick()
	}
	anim := m.anim
	m.anim = nil
	m.current = anim.req.Screen
	anim.progress(1)
	anim.complete()
	m.drainDispatch()
	return m.maybeAnimate()
}

// handleTickMsg drives page animations and expires transient messages.
func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	now := time.Now()
	if animator, ok := m.current.(widgets.Animator); ok {
		animator.Advance(now)
	}
	if m.infoMsg != "" && now.After(m.infoExpire) {
		m.infoMsg = ""
	}
	return tick()
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.infoExpire = time.Now().Add(2 * time.Second)
}

type dispatchMsg struct{}

type frameMsg time.Time

type tickMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
