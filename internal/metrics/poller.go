// Package metrics polls the host for the live readings surfaced in the
// menu: CPU load, memory use, core temperature, and disk use. Each reading
// is published through an observable so menu labels and gauge pages update
// in place.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/pi-menu-control/menu"
)

// Reading identifies one polled metric.
type Reading int

const (
	ReadingCPU Reading = iota
	ReadingMemory
	ReadingTemperature
	ReadingDisk
)

// Poller polls the host at a fixed interval and publishes normalized
// readings in [0..1].
type Poller struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	cpu         *menu.Observable[float64]
	memory      *menu.Observable[float64]
	temperature *menu.Observable[float64]
	disk        *menu.Observable[float64]
}

// NewPoller creates a poller reading every interval. Call Start to begin
// polling.
func NewPoller(interval time.Duration) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		interval:    interval,
		ctx:         ctx,
		cancel:      cancel,
		cpu:         menu.NewObservable(0.0),
		memory:      menu.NewObservable(0.0),
		temperature: menu.NewObservable(0.0),
		disk:        menu.NewObservable(0.0),
	}
}

// CPU is the normalized one-minute load average.
func (p *Poller) CPU() *menu.Observable[float64] { return p.cpu }

// Memory is the used fraction of physical memory.
func (p *Poller) Memory() *menu.Observable[float64] { return p.memory }

// Temperature is the core temperature normalized against 100°C.
func (p *Poller) Temperature() *menu.Observable[float64] { return p.temperature }

// Disk is the used fraction of the root filesystem.
func (p *Poller) Disk() *menu.Observable[float64] { return p.disk }

// Start launches one goroutine per reading.
func (p *Poller) Start() {
	p.startPoller(p.cpu, probeCPU)
	p.startPoller(p.memory, probeMemory)
	p.startPoller(p.temperature, probeTemperature)
	p.startPoller(p.disk, probeDisk)
}

// Stop cancels the pollers. Use Wait for a clean drain.
func (p *Poller) Stop() {
	p.cancel()
}

// Wait blocks until all poller goroutines have exited.
func (p *Poller) Wait() {
	p.wg.Wait()
}

func (p *Poller) startPoller(out *menu.Observable[float64], probe func() (float64, error)) {
	throttle := newThrottle(250 * time.Millisecond)
	p.wg.Add(1)
	go p.poll(out, func() (float64, error) {
		if !throttle.wait(p.ctx) {
			return 0, p.ctx.Err()
		}
		return probe()
	})
}

func (p *Poller) poll(out *menu.Observable[float64], probe func() (float64, error)) {
	defer p.wg.Done()

	emit := func() bool {
		value, err := probe()
		if err == nil {
			out.Set(value)
		}
		select {
		case <-p.ctx.Done():
			return false
		default:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
