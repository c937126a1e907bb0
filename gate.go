package joypanel

import (
	"context"
	"sync/atomic"
)

// Edge is one falling edge on a button input, stamped with the clock reading taken in the interrupt.
type Edge struct {
	Button   Button
	AtMicros uint64
}

// Gate debounces button edges and applies the resulting state changes. It is the only writer of
// ControlState.
//
// Interrupt handlers obtained from Handler only stamp the edge and queue it; they never block. Run drains the
// queue on its own goroutine, which is the asynchronous context the rest of the gate's work happens in.
type Gate struct {
	state  *ControlState
	window uint64
	clock  Clock
	mapper *Mapper
	led    Blinker
	boot   Bootloader
	redraw func()
	log    Logger

	edges  chan Edge
	drops  atomic.Uint32
	halted atomic.Bool
	done   chan struct{}
}

// Handler returns an interrupt handler for b.
func (g *Gate) Handler(b Button) func() {
	return func() {
		select {
		case g.edges <- Edge{Button: b, AtMicros: g.clock.NowMicros()}:
		default:
			g.drops.Add(1)
		}
	}
}

// Run processes queued edges until ctx is done or the reset transition has been taken.
func (g *Gate) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-g.done:
			return
		case ev := <-g.edges:
			g.Handle(ev)
		}
	}
}

// Handle applies one edge. It reports whether the edge was accepted; edges inside the debounce window are
// dropped without any side effect. Handle must only be called from one goroutine at a time.
func (g *Gate) Handle(ev Edge) bool {
	if g.halted.Load() || ev.Button > ButtonIndicator {
		return false
	}
	last := g.state.lastEventMicros.Load()
	if ev.AtMicros < last || ev.AtMicros-last < g.window {
		return false
	}
	g.state.lastEventMicros.Store(ev.AtMicros)

	switch ev.Button {
	case ButtonMode:
		g.log.Debug("toggle PWM LED state")
		enabled := !g.state.pwmEnabled.Load()
		g.state.pwmEnabled.Store(enabled)
		if !enabled {
			g.mapper.Off()
		}
	case ButtonReset:
		g.log.Debug("bootsel mode")
		g.halted.Store(true)
		g.boot.EnterBootloader()
		// only reachable where the bootloader call returns, i.e. not on a board
		close(g.done)
	case ButtonIndicator:
		on := !g.state.greenLED.Load()
		g.state.greenLED.Store(on)
		g.log.Debugf("toggle green LED state: %t", on)
		if on {
			g.led.High()
		} else {
			g.led.Low()
		}
		g.state.border.Store(uint32(g.state.Border().toggle()))
		g.redraw()
	}
	return true
}

// Done is closed once the reset transition has been taken and the bootloader call returned.
func (g *Gate) Done() <-chan struct{} { return g.done }

// Drops is the number of edges discarded because the queue was full.
func (g *Gate) Drops() uint32 { return g.drops.Load() }
