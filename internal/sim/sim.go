// Package sim provides in-memory stand-ins for the panel's peripherals, used by the host simulator and tests.
package sim

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stick is a two-channel ADC whose readings are set by the caller.
type Stick struct {
	mu       sync.Mutex
	values   [2]uint16
	selected uint8
	selects  int
}

func NewStick(x, y uint16) *Stick {
	return &Stick{values: [2]uint16{x, y}}
}

func (s *Stick) Select(channel uint8) {
	s.mu.Lock()
	s.selected = channel
	s.selects++
	s.mu.Unlock()
}

// Read returns the value of the selected channel; channels other than 0 and 1 read as 0.
func (s *Stick) Read() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(s.selected) >= len(s.values) {
		return 0
	}
	return s.values[s.selected]
}

func (s *Stick) Move(x, y uint16) {
	s.mu.Lock()
	s.values = [2]uint16{x, y}
	s.mu.Unlock()
}

// Selects is how many times a channel has been selected.
func (s *Stick) Selects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selects
}

// PWM records the duty written to one channel.
type PWM struct {
	duty   atomic.Uint32
	writes atomic.Uint32
}

func (p *PWM) Set(duty uint16) {
	p.duty.Store(uint32(duty))
	p.writes.Add(1)
}

// Duty is the last value written, as written.
func (p *PWM) Duty() uint16 { return uint16(p.duty.Load()) }

func (p *PWM) Writes() uint32 { return p.writes.Load() }

// LED is a digital output.
type LED struct {
	on atomic.Bool
}

func (l *LED) High()    { l.on.Store(true) }
func (l *LED) Low()     { l.on.Store(false) }
func (l *LED) On() bool { return l.on.Load() }

// Bootloader counts entries. Unlike the real one, it returns.
type Bootloader struct {
	calls atomic.Uint32
}

func (b *Bootloader) EnterBootloader() { b.calls.Add(1) }

func (b *Bootloader) Calls() uint32 { return b.calls.Load() }

// Clock is a manually advanced microsecond clock.
type Clock struct {
	us atomic.Uint64
}

func NewClock(start time.Duration) *Clock {
	c := &Clock{}
	c.us.Store(uint64(start / time.Microsecond))
	return c
}

func (c *Clock) NowMicros() uint64 { return c.us.Load() }

func (c *Clock) Advance(d time.Duration) {
	c.us.Add(uint64(d / time.Microsecond))
}
