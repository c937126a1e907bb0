package joypanel

import (
	"sync/atomic"
)

// ControlState is shared between the button gate and the control loop. The gate is its only writer; every
// other component only reads it. Each field is a single atomic word, so readers never see a torn value.
type ControlState struct {
	pwmEnabled      atomic.Bool
	greenLED        atomic.Bool
	border          atomic.Uint32
	lastEventMicros atomic.Uint64
}

func newControlState() *ControlState {
	s := &ControlState{}
	s.pwmEnabled.Store(true)
	s.border.Store(uint32(BorderSingle))
	return s
}

// PWMEnabled reports whether the joystick drives the PWM LEDs.
func (s *ControlState) PWMEnabled() bool { return s.pwmEnabled.Load() }

func (s *ControlState) GreenLED() bool { return s.greenLED.Load() }

func (s *ControlState) Border() BorderStyle { return BorderStyle(s.border.Load()) }

// LastEventMicros is the clock reading of the last accepted button edge.
func (s *ControlState) LastEventMicros() uint64 { return s.lastEventMicros.Load() }
