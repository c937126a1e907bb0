package joypanel

import (
	"github.com/ajanata/joypanel/internal/mathx"
)

// DutyFor maps one axis reading to a PWM duty. Inside the dead zone around center the duty is 0; outside it
// is Gain times the displacement. The result is not clamped to WrapPeriod.
func DutyFor(value, center uint16) uint16 {
	if mathx.Between(value, mathx.SatSub(center, DeadZone), center+DeadZone) {
		return 0
	}
	return Gain * mathx.AbsDiff(value, center)
}

// Mapper turns joystick samples into PWM duties for the two LED channels.
type Mapper struct {
	state *ControlState
	x, y  PWMChannel
}

func newMapper(state *ControlState, x, y PWMChannel) *Mapper {
	return &Mapper{state: state, x: x, y: y}
}

// Map computes the duty for each axis on its own. A dead-zone axis always gets an explicit 0.
func (m *Mapper) Map(s JoystickSample) [2]ChannelDuty {
	return [2]ChannelDuty{
		{Channel: ChannelX, Duty: DutyFor(s.X, CenterX)},
		{Channel: ChannelY, Duty: DutyFor(s.Y, CenterY)},
	}
}

// Apply maps s and writes both duties, but only while PWM is enabled. It returns the computed duties whether
// or not they were written.
func (m *Mapper) Apply(s JoystickSample) [2]ChannelDuty {
	d := m.Map(s)
	if !m.state.PWMEnabled() {
		return d
	}
	m.x.Set(d[0].Duty)
	m.y.Set(d[1].Duty)
	// the gate may have disabled PWM between the check and the writes; its forced 0 must win
	if !m.state.PWMEnabled() {
		m.Off()
	}
	return d
}

// Off forces both channels to 0.
func (m *Mapper) Off() {
	m.x.Set(0)
	m.y.Set(0)
}
