package joypanel

// JoystickSample is one raw reading of both joystick axes. Each axis is in [0, 4095].
type JoystickSample struct {
	X, Y uint16
}

func (s JoystickSample) pack() uint32 { return uint32(s.X)<<16 | uint32(s.Y) }

func unpackSample(v uint32) JoystickSample {
	return JoystickSample{X: uint16(v >> 16), Y: uint16(v)}
}

// BorderStyle selects how the frame border is drawn.
type BorderStyle uint8

const (
	BorderSingle BorderStyle = iota
	BorderDouble
)

func (b BorderStyle) toggle() BorderStyle {
	if b == BorderSingle {
		return BorderDouble
	}
	return BorderSingle
}

func (b BorderStyle) String() string {
	switch b {
	case BorderSingle:
		return "single"
	case BorderDouble:
		return "double"
	default:
		return "INVALID"
	}
}

// Button identifies which of the three edge-triggered inputs fired.
type Button uint8

const (
	// ButtonMode toggles whether the joystick drives the PWM LEDs.
	ButtonMode Button = iota
	// ButtonReset reboots into the firmware-update bootloader. There is no coming back from it.
	ButtonReset
	// ButtonIndicator toggles the green LED and the border style.
	ButtonIndicator
)

func (b Button) String() string {
	switch b {
	case ButtonMode:
		return "mode"
	case ButtonReset:
		return "reset"
	case ButtonIndicator:
		return "indicator"
	default:
		return "INVALID"
	}
}

// Channel is one of the two PWM outputs. Each joystick axis drives one channel.
type Channel uint8

const (
	ChannelX Channel = iota
	ChannelY
)

func (c Channel) String() string {
	switch c {
	case ChannelX:
		return "x"
	case ChannelY:
		return "y"
	default:
		return "INVALID"
	}
}

// ChannelDuty is the duty value written to one PWM channel.
type ChannelDuty struct {
	Channel Channel
	Duty    uint16
}

// Effective is the duty the hardware actually produces. The counter wraps at WrapPeriod, so
// larger values alias.
func (d ChannelDuty) Effective() uint16 {
	return d.Duty % WrapPeriod
}
