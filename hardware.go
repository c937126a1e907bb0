package joypanel

import (
	"tinygo.org/x/drivers"
)

// Hardware bundles the peripherals the panel drives. Bring-up (pin muxing, clock dividers, bus speed) is the
// job of whoever builds this; by the time it is handed to New every peripheral must be ready to use.
type Hardware struct {
	Joystick   ADC
	PWMX, PWMY PWMChannel
	GreenLED   Blinker
	Display    Display
	Bootloader Bootloader
	// Clock is optional. When nil, microseconds since New are used.
	Clock      Clock
}

// ADC is a multiplexed analog-to-digital converter.
type ADC interface {
	// Select routes the given input channel to the converter.
	Select(channel uint8)
	// Read performs one conversion on the selected channel and returns a 12-bit value.
	Read() uint16
}

// PWMChannel is a single pulse-width output. The hardware counter wraps at WrapPeriod, so duty values above it
// alias rather than saturate.
type PWMChannel interface {
	Set(duty uint16)
}

type Blinker interface {
	Low()
	High()
}

// Display is a monochrome pixel display with an off-screen buffer.
type Display interface {
	drivers.Displayer

	// ClearBuffer blanks the off-screen buffer without pushing it.
	ClearBuffer()
}

// Bootloader reboots the device into its firmware-update mode. On real hardware EnterBootloader does not return.
type Bootloader interface {
	EnterBootloader()
}

// Clock is a monotonic microsecond clock.
type Clock interface {
	NowMicros() uint64
}
