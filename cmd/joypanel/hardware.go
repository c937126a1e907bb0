//go:build rp2040

package main

import (
	"machine"

	"github.com/ajanata/joypanel"
)

const (
	pinRed            = machine.GPIO13
	pinBlue           = machine.GPIO12
	pinGreen          = machine.GPIO11
	pinButtonA        = machine.GPIO5
	pinButtonB        = machine.GPIO6
	pinJoystickButton = machine.GPIO22
	pinJoystickX      = machine.ADC0 // GP26
	pinJoystickY      = machine.ADC1 // GP27
	pinSDA            = machine.GPIO14
	pinSCL            = machine.GPIO15

	displayAddress = 0x3C

	pwmPeriodNanos = 1e9 / 50
)

// pwmGroup is the subset of the RP2040 PWM slice API used here.
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	SetTop(top uint32)
}

type pwmChannel struct {
	group pwmGroup
	ch    uint8
}

// Set writes duty as-is; values past the wrap period are left for the hardware to deal with.
func (c pwmChannel) Set(duty uint16) {
	c.group.Set(c.ch, uint32(duty))
}

// configurePWM sets up the red and blue LEDs. Both sit on slice 6. Lowering TOP to the wrap period after
// Configure keeps the clock divisor chosen for the 20ms period, so the slice ends up at several hundred Hz
// rather than 50.
func configurePWM() (red, blue pwmChannel, err error) {
	var slice pwmGroup = machine.PWM6
	if err = slice.Configure(machine.PWMConfig{Period: pwmPeriodNanos}); err != nil {
		return
	}
	slice.SetTop(joypanel.WrapPeriod)

	red.group, blue.group = slice, slice
	if red.ch, err = slice.Channel(pinRed); err != nil {
		return
	}
	blue.ch, err = slice.Channel(pinBlue)
	return
}

// joystickADC presents the two ADC pins as one multiplexed converter.
type joystickADC struct {
	inputs [2]machine.ADC
	sel    uint8
}

func configureJoystick() (*joystickADC, error) {
	machine.InitADC()
	a := &joystickADC{inputs: [2]machine.ADC{{Pin: pinJoystickX}, {Pin: pinJoystickY}}}
	for i := range a.inputs {
		if err := a.inputs[i].Configure(machine.ADCConfig{}); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *joystickADC) Select(channel uint8) { a.sel = channel }

// Read scales the 16-bit reading TinyGo reports back down to the converter's 12 bits.
func (a *joystickADC) Read() uint16 {
	if int(a.sel) >= len(a.inputs) {
		return 0
	}
	return a.inputs[a.sel].Get() >> 4
}

func armButton(pin machine.Pin, handler func()) error {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return pin.SetInterrupt(machine.PinFalling, func(machine.Pin) { handler() })
}

type bootsel struct{}

func (bootsel) EnterBootloader() { machine.EnterBootloader() }
