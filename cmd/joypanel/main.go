//go:build rp2040

package main

import (
	"context"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/ajanata/joypanel"
)

func main() {
	// give USB CDC a chance to enumerate so the boot messages are not lost
	time.Sleep(2 * time.Second)
	blink()

	err := machine.I2C1.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       pinSDA,
		SCL:       pinSCL,
	})
	if err != nil {
		earlyPanic("i2c: " + err.Error())
	}
	dev := ssd1306.NewI2C(machine.I2C1)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: displayAddress, VccState: ssd1306.SWITCHCAPVCC})
	dev.ClearBuffer()
	dev.ClearDisplay()
	blink()

	red, blue, err := configurePWM()
	if err != nil {
		earlyPanic("pwm: " + err.Error())
	}

	stick, err := configureJoystick()
	if err != nil {
		earlyPanic("adc: " + err.Error())
	}

	green := pinGreen
	green.Configure(machine.PinConfig{Mode: machine.PinOutput})

	p, err := joypanel.New(joypanel.DefaultConfig(), joypanel.Hardware{
		Joystick:   stick,
		PWMX:       red,
		PWMY:       blue,
		GreenLED:   green,
		Display:    &dev,
		Bootloader: bootsel{},
	}, nil)
	if err != nil {
		earlyPanic(err.Error())
	}
	if err := p.Init(); err != nil {
		earlyPanic(err.Error())
	}

	for pin, b := range map[machine.Pin]joypanel.Button{
		pinButtonA:        joypanel.ButtonMode,
		pinButtonB:        joypanel.ButtonReset,
		pinJoystickButton: joypanel.ButtonIndicator,
	} {
		if err := armButton(pin, p.Handler(b)); err != nil {
			earlyPanic("button " + b.String() + ": " + err.Error())
		}
	}
	blink()

	err = p.Run(context.Background())
	earlyPanic(err.Error())
}

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

// unfortunately you can't recover runtime panics in tinygo, so this is just used for things we detect that are fatal
func earlyPanic(msg string) {
	for {
		println(msg)
		blink()
	}
}
