package joypanel

import (
	"fmt"
)

// Logger receives the panel's console output. Debug carries the startup and button transitions, Info the
// per-cycle joystick status lines.
type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
}

// printLogger writes every level with println. On the Pico that is the USB CDC serial port, which is not
// enumerated until a host opens it, so the init lines and the first few status lines are usually lost.
type printLogger struct{}

func (printLogger) Debug(msg string) {
	println(msg)
}

func (printLogger) Debugf(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}

func (printLogger) Info(msg string) {
	println(msg)
}

func (printLogger) Infof(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}
