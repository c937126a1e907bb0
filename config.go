package joypanel

import (
	"errors"
	"time"
)

// Calibration. These are fixed for the board and are not configurable at runtime.
const (
	CenterX  = 1900
	CenterY  = 2000
	DeadZone = 200
	Gain     = 2

	// WrapPeriod is the PWM counter period in ticks.
	WrapPeriod = 4096

	// AxisMax is the largest value the ADC produces.
	AxisMax = 4095
)

// Indicator placement. The scale denominator is 4080, not AxisMax; at full deflection the indicator lands a
// fraction of a pixel past the nominal span.
const (
	scaleDenominator = 4080
	spanX            = 119
	spanY            = 55

	correctLimitX = 8
	correctLimitY = 9
	correctOffset = 8

	indicatorSize = 8
)

type Config struct {
	// MapPacing is the wait after the PWM duties are written each cycle.
	MapPacing   time.Duration
	// CyclePacing is the wait after the status line at the end of each cycle.
	CyclePacing time.Duration
	// Settle is how long the ADC input mux is given to settle before a conversion.
	Settle      time.Duration
	// Debounce is the minimum spacing between two accepted button edges, across all buttons.
	Debounce    time.Duration
	// EdgeQueue is how many button edges may be pending before the interrupt side starts dropping them.
	EdgeQueue   int
}

func DefaultConfig() Config {
	return Config{
		MapPacing:   500 * time.Millisecond,
		CyclePacing: time.Second,
		Settle:      2 * time.Microsecond,
		Debounce:    200 * time.Millisecond,
		EdgeQueue:   8,
	}
}

func (c Config) validate() error {
	if c.MapPacing < 0 || c.CyclePacing < 0 || c.Settle < 0 {
		return errors.New("pacing must not be negative")
	}
	if c.Debounce <= 0 {
		return errors.New("debounce window must be positive")
	}
	if c.EdgeQueue <= 0 {
		return errors.New("edge queue must hold at least one edge")
	}
	return nil
}
