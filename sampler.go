package joypanel

import (
	"sync/atomic"
	"time"
)

// ADC input channels for the two joystick axes.
const (
	adcChannelX = 0
	adcChannelY = 1
)

// Sampler reads both joystick axes. It is only called from the control loop; the most recent sample is also
// published for the button gate, which redraws the display out of band.
type Sampler struct {
	adc    ADC
	settle time.Duration
	sleep  func(time.Duration)
	last   atomic.Uint32
}

func newSampler(adc ADC, settle time.Duration) *Sampler {
	return &Sampler{
		adc:    adc,
		settle: settle,
		sleep:  time.Sleep,
	}
}

// Sample selects each axis in turn, lets the mux settle and converts.
func (s *Sampler) Sample() JoystickSample {
	var js JoystickSample
	js.X = s.read(adcChannelX)
	js.Y = s.read(adcChannelY)
	s.last.Store(js.pack())
	return js
}

func (s *Sampler) read(channel uint8) uint16 {
	s.adc.Select(channel)
	if s.settle > 0 {
		s.sleep(s.settle)
	}
	return s.adc.Read()
}

// Last returns the most recent sample, or the zero sample if none has been taken yet.
func (s *Sampler) Last() JoystickSample {
	return unpackSample(s.last.Load())
}
