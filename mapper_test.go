package joypanel

import (
	"testing"

	"github.com/ajanata/joypanel/internal/sim"
)

func TestDutyForDeadZone(t *testing.T) {
	for _, center := range []uint16{CenterX, CenterY} {
		for v := center - DeadZone; v <= center+DeadZone; v++ {
			if d := DutyFor(v, center); d != 0 {
				t.Fatalf("DutyFor(%d, %d) = %d, want 0", v, center, d)
			}
		}
	}
}

func TestDutyForOutsideDeadZone(t *testing.T) {
	cases := []struct {
		value, center, want uint16
	}{
		{CenterX + DeadZone + 1, CenterX, 2 * (DeadZone + 1)},
		{CenterX - DeadZone - 1, CenterX, 2 * (DeadZone + 1)},
		{0, CenterX, 3800},
		{0, CenterY, 4000},
		{AxisMax, CenterX, 4390},
		{AxisMax, CenterY, 4190},
		{3000, CenterY, 2000},
	}
	for _, c := range cases {
		if got := DutyFor(c.value, c.center); got != c.want {
			t.Errorf("DutyFor(%d, %d) = %d, want %d", c.value, c.center, got, c.want)
		}
	}
}

func TestDutyForIsUnclampedAndWraps(t *testing.T) {
	d := ChannelDuty{Channel: ChannelX, Duty: DutyFor(AxisMax, CenterX)}
	if d.Duty <= WrapPeriod {
		t.Fatalf("duty %d should exceed the wrap period", d.Duty)
	}
	if d.Effective() != 294 {
		t.Fatalf("effective duty = %d, want 294", d.Effective())
	}
	d = ChannelDuty{Channel: ChannelY, Duty: DutyFor(AxisMax, CenterY)}
	if d.Effective() != 94 {
		t.Fatalf("effective duty = %d, want 94", d.Effective())
	}
}

func TestApplyFullDeflection(t *testing.T) {
	r := newRig()
	m := newMapper(newControlState(), r.x, r.y)
	got := m.Apply(JoystickSample{X: AxisMax, Y: AxisMax})
	if got[0].Duty != 4390 || got[1].Duty != 4190 {
		t.Fatalf("mapped %+v", got)
	}
	if r.x.Duty() != 4390 || r.y.Duty() != 4190 {
		t.Fatalf("written x=%d y=%d", r.x.Duty(), r.y.Duty())
	}
}

func TestApplyDeadZoneAxisIsExplicitZero(t *testing.T) {
	r := newRig()
	m := newMapper(newControlState(), r.x, r.y)

	m.Apply(JoystickSample{X: 0, Y: 0})
	if r.y.Duty() == 0 {
		t.Fatal("setup: y should be lit")
	}
	// Only X leaves its dead zone; Y must not keep the previous duty.
	m.Apply(JoystickSample{X: AxisMax, Y: CenterY})
	if r.x.Duty() != 4390 {
		t.Fatalf("x duty = %d, want 4390", r.x.Duty())
	}
	if r.y.Duty() != 0 {
		t.Fatalf("y duty = %d, want 0", r.y.Duty())
	}
}

func TestApplySkipsWritesWhileDisabled(t *testing.T) {
	r := newRig()
	st := newControlState()
	st.pwmEnabled.Store(false)
	m := newMapper(st, r.x, r.y)

	got := m.Apply(JoystickSample{X: AxisMax, Y: 0})
	if got[0].Duty == 0 || got[1].Duty == 0 {
		t.Fatalf("duties should still be computed: %+v", got)
	}
	if r.x.Writes() != 0 || r.y.Writes() != 0 {
		t.Fatalf("writes while disabled: x=%d y=%d", r.x.Writes(), r.y.Writes())
	}
}

// hookPWM runs onFirst from inside its first Set, i.e. after Apply has seen PWM enabled but before both
// duties are out.
type hookPWM struct {
	*sim.PWM
	onFirst func()
	fired   bool
}

func (h *hookPWM) Set(duty uint16) {
	if !h.fired {
		h.fired = true
		h.onFirst()
	}
	h.PWM.Set(duty)
}

func TestApplyLosesToDisableMidWrite(t *testing.T) {
	r := newRig()
	x := &hookPWM{PWM: r.x, fired: true}
	hw := r.hardware()
	hw.PWMX = x
	p, err := New(fastConfig(), hw, r.log)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	x.fired = false
	x.onFirst = func() {
		if !p.Gate().Handle(Edge{Button: ButtonMode, AtMicros: r.clock.NowMicros()}) {
			t.Error("mode edge rejected")
		}
	}
	p.mapper.Apply(JoystickSample{X: AxisMax, Y: AxisMax})

	if p.State().PWMEnabled() {
		t.Fatal("PWM still enabled")
	}
	if r.x.Duty() != 0 || r.y.Duty() != 0 {
		t.Fatalf("duties after disable: x=%d y=%d", r.x.Duty(), r.y.Duty())
	}
}
