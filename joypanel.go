package joypanel

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotInitialized is returned by Tick and Run before Init has succeeded.
	ErrNotInitialized = errors.New("not initialized")
	// ErrBootloader is returned by Tick and Run once the reset button has been taken. On a board the bootloader
	// call never returns, so this is only ever seen on hosts.
	ErrBootloader = errors.New("entered bootloader")
)

// Panel is the joystick control unit: it samples the stick, drives the two PWM LEDs from it and draws the stick
// position on the display, while three buttons toggle its behaviour.
type Panel struct {
	cfg      Config
	hw       Hardware
	log      Logger
	state    *ControlState
	sampler  *Sampler
	mapper   *Mapper
	renderer *Renderer
	gate     *Gate

	init  bool
	start time.Time
	tick  uint32
}

// New wires a panel to its hardware. log may be nil, in which case everything goes to println.
func New(cfg Config, hw Hardware, log Logger) (*Panel, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.New("config: " + err.Error())
	}
	if hw.Joystick == nil {
		return nil, errors.New("must provide joystick ADC")
	}
	if hw.PWMX == nil || hw.PWMY == nil {
		return nil, errors.New("must provide both PWM channels")
	}
	if hw.GreenLED == nil {
		return nil, errors.New("must provide green LED")
	}
	if hw.Display == nil {
		return nil, errors.New("must provide display")
	}
	if hw.Bootloader == nil {
		return nil, errors.New("must provide bootloader")
	}
	if log == nil {
		log = printLogger{}
	}

	p := &Panel{
		cfg:   cfg,
		hw:    hw,
		log:   log,
		state: newControlState(),
		start: time.Now(),
	}
	if p.hw.Clock == nil {
		p.hw.Clock = monotonicClock{start: p.start}
	}
	p.sampler = newSampler(hw.Joystick, cfg.Settle)
	p.mapper = newMapper(p.state, hw.PWMX, hw.PWMY)
	p.renderer = newRenderer(hw.Display)
	p.gate = &Gate{
		state:  p.state,
		window: uint64(cfg.Debounce / time.Microsecond),
		clock:  p.hw.Clock,
		mapper: p.mapper,
		led:    hw.GreenLED,
		boot:   hw.Bootloader,
		redraw: p.redraw,
		log:    log,
		edges:  make(chan Edge, cfg.EdgeQueue),
		done:   make(chan struct{}),
	}
	return p, nil
}

// Init puts the outputs into their startup state: green LED off, both PWM channels at 0 and a blank display.
// Button interrupts may be armed before or after Init; edges queue until Run starts.
func (p *Panel) Init() error {
	if p.init {
		return errors.New("already initialized")
	}
	p.log.Debug("starting init")

	p.hw.GreenLED.Low()
	p.mapper.Off()
	if err := p.renderer.Clear(); err != nil {
		return errors.New("clear display: " + err.Error())
	}

	p.init = true
	p.log.Debug("init complete in " + time.Since(p.start).Round(time.Millisecond).String())
	return nil
}

// Run starts the button gate and then runs the control loop until ctx is done, the reset button is taken, or
// the display fails. The gate is stopped before Run returns.
func (p *Panel) Run(ctx context.Context) error {
	if !p.init {
		return ErrNotInitialized
	}
	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	go func() {
		p.gate.Run(ctx)
		close(stopped)
	}()
	defer func() {
		cancel()
		<-stopped
	}()

	for {
		if err := p.Tick(ctx); err != nil {
			return err
		}
	}
}

// Tick runs one loop iteration: sample, drive the LEDs, render, print the status lines. Both pacing waits are
// included, so a default-configured Tick takes about 1.5s.
func (p *Panel) Tick(ctx context.Context) error {
	if !p.init {
		return ErrNotInitialized
	}
	p.tick++

	s := p.sampler.Sample()
	p.mapper.Apply(s)
	if err := p.wait(ctx, p.cfg.MapPacing); err != nil {
		return err
	}

	f, err := p.renderer.Render(s, p.state.Border())
	if err != nil {
		return errors.New("render: " + err.Error())
	}

	p.log.Info("joystick reading")
	p.log.Infof("X axis: %d  Y axis: %d", s.X, s.Y)
	p.log.Infof("square X: %.2f  Y: %.2f", f.XPos, f.YPos)

	return p.wait(ctx, p.cfg.CyclePacing)
}

// wait blocks for d, returning early if ctx is done or the gate has taken the reset transition.
func (p *Panel) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.gate.Done():
			return ErrBootloader
		default:
			return nil
		}
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.gate.Done():
		return ErrBootloader
	case <-t.C:
		return nil
	}
}

// redraw is the gate's out-of-band render with the latest sample.
func (p *Panel) redraw() {
	f, err := p.renderer.Render(p.sampler.Last(), p.state.Border())
	if err != nil {
		p.log.Info("redraw: " + err.Error())
		return
	}
	p.log.Infof("square X: %.2f  Y: %.2f", f.XPos, f.YPos)
}

// Handler returns the interrupt handler to attach to the falling edge of b's input.
func (p *Panel) Handler(b Button) func() { return p.gate.Handler(b) }

// State exposes the shared control flags for reading.
func (p *Panel) State() *ControlState { return p.state }

// Gate exposes the button gate, e.g. to feed it edges directly or read its drop counter.
func (p *Panel) Gate() *Gate { return p.gate }

// Ticks is the number of loop iterations started so far.
func (p *Panel) Ticks() uint32 { return p.tick }

type monotonicClock struct {
	start time.Time
}

func (c monotonicClock) NowMicros() uint64 {
	return uint64(time.Since(c.start) / time.Microsecond)
}
