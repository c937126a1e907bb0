// Command joysim runs the panel against simulated hardware on a workstation. The stick sweeps a circle, buttons
// are pressed on a script, and every frame pushed to the display can be written out as a BMP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ajanata/joypanel"
	"github.com/ajanata/joypanel/internal/framebuf"
	"github.com/ajanata/joypanel/internal/sim"
	"github.com/ajanata/joypanel/internal/snapshot"
)

// cycle is the simulated length of one loop iteration at the default pacing.
const cycle = 1500 * time.Millisecond

func main() {
	cycles := flag.Int("cycles", 24, "number of loop iterations to simulate")
	frames := flag.String("frames", "", "directory to write pushed frames to as BMP (disabled if empty)")
	presses := flag.String("press", "4:indicator,8:mode,12:mode,16:indicator", "comma-separated cycle:button presses (mode, reset, indicator)")
	radius := flag.Float64("radius", 2100, "radius of the stick sweep in ADC counts")
	verbose := flag.Bool("v", false, "log button transitions")
	flag.Parse()

	script, err := parseScript(*presses)
	if err != nil {
		fmt.Fprintln(os.Stderr, "press:", err)
		os.Exit(2)
	}
	if err := run(*cycles, *frames, script, *radius, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cycles int, frameDir string, script map[int][]joypanel.Button, radius float64, verbose bool) error {
	clock := sim.NewClock(time.Second)
	stick := sim.NewStick(joypanel.CenterX, joypanel.CenterY)
	pwmX, pwmY := &sim.PWM{}, &sim.PWM{}
	led := &sim.LED{}
	boot := &sim.Bootloader{}
	fb := framebuf.New(128, 64)

	var w *snapshot.Writer
	if frameDir != "" {
		var err error
		w, err = snapshot.NewWriter(frameDir, "frame-")
		if err != nil {
			return err
		}
		fb.OnDisplay = func(img image.Image) error {
			_, err := w.Write(img)
			return err
		}
	}

	// pacing is simulated by advancing the clock, so the real waits are disabled
	cfg := joypanel.DefaultConfig()
	cfg.MapPacing, cfg.CyclePacing, cfg.Settle = 0, 0, 0

	log := &clockLogger{clock: clock, verbose: verbose}
	p, err := joypanel.New(cfg, joypanel.Hardware{
		Joystick:   stick,
		PWMX:       pwmX,
		PWMY:       pwmY,
		GreenLED:   led,
		Display:    fb,
		Bootloader: boot,
		Clock:      clock,
	}, log)
	if err != nil {
		return err
	}
	if err := p.Init(); err != nil {
		return err
	}

	ctx := context.Background()
	for i := 0; i < cycles; i++ {
		stick.Move(sweep(i, cycles, radius))
		for _, b := range script[i] {
			// edges go straight to the gate so the run is deterministic
			p.Gate().Handle(joypanel.Edge{Button: b, AtMicros: clock.NowMicros()})
		}

		err := p.Tick(ctx)
		if errors.Is(err, joypanel.ErrBootloader) {
			log.Info("entered bootloader, stopping")
			break
		}
		if err != nil {
			return err
		}
		log.Debugf("duty x=%d (%d) y=%d (%d)", pwmX.Duty(), pwmX.Duty()%joypanel.WrapPeriod, pwmY.Duty(), pwmY.Duty()%joypanel.WrapPeriod)
		clock.Advance(cycle)
	}

	st := p.State()
	fmt.Printf("ticks=%d pushes=%d pwm=%t green=%t border=%v bootloader=%d drops=%d\n",
		p.Ticks(), fb.Pushes(), st.PWMEnabled(), st.GreenLED(), st.Border(), boot.Calls(), p.Gate().Drops())
	if w != nil {
		fmt.Printf("wrote %d frames to %s\n", w.Count(), frameDir)
	}
	return nil
}

// sweep walks the stick once around a circle centered on the rest position, clamped to the ADC range.
func sweep(i, n int, radius float64) (x, y uint16) {
	a := 2 * math.Pi * float64(i) / float64(n)
	return axis(joypanel.CenterX + radius*math.Cos(a)), axis(joypanel.CenterY + radius*math.Sin(a))
}

func axis(v float64) uint16 {
	return uint16(math.Max(0, math.Min(joypanel.AxisMax, math.Round(v))))
}

func parseScript(s string) (map[int][]joypanel.Button, error) {
	script := map[int][]joypanel.Button{}
	if strings.TrimSpace(s) == "" {
		return script, nil
	}
	for _, part := range strings.Split(s, ",") {
		at, name, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, errors.New("expected cycle:button, got " + strconv.Quote(part))
		}
		n, err := strconv.Atoi(at)
		if err != nil || n < 0 {
			return nil, errors.New("bad cycle " + strconv.Quote(at))
		}
		b, err := parseButton(name)
		if err != nil {
			return nil, err
		}
		script[n] = append(script[n], b)
	}
	return script, nil
}

func parseButton(name string) (joypanel.Button, error) {
	for _, b := range []joypanel.Button{joypanel.ButtonMode, joypanel.ButtonReset, joypanel.ButtonIndicator} {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, errors.New("unknown button " + strconv.Quote(name))
}

// clockLogger prefixes each line with the simulated time.
type clockLogger struct {
	clock   *sim.Clock
	verbose bool
}

func (l *clockLogger) prefix() string {
	return "[" + (time.Duration(l.clock.NowMicros()) * time.Microsecond).String() + "] "
}

func (l *clockLogger) Debug(msg string) {
	if l.verbose {
		fmt.Println(l.prefix() + msg)
	}
}

func (l *clockLogger) Debugf(format string, v ...any) { l.Debug(fmt.Sprintf(format, v...)) }

func (l *clockLogger) Info(msg string) { fmt.Println(l.prefix() + msg) }

func (l *clockLogger) Infof(format string, v ...any) { l.Info(fmt.Sprintf(format, v...)) }
