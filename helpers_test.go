package joypanel

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ajanata/joypanel/internal/framebuf"
	"github.com/ajanata/joypanel/internal/sim"
)

// recLogger keeps every line so tests can assert on console output. It is safe to use after the test returns,
// which matters because the gate goroutine may still be logging.
type recLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recLogger) add(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *recLogger) Debug(msg string)               { l.add(msg) }
func (l *recLogger) Debugf(format string, v ...any) { l.add(fmt.Sprintf(format, v...)) }
func (l *recLogger) Info(msg string)                { l.add(msg) }
func (l *recLogger) Infof(format string, v ...any)  { l.add(fmt.Sprintf(format, v...)) }

func (l *recLogger) has(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

type rig struct {
	stick *sim.Stick
	x, y  *sim.PWM
	led   *sim.LED
	fb    *framebuf.Buffer
	boot  *sim.Bootloader
	clock *sim.Clock
	log   *recLogger
}

// fastConfig has no pacing so a Tick returns immediately.
func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.MapPacing = 0
	cfg.CyclePacing = 0
	cfg.Settle = 0
	return cfg
}

func newRig() *rig {
	return &rig{
		stick: sim.NewStick(CenterX, CenterY),
		x:     &sim.PWM{},
		y:     &sim.PWM{},
		led:   &sim.LED{},
		fb:    framebuf.New(128, 64),
		boot:  &sim.Bootloader{},
		clock: sim.NewClock(10 * time.Second),
		log:   &recLogger{},
	}
}

func (r *rig) hardware() Hardware {
	return Hardware{
		Joystick:   r.stick,
		PWMX:       r.x,
		PWMY:       r.y,
		GreenLED:   r.led,
		Display:    r.fb,
		Bootloader: r.boot,
		Clock:      r.clock,
	}
}

func newTestPanel(t *testing.T, cfg Config) (*Panel, *rig) {
	t.Helper()
	r := newRig()
	p, err := New(cfg, r.hardware(), r.log)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return p, r
}

// press feeds b to the gate at the current clock reading and then advances the clock by after.
func (r *rig) press(p *Panel, b Button, after time.Duration) bool {
	ok := p.Gate().Handle(Edge{Button: b, AtMicros: r.clock.NowMicros()})
	r.clock.Advance(after)
	return ok
}
