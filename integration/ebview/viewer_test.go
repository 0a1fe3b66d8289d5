package ebview

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/village"
)

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()
	p, err := village.NewPlayer(village.WithSize(180, 100))
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })

	v, err := New(p, 20*time.Millisecond, "test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	v.quit = func() bool { return false }
	return v
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, time.Second, ""); !errors.Is(err, ErrNilPlayer) {
		t.Errorf("New(nil) error = %v, want ErrNilPlayer", err)
	}

	p, err := village.NewPlayer(village.WithSize(90, 50))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	if _, err := New(p, 0, ""); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("New(interval 0) error = %v, want ErrInvalidInterval", err)
	}
}

func TestTicksPerSecond(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want int
	}{
		{20 * time.Millisecond, 50},
		{time.Second / 60, 60},
		{33 * time.Millisecond, 30},
		{5 * time.Second, 1},
	}
	for _, tt := range tests {
		if got := TicksPerSecond(tt.in); got != tt.want {
			t.Errorf("TicksPerSecond(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUpdateSteps(t *testing.T) {
	v := newTestViewer(t)
	if v.TPS() != 50 {
		t.Errorf("TPS() = %d, want 50", v.TPS())
	}
	for i := 0; i < 3; i++ {
		if err := v.Update(); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}
	if got := v.player.State().Frame; got != 3 {
		t.Errorf("Frame = %d after 3 updates, want 3", got)
	}
}

func TestUpdateQuit(t *testing.T) {
	v := newTestViewer(t)
	v.quit = func() bool { return true }
	if err := v.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() error = %v, want ebiten.Termination", err)
	}
}

func TestUpdateReportsDrawError(t *testing.T) {
	v := newTestViewer(t)
	boom := errors.New("boom")
	v.err = boom
	if err := v.Update(); !errors.Is(err, boom) {
		t.Errorf("Update() error = %v, want draw error", err)
	}
}

func TestLayout(t *testing.T) {
	v := newTestViewer(t)
	w, h := v.Layout(1920, 1080)
	if w != 180 || h != 100 {
		t.Errorf("Layout() = %dx%d, want 180x100", w, h)
	}
}
