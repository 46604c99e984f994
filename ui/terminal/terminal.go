// Package terminal runs a session inside a tcell screen. Every grid cell is
// drawn as two terminal columns so the board keeps a square aspect.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/input"
	"gridsnake/ui"
)

const (
	cellWidth  = 2
	frameDelay = 10 * time.Millisecond
)

type Terminal struct {
	screen  tcell.Screen
	surface *ui.Surface
	logger  log.Logger
}

func New(screen tcell.Screen, surface *ui.Surface, logger log.Logger) *Terminal {
	return &Terminal{
		screen:  screen,
		surface: surface,
		logger:  logger,
	}
}

// Open creates and initializes the process terminal screen
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	return screen, nil
}

func toTcell(c ui.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Paint replays the surface onto the screen back buffer
func (t *Terminal) Paint(running bool) {
	t.screen.Clear()

	for _, r := range t.surface.Rects {
		t.fillRect(r)
	}

	rows := t.surface.Height / types.CellSize
	text := tcell.StyleDefault.Foreground(toTcell(ui.TextColor))
	t.drawText(0, rows, "Score: "+t.surface.Score(), text)

	switch {
	case t.surface.Message() != "":
		t.drawText(0, rows+1, t.surface.Message(), text.Bold(true))
	case !running:
		t.drawText(0, rows+1, ui.StartPrompt, text)
	}
}

// fillRect covers every grid cell the pixel rectangle touches
func (t *Terminal) fillRect(r ui.Rect) {
	style := tcell.StyleDefault.Background(toTcell(r.Color))

	col0 := r.X / types.CellSize
	row0 := r.Y / types.CellSize
	cols := (r.W + types.CellSize - 1) / types.CellSize
	rows := (r.H + types.CellSize - 1) / types.CellSize

	for row := row0; row < row0+rows; row++ {
		for col := col0; col < col0+cols; col++ {
			x := col * cellWidth
			for dx := 0; dx < cellWidth; dx++ {
				t.screen.SetContent(x+dx, row, ' ', nil, style)
			}
		}
	}
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// TranslateKey maps a tcell key event to a logical key. The second result
// reports a quit request.
func TranslateKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyNone, true
	case tcell.KeyUp:
		return input.KeyArrowUp, false
	case tcell.KeyDown:
		return input.KeyArrowDown, false
	case tcell.KeyLeft:
		return input.KeyArrowLeft, false
	case tcell.KeyRight:
		return input.KeyArrowRight, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.KeySpace, false
		case 'q', 'Q':
			return input.KeyNone, true
		}
	}
	return input.KeyNone, false
}

// Dispatch applies one screen event to the session. Returns false on quit.
func (t *Terminal) Dispatch(g *game.Game, ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, quit := TranslateKey(ev)
		if quit {
			level.Debug(t.logger).Log("msg", "quit requested")
			return false
		}
		if key == input.KeySpace {
			t.surface.Dismiss()
		}
		g.HandleKey(key, now)

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Run drives the session until ctx is done or the player quits
func (t *Terminal) Run(ctx context.Context, g *game.Game) error {
	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.Paint(g.Running())
	t.screen.Show()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !t.Dispatch(g, ev, time.Now()) {
				return nil
			}

		case <-ticker.C:
			g.Update(time.Now())
			t.Paint(g.Running())
			t.screen.Show()
		}
	}
}
