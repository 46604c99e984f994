// Package window runs a session in a raylib window.
package window

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"gridsnake/game"
	"gridsnake/input"
	"gridsnake/ui"
)

const (
	scoreBarHeight = 36
	fontSize       = 20
	targetFPS      = 120
)

var keyCodes = map[string]int32{
	"Space":      rl.KeySpace,
	"ArrowUp":    rl.KeyUp,
	"ArrowDown":  rl.KeyDown,
	"ArrowLeft":  rl.KeyLeft,
	"ArrowRight": rl.KeyRight,
}

// keyboard reads raylib's pressed-key queue and auto-repeat flags
type keyboard struct{}

func (keyboard) NextPressed() int32 {
	return rl.GetKeyPressed()
}

func (keyboard) Repeated(code int32) bool {
	return rl.IsKeyPressedRepeat(code)
}

type Window struct {
	bindings     *input.Bindings
	surface      *ui.Surface
	logger       log.Logger
	screenWidth  int32
	screenHeight int32
	boardHeight  int32
}

// Open creates the raylib window sized to the board plus a score bar
func Open(title string, boardWidth, boardHeight int, surface *ui.Surface, logger log.Logger) (*Window, error) {
	bindings, err := input.NewBindings(keyCodes)
	if err != nil {
		return nil, errors.Wrap(err, "key bindings")
	}

	w := &Window{
		bindings:     bindings,
		surface:      surface,
		logger:       logger,
		screenWidth:  int32(boardWidth),
		screenHeight: int32(boardHeight) + scoreBarHeight,
		boardHeight:  int32(boardHeight),
	}

	rl.InitWindow(w.screenWidth, w.screenHeight, title)
	rl.SetTargetFPS(targetFPS)
	return w, nil
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func toRaylib(c ui.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// Run drives the session until the window is closed
func (w *Window) Run(g *game.Game) {
	for !rl.WindowShouldClose() {
		now := time.Now()
		for _, key := range w.bindings.Poll(keyboard{}) {
			if key == input.KeySpace {
				w.surface.Dismiss()
			}
			g.HandleKey(key, now)
		}

		g.Update(now)
		w.draw(g.Running())
	}
	level.Debug(w.logger).Log("msg", "window closed")
}

func (w *Window) draw(running bool) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, r := range w.surface.Rects {
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), toRaylib(r.Color))
	}

	text := toRaylib(ui.TextColor)
	rl.DrawText("Score: "+w.surface.Score(), 10, w.boardHeight+(scoreBarHeight-fontSize)/2, fontSize, text)

	switch {
	case w.surface.Message() != "":
		// Dim the board behind the modal
		rl.DrawRectangle(0, 0, w.screenWidth, w.boardHeight, rl.Color{R: 0, G: 0, B: 0, A: 160})
		w.drawCentered(w.surface.Message(), text)
	case !running:
		w.drawCentered(ui.StartPrompt, text)
	}

	rl.EndDrawing()
}

func (w *Window) drawCentered(msg string, color rl.Color) {
	width := rl.MeasureText(msg, fontSize)
	rl.DrawText(msg, (w.screenWidth-width)/2, (w.boardHeight-fontSize)/2, fontSize, color)
}
