package game

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/input"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

// recordingView captures everything a session pushes to its output boundary
type recordingView struct {
	redraws  int
	scores   []string
	messages []string
}

func (v *recordingView) Redraw(*Game)            { v.redraws++ }
func (v *recordingView) SetScore(text string)    { v.scores = append(v.scores, text) }
func (v *recordingView) GameOver(message string) { v.messages = append(v.messages, message) }

func (v *recordingView) lastScore() string {
	if len(v.scores) == 0 {
		return ""
	}
	return v.scores[len(v.scores)-1]
}

func newTestGame(t *testing.T) (*Game, *recordingView) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1
	view := &recordingView{}
	g, err := NewGame(cfg, WithView(view))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g, view
}

func TestStartInitializesBoard(t *testing.T) {
	g, view := newTestGame(t)
	g.Start(at(0))

	want := []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}, {X: 7, Y: 10}}
	body := g.Snake()
	if len(body) != len(want) {
		t.Fatalf("Expected %d segments, got %d", len(want), len(body))
	}
	for i, p := range want {
		if body[i] != p {
			t.Errorf("Segment %d: expected %v, got %v", i, p, body[i])
		}
	}
	if g.Heading() != types.Right {
		t.Errorf("Expected heading right, got %s", g.Heading())
	}
	if view.lastScore() != "0" {
		t.Errorf("Expected score label \"0\", got %q", view.lastScore())
	}
	for _, p := range body {
		if p == g.Food() {
			t.Errorf("Food spawned on snake at %v", p)
		}
	}
	if !g.Running() {
		t.Error("Expected game to be running after start")
	}
	if g.Period() != types.BaseInterval {
		t.Errorf("Expected base period %v, got %v", types.BaseInterval, g.Period())
	}
	if g.UUID == "" {
		t.Error("Expected a session id after start")
	}
}

func TestNewGameIsIdleButDrawn(t *testing.T) {
	g, view := newTestGame(t)

	if g.Running() {
		t.Error("Expected a new game to be idle")
	}
	if view.redraws == 0 {
		t.Error("Expected the idle board to be drawn")
	}
	if g.Period() != 0 {
		t.Errorf("Expected stopped clock, got period %v", g.Period())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g, view := newTestGame(t)
	g.Start(at(0))
	g.snake = entity.NewSnake(types.Point{X: 19, Y: 10}, 4, types.Right)

	g.Advance(at(150))

	if g.Running() {
		t.Error("Expected game over after hitting the wall")
	}
	if g.Period() != 0 {
		t.Errorf("Expected clock stopped, got period %v", g.Period())
	}
	if len(view.messages) != 1 || view.messages[0] != GameOverMessage {
		t.Errorf("Expected one game over notification, got %v", view.messages)
	}
	if g.Stats.GamesPlayed() != 1 || g.Stats.Games[0].Reason != "wall" {
		t.Errorf("Expected one recorded wall game, got %+v", g.Stats.Games)
	}
	if g.snake.GetHead() != (types.Point{X: 19, Y: 10}) {
		t.Errorf("Expected body untouched on collision, head at %v", g.snake.GetHead())
	}
}

func TestMovingIntoTailIsCollision(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start(at(0))
	g.snake = &entity.Snake{
		Body:      []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}},
		Direction: types.Right,
	}

	g.Advance(at(150))

	if g.Running() {
		t.Fatal("Expected moving into the tail cell to end the game")
	}
	if reason := g.Stats.Games[0].Reason; reason != manager.SelfCollision.String() {
		t.Errorf("Expected self collision, got %s", reason)
	}
}

func TestEatingFood(t *testing.T) {
	g, view := newTestGame(t)
	g.Start(at(0))
	g.food = types.Point{X: 11, Y: 10}

	g.Advance(at(150))

	if g.Score() != 10 {
		t.Errorf("Expected score 10, got %d", g.Score())
	}
	if view.lastScore() != "10" {
		t.Errorf("Expected score label \"10\", got %q", view.lastScore())
	}
	if len(g.Snake()) != 5 {
		t.Errorf("Expected length 5 after eating, got %d", len(g.Snake()))
	}
	if g.snake.Occupies(g.Food()) {
		t.Errorf("New food spawned on snake at %v", g.Food())
	}
}

func TestAdvanceInvariants(t *testing.T) {
	g, _ := newTestGame(t)
	rng := rand.New(rand.NewSource(7))
	arrows := []input.Key{input.KeyArrowUp, input.KeyArrowDown, input.KeyArrowLeft, input.KeyArrowRight}

	now := 0
	g.Start(at(now))
	for step := 0; step < 2000; step++ {
		now += 150
		if !g.Running() {
			g.Start(at(now))
			continue
		}

		if rng.Intn(3) == 0 {
			before := g.Heading()
			g.HandleKey(arrows[rng.Intn(len(arrows))], at(now))
			if g.Heading() == before.Opposite() {
				t.Fatalf("Step %d: heading reversed from %s to %s", step, before, g.Heading())
			}
		}

		prevLen := len(g.Snake())
		prevHead := g.Snake()[0]
		heading := g.Heading()

		g.Advance(at(now))
		if !g.Running() {
			continue
		}

		body := g.Snake()
		if d := len(body) - prevLen; d != 0 && d != 1 {
			t.Fatalf("Step %d: length changed by %d", step, d)
		}
		if body[0] != prevHead.Step(heading) {
			t.Fatalf("Step %d: head moved from %v to %v heading %s", step, prevHead, body[0], heading)
		}
		if g.snake.Occupies(g.Food()) {
			t.Fatalf("Step %d: food %v on snake", step, g.Food())
		}
	}
}

func TestBoostIndependentOfReversalGuard(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start(at(0))

	for _, ms := range []int{0, 50, 120} {
		g.HandleKey(input.KeyArrowLeft, at(ms))
	}

	if g.Heading() != types.Right {
		t.Errorf("Expected reversal to be rejected, heading %s", g.Heading())
	}
	if g.SpeedState() != manager.SpeedBoosted {
		t.Errorf("Expected boost to activate, got %s", g.SpeedState())
	}
	if g.Period() != 90*time.Millisecond {
		t.Errorf("Expected boosted period 90ms, got %v", g.Period())
	}
}

func TestTwoTurnsWithinOneTickReachTheNeck(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start(at(0))

	// Each press is checked against the last committed heading, not the last move
	g.HandleKey(input.KeyArrowUp, at(10))
	g.HandleKey(input.KeyArrowLeft, at(20))

	if g.Heading() != types.Left {
		t.Fatalf("Expected heading Left after Up then Left, got %s", g.Heading())
	}

	g.Update(at(150))

	if g.Running() {
		t.Fatal("Expected the snake to run into its neck")
	}
	if reason := g.Stats.Games[0].Reason; reason != manager.SelfCollision.String() {
		t.Errorf("Expected self collision, got %s", reason)
	}
}

func TestSlowPressesDoNotBoost(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start(at(0))

	for _, ms := range []int{0, 100, 200} {
		g.HandleKey(input.KeyArrowUp, at(ms))
	}

	if g.SpeedState() != manager.SpeedBase {
		t.Errorf("Expected base speed, got %s", g.SpeedState())
	}
	if g.Period() != types.BaseInterval {
		t.Errorf("Expected base period, got %v", g.Period())
	}
}

func TestBoostDeactivatesAfterInactivity(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start(at(0))
	for _, ms := range []int{0, 20, 40} {
		g.HandleKey(input.KeyArrowDown, at(ms))
	}

	g.Update(at(439))
	if g.SpeedState() != manager.SpeedBoosted {
		t.Fatalf("Expected boost to hold before the reset delay, got %s", g.SpeedState())
	}

	g.Update(at(440))
	if g.SpeedState() != manager.SpeedBase {
		t.Fatalf("Expected base speed 400ms after the last press, got %s", g.SpeedState())
	}
	if g.Period() != types.BaseInterval {
		t.Errorf("Expected clock restarted at base period, got %v", g.Period())
	}
	if g.BoostPending() {
		t.Error("Expected no deactivation pending after it fired")
	}
}

func TestPressPostponesDeactivation(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start(at(0))
	for _, ms := range []int{0, 20, 40} {
		g.HandleKey(input.KeyArrowDown, at(ms))
	}

	// A slow press keeps the boost alive and moves the deadline
	g.HandleKey(input.KeyArrowDown, at(300))

	g.Update(at(440))
	if g.SpeedState() != manager.SpeedBoosted {
		t.Errorf("Expected boost to survive the first deadline, got %s", g.SpeedState())
	}
	g.Update(at(700))
	if g.SpeedState() != manager.SpeedBase {
		t.Errorf("Expected base speed 400ms after the last press, got %s", g.SpeedState())
	}
}

func TestGameOverCancelsDeactivation(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start(at(0))
	for _, ms := range []int{0, 20, 40} {
		g.HandleKey(input.KeyArrowUp, at(ms))
	}
	g.snake = entity.NewSnake(types.Point{X: 10, Y: 0}, 4, types.Up)

	g.Advance(at(100))
	if g.Running() {
		t.Fatal("Expected wall collision at the top edge")
	}

	g.Update(at(1000))
	if g.Period() != 0 {
		t.Errorf("Expected clock to stay stopped after game over, got %v", g.Period())
	}
}

func TestInputIgnoredWhileIdle(t *testing.T) {
	g, _ := newTestGame(t)

	g.HandleKey(input.KeyArrowUp, at(0))
	g.HandleKey(input.KeyArrowUp, at(10))
	g.HandleKey(input.KeyArrowUp, at(20))

	if g.Heading() != types.Right {
		t.Errorf("Expected heading unchanged while idle, got %s", g.Heading())
	}
	if g.BoostPending() || g.SpeedState() != manager.SpeedBase {
		t.Error("Expected no speed bookkeeping while idle")
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start(at(0))

	g.HandleKey(input.KeyNone, at(10))

	if g.BoostPending() {
		t.Error("Expected unknown key not to schedule a deactivation")
	}
	if g.Heading() != types.Right {
		t.Errorf("Expected heading unchanged, got %s", g.Heading())
	}
}

func TestSpaceRestartsAfterGameOver(t *testing.T) {
	g, view := newTestGame(t)
	g.Start(at(0))
	g.food = types.Point{X: 11, Y: 10}
	g.Advance(at(150))
	g.snake = entity.NewSnake(types.Point{X: 19, Y: 10}, 4, types.Right)
	g.Advance(at(300))
	if g.Running() {
		t.Fatal("Expected game over")
	}

	g.HandleKey(input.KeySpace, at(1000))

	if !g.Running() {
		t.Error("Expected space to start a new game")
	}
	if g.Score() != 0 || view.lastScore() != "0" {
		t.Errorf("Expected score reset, got %d / %q", g.Score(), view.lastScore())
	}
	if len(g.Snake()) != types.InitialSnakeLength {
		t.Errorf("Expected fresh snake, got length %d", len(g.Snake()))
	}
	if g.Stats.BestScore != 10 {
		t.Errorf("Expected best score 10, got %d", g.Stats.BestScore)
	}
}

func TestSpaceRestartsWhileRunning(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start(at(0))
	first := g.UUID
	g.HandleKey(input.KeyArrowUp, at(10))

	g.HandleKey(input.KeySpace, at(20))

	if g.UUID == first {
		t.Error("Expected a new session id on restart")
	}
	if g.Heading() != types.Right {
		t.Errorf("Expected heading reset to right, got %s", g.Heading())
	}
	if g.BoostPending() {
		t.Error("Expected pending deactivation cancelled by reset")
	}
}

func TestWinWhenBoardFull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid = types.Grid{Width: 4, Height: 1}
	cfg.InitialLength = 3
	view := &recordingView{}
	g, err := NewGame(cfg, WithView(view))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	g.Start(at(0))

	if g.Food() != (types.Point{X: 3, Y: 0}) {
		t.Fatalf("Expected the only free cell (3,0) as food, got %v", g.Food())
	}

	g.Advance(at(150))

	if g.Running() {
		t.Error("Expected the game to end when the board is full")
	}
	if len(view.messages) != 1 || view.messages[0] != WinMessage {
		t.Errorf("Expected win notification, got %v", view.messages)
	}
	if g.Score() != 10 {
		t.Errorf("Expected score 10, got %d", g.Score())
	}
}

func TestConfigValidate(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.BaseInterval = 0 },
		func(c *Config) { c.Grid = types.Grid{} },
		func(c *Config) { c.BoostMultiplier = 1.5 },
		func(c *Config) { c.RequiredQuickPresses = 1 },
		func(c *Config) { c.InitialLength = 15 },
	}

	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		if _, err := NewGame(cfg); err == nil {
			t.Errorf("Case %d: expected validation error", i)
		}
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}
