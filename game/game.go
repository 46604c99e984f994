package game

import (
	"strconv"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"gridsnake/game/clock"
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/input"
)

const (
	GameOverMessage = "Game Over! Press Space to play again."
	WinMessage      = "You Win! Press Space to play again."
)

// View is the output boundary of a session
type View interface {
	Redraw(g *Game)
	SetScore(text string)
	GameOver(message string)
}

type nopView struct{}

func (nopView) Redraw(*Game)    {}
func (nopView) SetScore(string) {}
func (nopView) GameOver(string) {}

// Game is a single play session. All methods must be called from one
// goroutine, the frontend loop.
type Game struct {
	UUID  string
	Grid  types.Grid
	Stats *Stats

	cfg     Config
	snake   *entity.Snake
	food    types.Point
	score   int
	running bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	speedMgr     *manager.SpeedManager
	ticker       *clock.Ticker
	boostTimer   *clock.Timer

	startTime time.Time
	boosts    int

	view   View
	logger log.Logger
}

type Option func(*Game)

func WithLogger(logger log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

func WithView(v View) Option {
	return func(g *Game) {
		g.view = v
	}
}

// NewGame builds an idle session: the board is laid out and drawn, but the
// clock does not run until Start.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	game := &Game{
		Grid:         cfg.Grid,
		Stats:        NewStats(),
		cfg:          cfg,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, collisionMgr, cfg.Seed),
		speedMgr:     manager.NewSpeedManager(cfg.speedConfig()),
		ticker:       clock.NewTicker(),
		boostTimer:   clock.NewTimer(),
		view:         nopView{},
		logger:       log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(game)
	}

	game.reset()
	return game, nil
}

// reset re-initializes every field of the session
func (g *Game) reset() {
	g.ticker.Stop()
	g.boostTimer.Cancel()
	g.speedMgr.Reset()

	g.snake = entity.NewSnake(g.Grid.Center(), g.cfg.InitialLength, types.Right)
	g.food, _ = g.foodMgr.Spawn(g.snake.Body)
	g.score = 0
	g.boosts = 0
	g.running = false

	g.view.SetScore("0")
	g.view.Redraw(g)
}

// Start begins a fresh game regardless of the current lifecycle state
func (g *Game) Start(now time.Time) {
	g.reset()
	g.UUID = uuid.New().String()
	g.startTime = now
	g.running = true
	g.ticker.Start(g.speedMgr.BaseInterval(), now)

	level.Info(g.logger).Log("msg", "game started", "session", g.UUID, "period", g.ticker.Period())
}

// Advance moves the snake one cell along its heading
func (g *Game) Advance(now time.Time) {
	if !g.running {
		return
	}

	newHead := g.snake.NextHead()
	if collision := g.collisionMgr.Classify(newHead, g.snake.Body); collision != manager.NoCollision {
		g.end(now, collision.String(), GameOverMessage)
		return
	}

	g.snake.Move(newHead)

	if newHead == g.food {
		g.score += types.FoodReward
		g.view.SetScore(strconv.Itoa(g.score))

		food, ok := g.foodMgr.Spawn(g.snake.Body)
		if !ok {
			g.view.Redraw(g)
			g.end(now, "board full", WinMessage)
			return
		}
		g.food = food
		level.Debug(g.logger).Log("msg", "food spawned", "x", food.X, "y", food.Y, "score", g.score)
	} else {
		g.snake.RemoveTail()
	}

	g.view.Redraw(g)
}

func (g *Game) end(now time.Time, reason, message string) {
	g.running = false
	g.ticker.Stop()
	g.boostTimer.Cancel()

	g.Stats.AddGame(GameRecord{
		UUID:      g.UUID,
		StartTime: g.startTime,
		EndTime:   now,
		Score:     g.score,
		Length:    g.snake.Len(),
		Boosts:    g.boosts,
		Reason:    reason,
	})
	level.Info(g.logger).Log("msg", "game over", "session", g.UUID, "reason", reason, "score", g.score, "length", g.snake.Len())

	g.view.GameOver(message)
}

// HandleKey applies one key press. Space always starts a new game; arrows
// are only honoured while a game is running.
func (g *Game) HandleKey(key input.Key, now time.Time) {
	if key == input.KeySpace {
		g.Start(now)
		return
	}
	if !g.running {
		return
	}

	dir, ok := key.Direction()
	if !ok {
		return
	}

	if !g.snake.SetDirection(dir) {
		level.Debug(g.logger).Log("msg", "reversal ignored", "heading", g.snake.Direction, "requested", dir)
	}

	// Boost bookkeeping runs whether or not the heading was accepted
	if period, boosted := g.speedMgr.Press(now); boosted {
		g.ticker.Restart(period, now)
		g.boosts++
		level.Info(g.logger).Log("msg", "speed boost activated", "period", period)
	}
	g.boostTimer.Schedule(g.speedMgr.ResetDelay(), now)
}

// ExpireBoost runs when no directional press arrived for the reset delay
func (g *Game) ExpireBoost(now time.Time) {
	if g.speedMgr.Expire() && g.running {
		g.ticker.Restart(g.speedMgr.BaseInterval(), now)
		level.Info(g.logger).Log("msg", "speed boost deactivated", "period", g.ticker.Period())
	}
}

// Update fires whatever is due at now: the boost deactivation first, then
// at most one tick.
func (g *Game) Update(now time.Time) {
	if g.boostTimer.Fired(now) {
		g.ExpireBoost(now)
	}
	if g.ticker.Due(now) {
		g.Advance(now)
	}
}

func (g *Game) Running() bool {
	return g.running
}

// Snake returns the body cells, head first. Callers must not modify it.
func (g *Game) Snake() []types.Point {
	return g.snake.Body
}

func (g *Game) Heading() types.Direction {
	return g.snake.Direction
}

func (g *Game) Food() types.Point {
	return g.food
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) SpeedState() manager.SpeedState {
	return g.speedMgr.State()
}

// Period is the current tick period, zero while the clock is stopped
func (g *Game) Period() time.Duration {
	if !g.ticker.Running() {
		return 0
	}
	return g.ticker.Period()
}

func (g *Game) BoostPending() bool {
	return g.boostTimer.Pending()
}
