package manager

import (
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// MaxSpawnAttempts bounds random sampling before falling back to a scan
const MaxSpawnAttempts = 1000

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// Spawn picks a uniformly random cell not covered by body. Returns false
// only when every cell of the grid is occupied.
func (fm *FoodManager) Spawn(body []types.Point) (types.Point, bool) {
	for i := 0; i < MaxSpawnAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, body) {
			return food, true
		}
	}

	return fm.scan(body)
}

// scan walks the grid row by row and picks a random free cell
func (fm *FoodManager) scan(body []types.Point) (types.Point, bool) {
	occupied := make(map[types.Point]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}

	free := make([]types.Point, 0, fm.grid.Area())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
