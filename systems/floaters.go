package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/tileclicker/components"
	"github.com/pthm-cable/tileclicker/config"
)

// floaterGlyphWidth approximates the rendered width of one label character.
const floaterGlyphWidth = 16

// FloaterSystem manages floating payout numbers as ECS entities.
type FloaterSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Floater]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Floater]

	lifetime   int
	rise       float32
	boardWidth int
	cellSize   int
	count      int

	// Scratch buffer for removal after iteration
	expired []ecs.Entity
}

// NewFloaterSystem creates a floater system for a board of the given pixel width.
func NewFloaterSystem(cfg config.RenderConfig, boardWidth, cellSize int) *FloaterSystem {
	w := ecs.NewWorld()
	return &FloaterSystem{
		world:      w,
		mapper:     ecs.NewMap3[components.Position, components.Velocity, components.Floater](w),
		filter:     ecs.NewFilter3[components.Position, components.Velocity, components.Floater](w),
		lifetime:   cfg.FloaterLifetime,
		rise:       cfg.FloaterRise,
		boardWidth: boardWidth,
		cellSize:   cellSize,
	}
}

// Spawn creates a floater at pixel (x, y). Labels that would run into the
// sidebar are shifted to the left of the click.
func (s *FloaterSystem) Spawn(x, y int, amount float64, text string) {
	width := len(text) * floaterGlyphWidth
	if x > s.boardWidth-s.cellSize-width {
		x -= s.cellSize + width
	}

	pos := components.Position{X: float32(x), Y: float32(y)}
	vel := components.Velocity{X: 0, Y: -s.rise}
	fl := components.Floater{Amount: amount, Text: text, Stage: s.lifetime}
	s.mapper.NewEntity(&pos, &vel, &fl)
	s.count++
}

// Update ages every floater by one frame and removes expired ones.
// It returns the summed amount of the floaters that expired.
func (s *FloaterSystem) Update() float64 {
	var expiredValue float64
	s.expired = s.expired[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, vel, fl := query.Get()
		pos.X += vel.X
		pos.Y += vel.Y
		fl.Stage--
		if fl.Stage < 0 {
			expiredValue += fl.Amount
			s.expired = append(s.expired, query.Entity())
		}
	}

	for _, e := range s.expired {
		s.mapper.Remove(e)
		s.count--
	}

	return expiredValue
}

// Each calls fn for every live floater.
func (s *FloaterSystem) Each(fn func(pos components.Position, fl components.Floater)) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, fl := query.Get()
		fn(*pos, *fl)
	}
}

// LiveValue sums the amounts of all live floaters.
func (s *FloaterSystem) LiveValue() float64 {
	var sum float64
	query := s.filter.Query()
	for query.Next() {
		_, _, fl := query.Get()
		sum += fl.Amount
	}
	return sum
}

// Count returns the number of live floaters.
func (s *FloaterSystem) Count() int { return s.count }
