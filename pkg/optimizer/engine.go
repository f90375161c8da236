package optimizer

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lineupiq/optimizer-service/internal/config"
	"github.com/lineupiq/optimizer-service/pkg/logger"
)

// Solver computes a full slot assignment over the player pool. Both the
// exact solver and the greedy fallback implement it.
type Solver interface {
	Solve(players []Player, slots []Slot) (*Result, error)
}

// Engine runs lineup optimization with an exact solver and a greedy
// fallback. The zero value is not usable; construct with NewEngine.
type Engine struct {
	exact  Solver
	greedy Solver
}

// NewEngine builds an engine from the environment configuration. Config
// errors fall back to defaults so optimization stays available.
func NewEngine() *Engine {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithComponent("optimizer").WithError(err).Warn("Invalid solver config, using defaults")
		cfg = config.Default()
	}
	return &Engine{
		exact:  newExactSolver(cfg.TimeBudget(), cfg.SolverWorkers, cfg.ObjectiveScale),
		greedy: greedySolver{},
	}
}

// NewEngineWithSolvers builds an engine with explicit solver implementations.
// Passing a nil exact solver forces the greedy path.
func NewEngineWithSolvers(exact, greedy Solver) *Engine {
	if greedy == nil {
		greedy = greedySolver{}
	}
	return &Engine{exact: exact, greedy: greedy}
}

// Optimize computes the highest scoring assignment of players to slots. It
// never returns an error: exact solver failures degrade to the greedy
// fallback and are observable only through Result.UsedFallback.
func (e *Engine) Optimize(players []Player, slots []Slot) *Result {
	optimizationID := uuid.New().String()
	log := logger.WithOptimizationContext(optimizationID, len(players), len(slots))

	if len(players) == 0 || len(slots) == 0 {
		log.Warn("Empty player pool or slot list, nothing to optimize")
		return &Result{Assignments: []Assignment{}, TotalPoints: 0, UsedFallback: true}
	}

	if e.exact != nil {
		result, err := e.exact.Solve(players, slots)
		if err == nil {
			log.WithFields(logrus.Fields{
				"total_points": result.TotalPoints,
				"assignments":  len(result.Assignments),
			}).Info("Exact optimization completed")
			return result
		}
		log.WithError(err).Warn("Exact solver failed, using greedy fallback")
	}

	result, err := e.greedy.Solve(players, slots)
	if err != nil {
		// The greedy solver is total; this branch guards a misbehaving
		// custom Solver injected through NewEngineWithSolvers.
		log.WithError(err).Error("Greedy fallback failed")
		return &Result{Assignments: []Assignment{}, TotalPoints: 0, UsedFallback: true}
	}
	result.UsedFallback = true
	log.WithFields(logrus.Fields{
		"total_points": result.TotalPoints,
		"assignments":  len(result.Assignments),
	}).Info("Greedy optimization completed")
	return result
}

// Optimize runs a one-shot optimization with a default engine.
func Optimize(players []Player, slots []Slot) *Result {
	return NewEngine().Optimize(players, slots)
}
