// internal/system/flow.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-survivors/internal/config"
	"go-survivors/internal/level"
	"go-survivors/pkg/flowfield"
	"go-survivors/pkg/logger"
	"go-survivors/pkg/utils"
)

// FlowSystem keeps the flow field pointed at the player. It recomputes when
// the player changes cell or when RecalcInterval has elapsed, and must run
// before anything that steers by it in the same tick.
type FlowSystem struct {
	lvl   *level.Level
	field *flowfield.FlowField

	interval float64
	timer    float64

	targetX, targetY int
	computed         bool
	recomputes       int

	log *logrus.Entry
}

func NewFlowSystem(cfg config.FlowConfig, lvl *level.Level) *FlowSystem {
	return &FlowSystem{
		lvl:      lvl,
		field:    lvl.NewFlowField(),
		interval: cfg.RecalcInterval,
		log:      logger.WithSystem("flow"),
	}
}

// Update recomputes the field toward target if needed and reports whether it
// did.
func (s *FlowSystem) Update(dt float64, target utils.Vec2) bool {
	s.timer += dt
	x, y := s.lvl.CellAt(target)
	if s.computed && x == s.targetX && y == s.targetY && s.timer < s.interval {
		return false
	}

	s.field.CalculateFlow(x, y)
	s.targetX, s.targetY = x, y
	s.computed = true
	s.timer = 0
	s.recomputes++

	if s.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		s.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("flow field recomputed")
	}
	return true
}

// DirectionAt is the flow direction of the cell containing p. ok is false
// where the field has no answer; callers fall back to chasing directly.
func (s *FlowSystem) DirectionAt(p utils.Vec2) (utils.Vec2, bool) {
	x, y := s.lvl.CellAt(p)
	return s.field.Direction(x, y)
}

func (s *FlowSystem) Field() *flowfield.FlowField { return s.field }

// Recomputes counts how many times the field was rebuilt.
func (s *FlowSystem) Recomputes() int { return s.recomputes }
