package systems

import (
	"github.com/zeusync/rpsarena/internal/core/arena"
	"github.com/zeusync/rpsarena/internal/core/events/bus"
	"github.com/zeusync/rpsarena/internal/core/observability/log"
)

const (
	// EventTick carries the arena.Snapshot of a completed tick.
	EventTick = "arena.tick"
	// EventCombat carries an arena.Combat.
	EventCombat = "arena.combat"

	eventSource = "arena"
)

// CombatPublisher returns a world combat handler that forwards every combat to b.
func CombatPublisher(b bus.EventBus, logger log.Log) func(arena.Combat) {
	return func(c arena.Combat) {
		if err := b.Publish(bus.NewEvent(EventCombat, eventSource, c)); err != nil {
			logger.Warn("combat handlers failed", log.Error(err))
		}
	}
}

// LogCombats subscribes a debug log line for every combat.
func LogCombats(b bus.EventBus, logger log.Log) (bus.Subscription, error) {
	return b.Subscribe(EventCombat, func(e bus.Event) error {
		c, ok := e.Data.(arena.Combat)
		if !ok {
			return nil
		}
		logger.Debug("combat",
			log.Uint64("tick", c.Tick),
			log.Int("a", c.A),
			log.Int("b", c.B),
			log.Stringer("kind_a", c.KindA),
			log.Stringer("kind_b", c.KindB),
			log.Stringer("winner", c.Winner),
		)
		return nil
	})
}
