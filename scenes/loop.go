package scenes

import (
	"context"
	"time"

	"github.com/automoto/summit/logger"
)

// Loop drives a scene on a wall-clock ticker.
type Loop struct {
	scene    *PlatformerScene
	tickRate int
	onTick   func(Snapshot) bool
}

// NewLoop runs scene at tickRate updates per second. onTick sees each
// snapshot and returns false to stop the loop.
func NewLoop(scene *PlatformerScene, tickRate int, onTick func(Snapshot) bool) *Loop {
	if tickRate <= 0 {
		tickRate = 1
	}
	return &Loop{scene: scene, tickRate: tickRate, onTick: onTick}
}

// Run ticks until ctx is done or onTick returns false. It returns the last
// snapshot taken.
func (l *Loop) Run(ctx context.Context) Snapshot {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	logger.Log.Debugw("Loop started", "tickRate", l.tickRate)

	var snap Snapshot
	for {
		select {
		case <-ctx.Done():
			logger.Log.Debugw("Loop stopped", "tick", snap.Tick)
			return snap
		case <-ticker.C:
			l.scene.Update()
			snap = l.scene.Snapshot()
			if l.onTick != nil && !l.onTick(snap) {
				return snap
			}
		}
	}
}
