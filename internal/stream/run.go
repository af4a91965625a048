package stream

import (
	"log"
	"time"

	"github.com/halninethousand/3d-cell-automata/internal/lattice"
	"github.com/halninethousand/3d-cell-automata/internal/rule"
)

// Run steps the lattice at the given tick rate and broadcasts each step's
// projection until stop is closed. Run takes ownership of the grid; callers
// must not touch it while the loop is live.
func Run(grid *lattice.Grid, r rule.Rule, colors lattice.Colors, hub *Hub, tps int, stop <-chan struct{}) {
	if tps <= 0 {
		tps = 20
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	step := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			stats := grid.Step(r)
			step++
			frame := Frame{
				Step:      step,
				Live:      grid.LiveCount(),
				Instances: grid.Project(colors, r.MaxState()),
			}
			if err := hub.Broadcast(frame); err != nil {
				log.Printf("stream: dropping frame %d: %v", step, err)
				continue
			}
			if step%100 == 0 {
				log.Printf("stream: step=%d live=%d spawns=%d deaths=%d subscribers=%d",
					step, frame.Live, stats.Spawns, stats.Deaths, hub.SubscriberCount())
			}
		}
	}
}
