package game

// integrate advances every free ball by one frame: gravity, explicit Euler
// position update, wall bounce, catch test, and floor respawn. Held balls
// are skipped entirely; their position is derived from the holding hand.
//
// The simulation is tied to the tracking cadence: one step per delivered
// frame, no fixed timestep.
func (g *Game) integrate(events []Event) []Event {
	gravity := g.cfg.Physics.Gravity
	if g.difficulty != nil {
		gravity = g.difficulty.Gravity(g.cfg.Physics.Gravity, g.score, g.frames)
	}

	for _, b := range g.balls {
		if b.Held() {
			continue
		}

		b.Vel.Y += gravity
		b.Pos = b.Pos.Add(b.Vel)

		// Horizontal wall bounce with energy loss
		if b.Pos.X < b.Radius {
			b.Pos.X = b.Radius
			b.Vel.X = -b.Vel.X * WallRestitution
		} else if b.Pos.X > 1-b.Radius {
			b.Pos.X = 1 - b.Radius
			b.Vel.X = -b.Vel.X * WallRestitution
		}

		var caught bool
		events, caught = g.tryCatch(b, events)
		if caught {
			continue
		}

		// Fell past the visible area: recycle instead of destroying
		if b.Pos.Y > RespawnY {
			g.placeAtSpawn(b)
			events = append(events, Event{Kind: EventRespawned, BallID: b.ID})
		}
	}

	return events
}
