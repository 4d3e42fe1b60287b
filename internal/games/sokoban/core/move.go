package core

// AttemptMove moves the player one cell in direction d, pushing a box
// when one is in the way. A push either moves both the player and the
// box by one cell or changes nothing. Facing follows d regardless of
// the outcome.
func (g *Grid) AttemptMove(d Dir) MoveOutcome {
	g.facing = d

	target := g.player.Step(d)
	if !g.Kind(target).Walkable() {
		return Blocked
	}

	if _, hasBox := g.BoxAt(target); !hasBox {
		g.player = target
		g.moves++
		return Moved
	}

	pushTarget := target.Step(d)
	if g.IsBlockedForPush(pushTarget) {
		return Blocked
	}

	g.PlaceBox(target, pushTarget)
	g.player = target
	g.moves++
	g.pushes++
	return Pushed
}
