package game

// State-based processing: a bounded fixed-point pass run after every
// successful action. It advances any dormant machines (raid, play-card)
// whose blocking prompt has since been answered and applies the standing
// win condition, repeating until nothing changes.

const stateBasedIterationLimit = 32

func runStateBasedActions(g *GameState) error {
	for i := 0; i < stateBasedIterationLimit; i++ {
		changed := false

		if !g.IsGameOver() {
			for _, side := range []Side{Covenant, Riftcaller} {
				if g.Player(side).Score >= PointsToWin {
					if err := GameOver(g, side); err != nil {
						return err
					}
					changed = true
				}
			}
		}

		if g.Raid != nil && !anyPromptPending(g) && !g.IsGameOver() {
			before := g.Raid.Step
			if err := ProgressRaid(g); err != nil {
				return err
			}
			if g.Raid == nil || g.Raid.Step != before || anyPromptPending(g) {
				changed = true
			}
		}

		if g.PlayCard != nil && !anyPromptPending(g) && !g.IsGameOver() {
			if err := ProgressPlayCard(g); err != nil {
				return err
			}
			changed = true
		}

		if !changed {
			return nil
		}
	}
	return ErrInternal
}
