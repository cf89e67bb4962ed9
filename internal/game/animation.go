package game

// AnimationKind is the closed enumeration of semantic updates the display
// layer knows how to render.
type AnimationKind int

const (
	AnimStartTurn AnimationKind = iota
	AnimInitiateRaid
	AnimAccessSanctumCards
	AnimCombatInteraction
	AnimScoreCard
	AnimProgressRoom
	AnimSummonMinion
	AnimUnveilCard
	AnimDrawCards
	AnimShuffleIntoDeck
	AnimDealDamage
	AnimRaidComplete
	AnimGameOver
)

func (k AnimationKind) String() string {
	switch k {
	case AnimStartTurn:
		return "StartTurn"
	case AnimInitiateRaid:
		return "InitiateRaid"
	case AnimAccessSanctumCards:
		return "AccessSanctumCards"
	case AnimCombatInteraction:
		return "CombatInteraction"
	case AnimScoreCard:
		return "ScoreCard"
	case AnimProgressRoom:
		return "ProgressRoom"
	case AnimSummonMinion:
		return "SummonMinion"
	case AnimUnveilCard:
		return "UnveilCard"
	case AnimDrawCards:
		return "DrawCards"
	case AnimShuffleIntoDeck:
		return "ShuffleIntoDeck"
	case AnimDealDamage:
		return "DealDamage"
	case AnimRaidComplete:
		return "RaidComplete"
	case AnimGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameAnimation is one semantic update. Fields beyond Kind are populated as
// relevant to the kind.
type GameAnimation struct {
	Kind   AnimationKind `json:"kind"`
	Side   Side          `json:"side,omitempty"`
	Cards  []CardId      `json:"cards,omitempty"`
	Source CardId        `json:"source,omitempty"`
	Target CardId        `json:"target,omitempty"`
	Room   RoomId        `json:"room,omitempty"`
	Amount int           `json:"amount,omitempty"`
	Winner Side          `json:"winner,omitempty"`
}

// AnimationStep pairs an update with the state snapshot to display it
// against, so the display layer can replay changes in order.
type AnimationStep struct {
	Snapshot *GameState
	Update   GameAnimation
}

// AnimationTracker accumulates the steps produced by one action. Derived
// output, never persisted.
type AnimationTracker struct {
	Steps []AnimationStep
}

// Reset drops accumulated steps; called at action intake so each response
// carries only its own animations.
func (t *AnimationTracker) Reset() {
	t.Steps = nil
}

// addAnimation records an update with a display snapshot. A no-op in
// simulation mode so AI search can clone and explore cheaply.
func (g *GameState) addAnimation(update GameAnimation) {
	if g.Info.Config.Simulation {
		return
	}
	if g.Animations == nil {
		g.Animations = &AnimationTracker{}
	}
	g.Animations.Steps = append(g.Animations.Steps, AnimationStep{
		Snapshot: g.snapshot(),
		Update:   update,
	})
}
