package game

// Rule constants. Cards may observe these through queries (e.g.
// StartOfTurnActions, MaximumHandSize) but the base values live here.
const (
	StartingMana          = 5
	StartingHandSize      = 5
	PointsToWin           = 60
	MaximumMinionsInRoom  = 4
	CostToRemoveCurse     = 2
	CostToDispelEvocation = 2
	DefaultMaximumHandSize = 8
	StartOfTurnActionCount = 3
)
