package game

// Stat queries. Each seeds the answer from the card's definition and folds
// the transformation of every matching query delegate over it, so cards can
// modify any default value.

// ManaCostFor returns the current mana cost to play a card, or nil when the
// card has no mana cost at all.
func ManaCostFor(g *GameState, id CardId) *int {
	c := g.Card(id)
	if c == nil {
		return nil
	}
	var seed *int
	if m := c.Definition().Cost.Mana; m != nil {
		v := *m
		seed = &v
	}
	return QueryFold(g, QueryManaCost, id, seed)
}

// ActionCostFor returns the action points required to play a card.
func ActionCostFor(g *GameState, id CardId) int {
	c := g.Card(id)
	if c == nil {
		return 1
	}
	cost := c.Definition().Cost.ActionPoints
	if cost == 0 {
		cost = 1
	}
	return QueryFold(g, QueryActionCost, id, cost)
}

// AbilityManaCostFor returns the mana cost to activate an ability, or nil
// when the ability is not activated.
func AbilityManaCostFor(g *GameState, id AbilityId) *int {
	a := abilityFor(g, id)
	if a == nil || a.Activated == nil {
		return nil
	}
	var seed *int
	if m := a.Activated.Cost.Mana; m != nil {
		v := *m
		seed = &v
	}
	return QueryFold(g, QueryAbilityManaCost, id, seed)
}

// abilityFor resolves an ability id to its definition, or nil.
func abilityFor(g *GameState, id AbilityId) *Ability {
	c := g.Card(id.Card)
	if c == nil {
		return nil
	}
	def := c.Definition()
	if id.Index < 0 || id.Index >= len(def.Abilities) {
		return nil
	}
	return &def.Abilities[id.Index]
}

// BaseAttackFor returns a weapon's current base attack.
func BaseAttackFor(g *GameState, id CardId) int {
	base := 0
	if c := g.Card(id); c != nil && c.Definition().Stats.BaseAttack != nil {
		base = *c.Definition().Stats.BaseAttack
	}
	return QueryFold(g, QueryBaseAttack, id, base)
}

// AttackBoostFor returns a weapon's boost, or nil when it cannot boost.
func AttackBoostFor(g *GameState, id CardId) *AttackBoost {
	var boost *AttackBoost
	if c := g.Card(id); c != nil && c.Definition().Stats.AttackBoost != nil {
		b := *c.Definition().Stats.AttackBoost
		boost = &b
	}
	return QueryFold(g, QueryAttackBoost, id, boost)
}

// HealthFor returns a minion's current health.
func HealthFor(g *GameState, id CardId) int {
	base := 0
	if c := g.Card(id); c != nil && c.Definition().Stats.Health != nil {
		base = *c.Definition().Stats.Health
	}
	return QueryFold(g, QueryHealthValue, id, base)
}

// ShieldFor returns a minion's current shield value.
func ShieldFor(g *GameState, id CardId) int {
	base := 0
	if c := g.Card(id); c != nil && c.Definition().Stats.Shield != nil {
		base = *c.Definition().Stats.Shield
	}
	return QueryFold(g, QueryShieldValue, id, base)
}

// BreachFor returns a weapon's current breach value.
func BreachFor(g *GameState, id CardId) int {
	base := 0
	if c := g.Card(id); c != nil && c.Definition().Stats.Breach != nil {
		base = *c.Definition().Stats.Breach
	}
	return QueryFold(g, QueryBreachValue, id, base)
}

// ResonanceFor returns a card's current resonance.
func ResonanceFor(g *GameState, id CardId) Resonance {
	var base Resonance
	if c := g.Card(id); c != nil {
		base = c.Definition().Resonance
	}
	return QueryFold(g, QueryResonance, id, base)
}

// RazeCostFor returns the mana cost to raze an accessed card, or nil when
// it cannot be razed.
func RazeCostFor(g *GameState, id CardId) *int {
	var base *int
	if c := g.Card(id); c != nil && c.Definition().Stats.RazeCost != nil {
		v := *c.Definition().Stats.RazeCost
		base = &v
	}
	return QueryFold(g, QueryRazeCost, id, base)
}

// SchemePointsFor returns a scheme's scoring block, or nil.
func SchemePointsFor(g *GameState, id CardId) *SchemePoints {
	if c := g.Card(id); c != nil {
		return c.Definition().Stats.SchemePoints
	}
	return nil
}

// StartOfTurnActions returns the action points granted at turn start.
func StartOfTurnActions(g *GameState, side Side) int {
	return QueryFold(g, QueryStartOfTurnActions, side, StartOfTurnActionCount)
}

// VaultAccessCount returns how many cards a vault raid accesses.
func VaultAccessCount(g *GameState, raid RaidId) int {
	return QueryFold(g, QueryVaultAccessCount, raid, 1)
}

// SanctumAccessCount returns how many cards a sanctum raid accesses.
func SanctumAccessCount(g *GameState, raid RaidId) int {
	return QueryFold(g, QuerySanctumAccessCount, raid, 1)
}

// MaximumHandSize returns a side's hand limit at end of turn. Each wound
// lowers it by one.
func MaximumHandSize(g *GameState, side Side) int {
	base := DefaultMaximumHandSize - g.Player(side).Wounds
	if base < 0 {
		base = 0
	}
	return QueryFold(g, QueryMaximumHandSize, side, base)
}

// StatusMarkersFor computes the display badges for a card.
func StatusMarkersFor(g *GameState, id CardId) []StatusMarker {
	var markers []StatusMarker
	c := g.Card(id)
	if c == nil {
		return nil
	}
	side := id.Side
	if c.Position.Kind == PositionHand && CanPlayCard(g, side, id, defaultTarget(g, id)) {
		markers = append(markers, MarkerCanPlay)
	}
	if c.Definition().CardType == CardTypeMinion && c.Position.InPlay() && !c.FaceUp && CanSummonMinion(g, id) {
		markers = append(markers, MarkerCanSummon)
	}
	return QueryFold(g, QueryCardStatusMarkers, id, markers)
}

// defaultTarget picks an arbitrary legal target for status-marker checks.
func defaultTarget(g *GameState, id CardId) PlayTarget {
	c := g.Card(id)
	if c == nil {
		return NoTarget()
	}
	switch c.Definition().TargetRequirement() {
	case TargetAnyRoom:
		return RoomTarget(RoomA)
	case TargetOuterRoom:
		return RoomTarget(RoomA)
	default:
		return NoTarget()
	}
}
