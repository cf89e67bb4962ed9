package game

import "fmt"

// ManaPurpose explains what mana is being spent on. Purposes drive delegate
// queries that may supply alternate sources; in particular the raid-scoped
// pool granted by leylines is spendable only while its raid is live.
type ManaPurpose int

const (
	PayForCard ManaPurpose = iota
	PayForAbility
	PayForSummon
	PayForWeapon
	PayForRaze
	PayForProgress
	PayForRemoveCurse
	PayForDispelEvocation
	PayForOther
)

// ManaAvailable returns the mana a side can put toward a purpose right now.
func ManaAvailable(g *GameState, side Side, purpose ManaPurpose) int {
	p := g.Player(side)
	total := p.Mana.Base
	if g.Raid != nil && side == Riftcaller {
		total += p.Mana.RaidSpecific
	}
	return total
}

// SpendMana pays amount toward purpose, drawing from the raid-scoped pool
// first when it applies. Fails without mutating when the side cannot pay.
func SpendMana(g *GameState, side Side, purpose ManaPurpose, amount int) error {
	if amount == 0 {
		return nil
	}
	if ManaAvailable(g, side, purpose) < amount {
		return fmt.Errorf("%w: %v needs %d for %d", ErrInsufficientMana, side, amount, purpose)
	}
	p := g.Player(side)
	if g.Raid != nil && side == Riftcaller && p.Mana.RaidSpecific > 0 {
		fromRaid := min(p.Mana.RaidSpecific, amount)
		p.Mana.RaidSpecific -= fromRaid
		amount -= fromRaid
	}
	p.Mana.Base -= amount
	return nil
}

// GainMana adds to a side's base pool.
func GainMana(g *GameState, side Side, amount int) {
	g.Player(side).Mana.Base += amount
}

// GainRaidMana adds to the Riftcaller's raid-scoped pool. The pool
// evaporates when the raid ends.
func GainRaidMana(g *GameState, amount int) {
	g.Player(Riftcaller).Mana.RaidSpecific += amount
}

// clearRaidMana drops the raid-scoped pool at raid end.
func clearRaidMana(g *GameState) {
	g.Player(Riftcaller).Mana.RaidSpecific = 0
}

// LoseManaToOpponentAbility removes up to amount base mana from a side due
// to an opposing card effect and fires the matching event.
func LoseManaToOpponentAbility(g *GameState, side Side, amount int) error {
	p := g.Player(side)
	lost := min(p.Mana.Base, amount)
	p.Mana.Base -= lost
	return Fire(g, OnManaLostToOpponentAbility, ManaLostEvent{Side: side, Amount: lost})
}
