package game

// Weapon-versus-minion math. A weapon defeats a minion by paying shield
// mana and buying enough attack boosts to meet the minion's health.

// CostToDefeat is the priced-out result of aiming one weapon at one minion.
type CostToDefeat struct {
	Weapon CardId `json:"weapon"`
	Target CardId `json:"target"`
	// Mana is the total mana to spend: shield bypass plus attack boosts.
	Mana int `json:"mana"`
	// Boosts is how many times the weapon's boost ability is bought.
	Boosts int `json:"boosts"`
}

// costToDefeatTarget returns the price for weapon to defeat target, or nil
// when the weapon cannot defeat it at any price (resonance mismatch, no
// boost ability with insufficient base attack, or a delegate veto).
func costToDefeatTarget(g *GameState, weapon, target CardId) *CostToDefeat {
	w := g.Card(weapon)
	m := g.Card(target)
	if w == nil || m == nil || !w.Definition().IsWeapon() {
		return nil
	}
	if !ResonanceFor(g, weapon).CanDefeat(ResonanceFor(g, target)) {
		return nil
	}
	if !CanDefeatTarget(g, weapon, target) {
		return nil
	}
	stats := w.Definition().Stats
	if stats.UseCost != nil && !stats.UseCost.CanPay(g, weapon) {
		return nil
	}
	if stats.PowerChargeCost > 0 && w.PowerCharges < stats.PowerChargeCost {
		return nil
	}

	health := HealthFor(g, target)
	base := BaseAttackFor(g, weapon)

	shieldCost := ShieldFor(g, target) - BreachFor(g, weapon)
	if shieldCost < 0 {
		shieldCost = 0
	}

	boosts := 0
	boostCost := 0
	if base < health {
		boost := AttackBoostFor(g, weapon)
		if boost == nil || boost.Bonus <= 0 {
			return nil
		}
		deficit := health - base
		boosts = (deficit + boost.Bonus - 1) / boost.Bonus
		boostCost = boosts * boost.Cost
	}

	return &CostToDefeat{
		Weapon: weapon,
		Target: target,
		Mana:   shieldCost + boostCost,
		Boosts: boosts,
	}
}

// weaponOptions prices every weapon the Riftcaller has in play against the
// encountered minion, cheapest first, keeping only affordable options.
func weaponOptions(g *GameState, target CardId) []CostToDefeat {
	available := ManaAvailable(g, Riftcaller, PayForWeapon)
	var out []CostToDefeat
	for _, w := range g.Weapons() {
		cost := costToDefeatTarget(g, w.Id, target)
		if cost == nil || cost.Mana > available {
			continue
		}
		out = append(out, *cost)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Mana < out[j-1].Mana; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// UseWeapon resolves a chosen weapon against the encountered minion: pays
// the price, records the defeat and fires the combat events.
func UseWeapon(g *GameState, raid *RaidData, choice RaidChoice) error {
	cost := costToDefeatTarget(g, choice.Weapon, choice.Minion)
	if err := verify(cost != nil, "weapon %v cannot defeat %v", choice.Weapon, choice.Minion); err != nil {
		return err
	}
	if err := SpendMana(g, Riftcaller, PayForWeapon, cost.Mana); err != nil {
		return err
	}
	w := g.Card(choice.Weapon)
	stats := w.Definition().Stats
	if stats.UseCost != nil {
		if err := stats.UseCost.Pay(g, choice.Weapon); err != nil {
			return err
		}
	}
	if stats.PowerChargeCost > 0 {
		if err := verify(w.PowerCharges >= stats.PowerChargeCost,
			"weapon %v lacks power charges", choice.Weapon); err != nil {
			return err
		}
		w.PowerCharges -= stats.PowerChargeCost
	}
	w.BoostCount = cost.Boosts

	g.pushHistory(HistoryEvent{
		Kind: HistoryUsedWeapon, Side: Riftcaller,
		Card: choice.Weapon, Raid: raid.Id, Amount: cost.Mana,
	})
	g.addAnimation(GameAnimation{
		Kind: AnimCombatInteraction, Source: choice.Weapon, Target: choice.Minion,
	})
	if err := Fire(g, OnUsedWeapon, UsedWeaponEvent{
		Raid: raid.Id, Weapon: choice.Weapon, Target: choice.Minion,
	}); err != nil {
		return err
	}

	weapon := choice.Weapon
	if err := DiscardCard(g, choice.Minion); err != nil {
		return err
	}
	g.pushHistory(HistoryEvent{Kind: HistoryMinionDefeated, Side: Riftcaller, Card: choice.Minion, Raid: raid.Id})
	if err := Fire(g, OnMinionDefeated, MinionDefeatedEvent{Weapon: &weapon, Defender: choice.Minion}); err != nil {
		return err
	}
	w.BoostCount = 0
	return nil
}
