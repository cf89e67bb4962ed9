package game

// "Can the player do X right now?" predicates. Every action routes through
// one of these before any mutation happens; each combines the base rules
// with the matching delegate query so cards can loosen or tighten them.

// anyPromptPending reports whether either side has a pending decision. The
// oldest pending prompt blocks all other action resolution.
func anyPromptPending(g *GameState) bool {
	return len(g.Player(Covenant).Prompts) > 0 || len(g.Player(Riftcaller).Prompts) > 0
}

// inMainPhase reports whether side may take a main-phase action: their
// active Play-phase turn, nothing pending, no raid or play in flight.
func inMainPhase(g *GameState, side Side) bool {
	return g.Info.Phase == PhasePlay &&
		g.Info.Turn.Side == side &&
		g.Info.TurnState == TurnActive &&
		!anyPromptPending(g) &&
		g.Raid == nil &&
		g.PlayCard == nil
}

// CanTakeGainManaAction reports whether side may take the basic gain-mana
// action.
func CanTakeGainManaAction(g *GameState, side Side) bool {
	base := inMainPhase(g, side) && g.Player(side).ActionPoints > 0
	return QueryBool(g, QueryCanTakeGainManaAction, side, NewFlag(base))
}

// CanSpendActionPoint reports whether side may burn an action point for no
// effect. Card delegates give the action a payoff.
func CanSpendActionPoint(g *GameState, side Side) bool {
	base := inMainPhase(g, side) && g.Player(side).ActionPoints > 0
	return QueryBool(g, QueryCanSpendActionPoint, side, NewFlag(base))
}

// CanTakeDrawCardAction reports whether side may take the basic draw
// action. Drawing from an empty deck is legal; it loses the game.
func CanTakeDrawCardAction(g *GameState, side Side) bool {
	base := inMainPhase(g, side) && g.Player(side).ActionPoints > 0
	return QueryBool(g, QueryCanTakeDrawCardAction, side, NewFlag(base))
}

// CanPlayCard reports whether side may play a card at a target right now.
func CanPlayCard(g *GameState, side Side, id CardId, target PlayTarget) bool {
	c := g.Card(id)
	if c == nil || id.Side != side {
		return false
	}
	base := true
	if browser := activeBrowser(g, side); browser != nil {
		// A play browser narrows the playable set but lifts the main-phase
		// requirement for its own cards.
		base = browserContains(browser, id) && !g.IsGameOver()
	} else {
		base = inMainPhase(g, side) && c.Position.Kind == PositionHand
	}
	base = base && g.Player(side).ActionPoints >= ActionCostFor(g, id)
	base = base && targetMatches(g, id, target)
	base = base && playCostPayable(g, side, id)
	return QueryBool(g, QueryCanPlayCard, id, NewFlag(base))
}

// playCostPayable checks mana and custom costs at play time. The Covenant
// plays minions, schemes and projects face-down without paying mana; those
// costs come due at summon time.
func playCostPayable(g *GameState, side Side, id CardId) bool {
	if playsFaceDown(g, id) {
		return true
	}
	mana := ManaCostFor(g, id)
	if mana == nil {
		return false
	}
	if ManaAvailable(g, side, PayForCard) < *mana {
		return false
	}
	if custom := g.Card(id).Definition().Cost.Custom; custom != nil && custom.CanPay != nil {
		return custom.CanPay(g, id)
	}
	return true
}

// playsFaceDown reports whether a card enters play face-down when played.
func playsFaceDown(g *GameState, id CardId) bool {
	c := g.Card(id)
	if c == nil {
		return false
	}
	switch c.Definition().CardType {
	case CardTypeMinion, CardTypeScheme, CardTypeProject:
		return true
	}
	return false
}

// targetMatches validates a play target against the card's requirement.
func targetMatches(g *GameState, id CardId, target PlayTarget) bool {
	c := g.Card(id)
	if c == nil {
		return false
	}
	def := c.Definition()
	switch def.TargetRequirement() {
	case TargetNone:
		if target.Kind != PlayTargetNone {
			return false
		}
	case TargetAnyRoom:
		if target.Kind != PlayTargetRoom {
			return false
		}
	case TargetOuterRoom:
		if target.Kind != PlayTargetRoom || !target.Room.IsOuter() {
			return false
		}
	}
	if def.CustomTargeting != nil && target.Kind == PlayTargetRoom {
		return def.CustomTargeting(g, id, target.Room)
	}
	return true
}

// activeBrowser returns the side's pending play-card browser, if their
// oldest prompt is one.
func activeBrowser(g *GameState, side Side) *PlayCardBrowserPrompt {
	p := g.Player(side).Prompt()
	if p != nil && p.Kind == PromptPlayCardBrowser {
		return p.Browser
	}
	return nil
}

func browserContains(b *PlayCardBrowserPrompt, id CardId) bool {
	for _, c := range b.Cards {
		if c == id {
			return true
		}
	}
	return false
}

// CanActivateAbility reports whether side may activate an ability: in their
// main phase, or mid-raid while they hold a raid prompt. The Covenant's
// window during a raid is the approach prompt instead.
func CanActivateAbility(g *GameState, side Side, id AbilityId) bool {
	a := abilityFor(g, id)
	c := g.Card(id.Card)
	if a == nil || c == nil || id.Side() != side || a.Type != AbilityActivated {
		return false
	}
	base := inMainPhase(g, side) || raidAbilityWindow(g, side)
	base = base && c.Position.InPlay() && c.FaceUp
	base = base && abilityCostsPayable(g, side, id)
	return QueryBool(g, QueryCanActivateAbility, id, NewFlag(base))
}

// raidAbilityWindow: the Riftcaller may activate abilities while a raid is
// suspended on a prompt of theirs.
func raidAbilityWindow(g *GameState, side Side) bool {
	if g.Raid == nil || side != Riftcaller || g.Raid.PopulatedBy == nil {
		return false
	}
	p := g.Player(side).Prompt()
	return p != nil && promptFromRaid(p)
}

// promptFromRaid reports whether a prompt was produced by the raid stepper.
func promptFromRaid(p *GamePrompt) bool {
	for i := range p.Buttons {
		if p.Buttons[i].Raid != nil {
			return true
		}
	}
	return false
}

// abilityCostsPayable checks the action-point, mana and custom components
// of an activated ability's cost.
func abilityCostsPayable(g *GameState, side Side, id AbilityId) bool {
	a := abilityFor(g, id)
	ok := g.Player(side).ActionPoints >= a.Activated.Cost.ActionPoints
	if mana := AbilityManaCostFor(g, id); mana != nil {
		ok = ok && ManaAvailable(g, side, PayForAbility) >= *mana
	}
	if a.Activated.Cost.Custom != nil && a.Activated.Cost.Custom.CanPay != nil {
		ok = ok && a.Activated.Cost.Custom.CanPay(g, id.Card)
	}
	return ok
}

// CanInitiateRaid reports whether the Riftcaller may raid a room.
func CanInitiateRaid(g *GameState, side Side, room RoomId) bool {
	base := side == Riftcaller &&
		inMainPhase(g, side) &&
		g.Player(side).ActionPoints > 0 &&
		roomRaidable(g, room)
	return QueryBool(g, QueryCanInitiateRaid, room, NewFlag(base))
}

// roomRaidable: inner rooms are always raidable; an outer room must hold
// something worth raiding.
func roomRaidable(g *GameState, room RoomId) bool {
	if room.IsInner() {
		return true
	}
	return len(g.Occupants(room)) > 0 || len(g.Defenders(room)) > 0
}

// CanProgressRoom reports whether the Covenant may take the progress action
// on a room.
func CanProgressRoom(g *GameState, side Side, room RoomId) bool {
	if side != Covenant || !room.IsOuter() {
		return false
	}
	progressable := false
	for _, occ := range g.Occupants(room) {
		if SchemePointsFor(g, occ.Id) != nil {
			progressable = true
			break
		}
	}
	return inMainPhase(g, side) &&
		progressable &&
		g.Player(side).ActionPoints > 0 &&
		ManaAvailable(g, side, PayForProgress) >= 1
}

// CanSummonProject reports whether the Covenant may unveil a project.
func CanSummonProject(g *GameState, side Side, id CardId) bool {
	c := g.Card(id)
	if side != Covenant || c == nil || id.Side != Covenant {
		return false
	}
	base := c.Definition().CardType == CardTypeProject &&
		c.Position.InPlay() && !c.FaceUp &&
		summonCostPayable(g, id)
	// Projects may be unveiled at instant speed during raids, at the
	// approach decision point.
	timing := inMainPhase(g, side) || g.Raid != nil
	return QueryBool(g, QueryCanSummon, id, NewFlag(base && timing))
}

// CanSummonMinion reports whether a face-down minion could be summoned by
// paying its costs.
func CanSummonMinion(g *GameState, id CardId) bool {
	c := g.Card(id)
	if c == nil || id.Side != Covenant {
		return false
	}
	base := c.Definition().CardType == CardTypeMinion &&
		c.Position.InPlay() && !c.FaceUp &&
		summonCostPayable(g, id)
	return QueryBool(g, QueryCanSummon, id, NewFlag(base))
}

func summonCostPayable(g *GameState, id CardId) bool {
	mana := ManaCostFor(g, id)
	if mana == nil {
		return false
	}
	if ManaAvailable(g, Covenant, PayForSummon) < *mana {
		return false
	}
	if custom := g.Card(id).Definition().Cost.Custom; custom != nil && custom.CanPay != nil {
		return custom.CanPay(g, id)
	}
	return true
}

// CanRemoveCurse reports whether the Riftcaller may pay off a curse.
func CanRemoveCurse(g *GameState, side Side) bool {
	return side == Riftcaller &&
		inMainPhase(g, side) &&
		g.Player(side).Curses > 0 &&
		g.Player(side).ActionPoints > 0 &&
		ManaAvailable(g, side, PayForRemoveCurse) >= CostToRemoveCurse
}

// CanDispelEvocation reports whether the Covenant may dispel an evocation.
func CanDispelEvocation(g *GameState, side Side, id CardId) bool {
	c := g.Card(id)
	return side == Covenant &&
		inMainPhase(g, side) &&
		c != nil && id.Side == Riftcaller &&
		c.Definition().CardType == CardTypeEvocation &&
		c.Position.InPlay() &&
		g.Player(side).ActionPoints > 0 &&
		ManaAvailable(g, side, PayForDispelEvocation) >= CostToDispelEvocation
}

// CanEndTurn reports whether side may end their turn.
func CanEndTurn(g *GameState, side Side) bool {
	return g.Info.Phase == PhasePlay &&
		g.Info.Turn.Side == side &&
		g.Info.TurnState == TurnActive &&
		!anyPromptPending(g) &&
		g.Raid == nil &&
		g.PlayCard == nil
}

// CanStartTurn reports whether side may begin their turn after the opponent
// ended theirs.
func CanStartTurn(g *GameState, side Side) bool {
	return g.Info.Phase == PhasePlay &&
		g.Info.TurnState == TurnEnded &&
		g.Info.Turn.Side.Opponent() == side &&
		!anyPromptPending(g)
}

// CanUseNoWeapon reports whether the Riftcaller may continue past a minion
// unarmed, letting its combat ability fire.
func CanUseNoWeapon(g *GameState, minion CardId) bool {
	return QueryBool(g, QueryCanUseNoWeapon, minion, NewFlag(true))
}

// CanRaidAccessCards reports whether the access phase of a raid may reveal
// cards at all.
func CanRaidAccessCards(g *GameState, ev RaidEvent) bool {
	return QueryBool(g, QueryCanRaidAccessCards, ev, NewFlag(true))
}

// CanEndRaidAccessPhase reports whether the Riftcaller may voluntarily end
// the access phase.
func CanEndRaidAccessPhase(g *GameState, raid RaidId) bool {
	return QueryBool(g, QueryCanEndRaidAccessPhase, raid, NewFlag(true))
}

// CanAbilityEndRaid reports whether a card ability may currently end the
// raid.
func CanAbilityEndRaid(g *GameState, id AbilityId) bool {
	return g.Raid != nil && QueryBool(g, QueryCanAbilityEndRaid, id, NewFlag(true))
}

// CanAbilityDestroyCard reports whether a card may be destroyed by an
// ability.
func CanAbilityDestroyCard(g *GameState, id CardId) bool {
	return QueryBool(g, QueryCanAbilityDestroyCard, id, NewFlag(true))
}

// CanEncounterTarget reports whether a minion may currently be encountered.
func CanEncounterTarget(g *GameState, minion CardId) bool {
	return QueryBool(g, QueryCanEncounterTarget, minion, NewFlag(true))
}

// CanDefeatTarget reports whether a weapon is permitted to defeat a minion,
// beyond the cost computation.
func CanDefeatTarget(g *GameState, weapon, target CardId) bool {
	q := CanDefeatTargetQuery{Weapon: weapon, Target: target}
	return QueryBool(g, QueryCanDefeatTarget, q, NewFlag(true))
}
