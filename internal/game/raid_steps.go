package game

import (
	"fmt"

	"go.uber.org/zap"
)

// The raid stepper. A raid is a little state machine stored on GameState;
// ProgressRaid drains steps until the raid ends, a prompt is pending, or
// the game is over. Card effects steer it with jump requests rather than
// mutating the step directly.

// InitiateRaid begins a raid against a room. Legality and the action-point
// cost are the caller's responsibility up to CanInitiateRaid; this spends
// the action and runs the machine.
func InitiateRaid(g *GameState, target RoomId, initiator InitiatedBy) error {
	if !CanInitiateRaid(g, Riftcaller, target) {
		return ErrIllegalAction
	}
	if err := SpendActionPoints(g, Riftcaller, 1); err != nil {
		return err
	}
	g.Raid = &RaidData{
		Id:        RaidId(g.NewEventId()),
		Target:    target,
		Initiator: initiator,
		Step:      RaidStep{Kind: StepBegin},
	}
	g.Logger().Debug("raid initiated", zap.Stringer("room", target))
	g.addAnimation(GameAnimation{Kind: AnimInitiateRaid, Side: Riftcaller, Room: target})
	return ProgressRaid(g)
}

// InitiateCustomAccess starts an ability-driven access sequence against a
// room without the encounter phase, e.g. "access the top card of the vault".
func InitiateCustomAccess(g *GameState, target RoomId, accessed []CardId, initiator InitiatedBy) error {
	if err := verify(g.Raid == nil, "custom access during a raid"); err != nil {
		return err
	}
	g.Raid = &RaidData{
		Id:           RaidId(g.NewEventId()),
		Target:       target,
		Initiator:    initiator,
		Step:         RaidStep{Kind: StepAccessSetBuilt},
		Accessed:     accessed,
		CustomAccess: true,
	}
	return ProgressRaid(g)
}

// ProgressRaid advances the raid until it completes or suspends. Jump
// requests posted by card effects are honored between steps.
func ProgressRaid(g *GameState) error {
	for g.Raid != nil && !anyPromptPending(g) && !g.IsGameOver() {
		if g.Raid.Jump != nil {
			if err := applyRaidJump(g); err != nil {
				return err
			}
			continue
		}
		if g.Raid.Step.promptStep() && g.Raid.PopulatedBy != nil {
			// Prompt answered; the choice handler already set the next step.
			g.Raid.PopulatedBy = nil
		}
		if err := evaluateRaidStep(g); err != nil {
			return err
		}
	}
	return nil
}

// refreshRaidPrompt drops a raid prompt a mid-raid effect may have
// invalidated, so the stepper repopulates it with current choices.
func refreshRaidPrompt(g *GameState, side Side) {
	raid := g.Raid
	if raid == nil || raid.PopulatedBy == nil {
		return
	}
	p := g.Player(side).Prompt()
	if p == nil || !promptFromRaid(p) {
		return
	}
	g.Player(side).PopPrompt()
}

func evaluateRaidStep(g *GameState) error {
	raid := g.Raid
	switch raid.Step.Kind {
	case StepBegin:
		raid.Step = RaidStep{Kind: StepGainLeylineMana}

	case StepGainLeylineMana:
		if n := g.Player(Riftcaller).Leylines; n > 0 {
			GainRaidMana(g, n)
		}
		raid.Step = RaidStep{Kind: StepRaidStartEvent}

	case StepRaidStartEvent:
		g.pushHistory(HistoryEvent{
			Kind: HistoryRaidBegan, Side: Riftcaller,
			Raid: raid.Id, Room: raid.Target,
		})
		if err := Fire(g, OnRaidStart, RaidEvent{Raid: raid.Id, Target: raid.Target}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepNextEncounter}

	case StepNextEncounter:
		minion := nextDefender(g, raid)
		if minion == nil {
			raid.Step = RaidStep{Kind: StepPopulateApproachPrompt}
			return nil
		}
		key := minion.SortingKey
		raid.EncounterPosition = &key
		if !minion.FaceUp {
			raid.Step = RaidStep{Kind: StepPopulateSummonPrompt, Minion: minion.Id}
			return nil
		}
		raid.Step = RaidStep{Kind: StepApproachMinion, Minion: minion.Id}

	case StepPopulateSummonPrompt:
		minion := raid.Step.Minion
		if err := Fire(g, OnWillPopulateSummonPrompt, minion); err != nil {
			return err
		}
		if !CanSummonMinion(g, minion) {
			// Unpayable defenders are passed silently.
			raid.Step = RaidStep{Kind: StepNextEncounter}
			return nil
		}
		populated := raid.Step
		raid.PopulatedBy = &populated
		g.Player(Covenant).PushPrompt(summonPrompt(g, minion))

	case StepSummonMinion:
		if err := SummonMinion(g, raid.Step.Minion, ByPlayer(), PayCosts); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepApproachMinion, Minion: raid.Step.Minion}

	case StepDoNotSummon:
		raid.Step = RaidStep{Kind: StepNextEncounter}

	case StepApproachMinion:
		minion := raid.Step.Minion
		g.pushHistory(HistoryEvent{
			Kind: HistoryMinionApproached, Side: Riftcaller,
			Card: minion, Raid: raid.Id,
		})
		if err := Fire(g, OnApproachMinion, EncounterEvent{Raid: raid.Id, Minion: minion}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepEncounterMinion, Minion: minion}

	case StepEncounterMinion:
		minion := raid.Step.Minion
		if !CanEncounterTarget(g, minion) {
			raid.Step = RaidStep{Kind: StepNextEncounter}
			return nil
		}
		id := MinionEncounterId(g.NewEventId())
		raid.MinionEncounter = &id
		m := minion
		raid.Encounter = &m
		g.pushHistory(HistoryEvent{
			Kind: HistoryMinionEncountered, Side: Riftcaller,
			Card: minion, Raid: raid.Id,
		})
		if err := Fire(g, OnEncounterMinion, EncounterEvent{
			Raid: raid.Id, Minion: minion, Encounter: id,
		}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepPopulateEncounterPrompt, Minion: minion}

	case StepPopulateEncounterPrompt:
		populated := raid.Step
		raid.PopulatedBy = &populated
		g.Player(Riftcaller).PushPrompt(encounterPrompt(g, raid.Step.Minion))

	case StepUseWeapon:
		if err := UseWeapon(g, raid, RaidChoice{
			Kind:   RaidChoiceUseWeapon,
			Weapon: *raid.Step.Weapon,
			Minion: raid.Step.Minion,
		}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepMinionDefeated, Minion: raid.Step.Minion, Weapon: raid.Step.Weapon}

	case StepMinionDefeated:
		raid.Encounter = nil
		raid.MinionEncounter = nil
		if err := Fire(g, OnEncounterEnd, raid.Id); err != nil {
			return err
		}
		if g.Raid != nil {
			raid.Step = RaidStep{Kind: StepNextEncounter}
		}

	case StepFireMinionCombatAbility:
		minion := raid.Step.Minion
		if err := Fire(g, OnMinionCombatAbility, minion); err != nil {
			return err
		}
		// A combat ability may have ended the raid or the game.
		if g.Raid == nil || g.IsGameOver() {
			return nil
		}
		raid.Encounter = nil
		raid.MinionEncounter = nil
		if err := Fire(g, OnEncounterEnd, raid.Id); err != nil {
			return err
		}
		if g.Raid != nil {
			raid.Step = RaidStep{Kind: StepNextEncounter}
		}

	case StepPopulateApproachPrompt:
		choices := approachChoices(g)
		if len(choices) == 0 {
			raid.Step = RaidStep{Kind: StepAccessStart}
			return nil
		}
		populated := raid.Step
		raid.PopulatedBy = &populated
		prompt := ButtonPrompt(ContextProceedToAccess, choices...)
		prompt.Kind = PromptPriority
		g.Player(Covenant).PushPrompt(prompt)

	case StepAccessStart:
		id := RoomAccessId(g.NewEventId())
		raid.Access = &id
		if err := Fire(g, OnRaidAccessStart, RaidEvent{Raid: raid.Id, Target: raid.Target}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepCheckIfCardAccessPrevented}

	case StepCheckIfCardAccessPrevented:
		if !CanRaidAccessCards(g, RaidEvent{Raid: raid.Id, Target: raid.Target}) {
			// No cards are touched, but the access phase still closes
			// normally so end-of-access delegates fire.
			raid.Step = RaidStep{Kind: StepFinishAccess}
			return nil
		}
		raid.Step = RaidStep{Kind: StepBuildAccessSet}

	case StepBuildAccessSet:
		accessed, err := buildAccessSet(g, raid)
		if err != nil {
			return err
		}
		raid.Accessed = accessed
		raid.Step = RaidStep{Kind: StepAccessSetBuilt}

	case StepAccessSetBuilt:
		if err := Fire(g, OnRaidAccessSelected, RaidEvent{Raid: raid.Id, Target: raid.Target}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepRevealAccessedCards}

	case StepRevealAccessedCards:
		for _, id := range raid.Accessed {
			if err := RevealCardTo(g, id, Riftcaller); err != nil {
				return err
			}
		}
		if raid.Target == RoomSanctum && len(raid.Accessed) > 0 {
			g.addAnimation(GameAnimation{Kind: AnimAccessSanctumCards, Cards: raid.Accessed})
		}
		raid.Step = RaidStep{Kind: StepAccessCards}

	case StepAccessCards:
		for _, id := range raid.Accessed {
			if err := Fire(g, OnCardAccess, AccessEvent{Raid: raid.Id, Card: id}); err != nil {
				return err
			}
		}
		raid.Step = RaidStep{Kind: StepWillPopulateAccessPrompt, Source: AccessPromptInitial}

	case StepWillPopulateAccessPrompt:
		if err := Fire(g, OnWillPopulateAccessPrompt, WillPopulateAccessPromptEvent{
			Raid: raid.Id, Source: raid.Step.Source,
		}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepPopulateAccessPrompt}

	case StepPopulateAccessPrompt:
		choices := accessChoices(g, raid)
		if len(choices) == 0 {
			raid.Step = RaidStep{Kind: StepFinishAccess}
			return nil
		}
		if CanEndRaidAccessPhase(g, raid.Id) {
			choices = append(choices, PromptChoice{
				Label: "End raid",
				Raid:  &RaidChoice{Kind: RaidChoiceEndRaid},
			})
		}
		populated := raid.Step
		raid.PopulatedBy = &populated
		g.Player(Riftcaller).PushPrompt(ButtonPrompt(ContextRaidAccess, choices...))

	case StepStartScoringCard:
		if err := MoveCard(g, raid.Step.Card, InScoring(Riftcaller)); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepPayScoringCosts, Card: raid.Step.Card}

	case StepPayScoringCosts:
		// Base schemes have no scoring cost; the step exists so delegates
		// that impose one have a place to collect it.
		raid.Step = RaidStep{Kind: StepScoreCard, Card: raid.Step.Card}

	case StepScoreCard:
		if err := TurnFaceUp(g, raid.Step.Card); err != nil {
			return err
		}
		g.pushHistory(HistoryEvent{
			Kind: HistoryScoredCard, Side: Riftcaller,
			Card: raid.Step.Card, Raid: raid.Id,
		})
		g.addAnimation(GameAnimation{Kind: AnimScoreCard, Side: Riftcaller, Source: raid.Step.Card})
		raid.Step = RaidStep{Kind: StepRiftcallerScoreEvent, Card: raid.Step.Card}

	case StepRiftcallerScoreEvent:
		if err := Fire(g, OnRiftcallerScoreCard, scoreEventFor(g, raid.Step.Card, Riftcaller)); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepScoreEvent, Card: raid.Step.Card}

	case StepScoreEvent:
		if err := Fire(g, OnScoreCard, scoreEventFor(g, raid.Step.Card, Riftcaller)); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepMoveToScoredPosition, Card: raid.Step.Card}

	case StepMoveToScoredPosition:
		card := raid.Step.Card
		if err := MoveCard(g, card, InScored(Riftcaller)); err != nil {
			return err
		}
		raid.removeAccessed(card)
		points := SchemePointsFor(g, card)
		if err := verify(points != nil, "scored card %v has no scheme points", card); err != nil {
			return err
		}
		if err := ScorePoints(g, Riftcaller, points.Points); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepWillPopulateAccessPrompt, Source: AccessPromptFromScore}

	case StepStartRazingCard:
		raid.Step = RaidStep{Kind: StepRazeCard, Card: raid.Step.Card, Cost: raid.Step.Cost}

	case StepRazeCard:
		if err := SpendMana(g, Riftcaller, PayForRaze, raid.Step.Cost); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepRazeCardEvent, Card: raid.Step.Card, Cost: raid.Step.Cost}

	case StepRazeCardEvent:
		card := raid.Step.Card
		if err := MoveCard(g, card, InDiscardPile(Covenant)); err != nil {
			return err
		}
		raid.removeAccessed(card)
		g.pushHistory(HistoryEvent{
			Kind: HistoryRazedCard, Side: Riftcaller,
			Card: card, Raid: raid.Id, Amount: raid.Step.Cost,
		})
		if err := Fire(g, OnRazeCard, RazeEvent{Card: card, Cost: raid.Step.Cost}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepWillPopulateAccessPrompt, Source: AccessPromptFromRaze}

	case StepFinishAccess:
		end := OnRaidAccessEnd
		if raid.CustomAccess {
			end = OnCustomAccessEnd
		}
		if err := Fire(g, end, RaidEvent{Raid: raid.Id, Target: raid.Target}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepFinishRaid}

	case StepFinishRaid:
		return finishRaid(g, true)

	default:
		return fmt.Errorf("%w: unhandled raid step %d", ErrInternal, raid.Step.Kind)
	}
	return nil
}

// EndRaid terminates the current raid before the access phase completes,
// e.g. via a minion combat ability or the Riftcaller conceding the raid.
func EndRaid(g *GameState, initiator InitiatedBy) error {
	if err := verify(g.Raid != nil, "no raid to end"); err != nil {
		return err
	}
	if initiator.Ability != nil && !CanAbilityEndRaid(g, *initiator.Ability) {
		return nil
	}
	return finishRaid(g, false)
}

// finishRaid fires the terminal events and clears the raid slot. A raid
// succeeds iff its access phase ran to completion. Ability-driven access
// sequences are not raids: they end without the raid events or history.
func finishRaid(g *GameState, success bool) error {
	raid := g.Raid
	if raid.CustomAccess {
		g.Raid = nil
		return nil
	}
	ev := RaidEvent{Raid: raid.Id, Target: raid.Target}
	kind := HistoryRaidFailure
	if success {
		kind = HistoryRaidSuccess
		if err := Fire(g, OnRaidSuccess, ev); err != nil {
			return err
		}
	} else {
		if err := Fire(g, OnRaidFailure, ev); err != nil {
			return err
		}
	}
	g.pushHistory(HistoryEvent{Kind: kind, Side: Riftcaller, Raid: raid.Id, Room: raid.Target})
	if err := Fire(g, OnRaidEnd, ev); err != nil {
		return err
	}
	clearRaidMana(g)
	g.Raid = nil
	g.Logger().Debug("raid over",
		zap.Stringer("room", raid.Target), zap.Bool("success", success))
	g.addAnimation(GameAnimation{Kind: AnimRaidComplete, Side: Riftcaller, Room: raid.Target})
	return nil
}

// nextDefender returns the outermost defender not yet considered: the
// highest sorting key strictly below EncounterPosition, or the highest
// overall before the first encounter.
func nextDefender(g *GameState, raid *RaidData) *CardState {
	defenders := g.Defenders(raid.Target)
	for i := len(defenders) - 1; i >= 0; i-- {
		d := defenders[i]
		if raid.EncounterPosition == nil || d.SortingKey < *raid.EncounterPosition {
			return d
		}
	}
	return nil
}

// summonPrompt offers the Covenant the summon decision for an approached
// face-down minion.
func summonPrompt(g *GameState, minion CardId) GamePrompt {
	cost := 0
	if mana := ManaCostFor(g, minion); mana != nil {
		cost = *mana
	}
	id := minion
	return ButtonPrompt(ContextSummonDefender,
		PromptChoice{
			Label:      fmt.Sprintf("Summon %s for %d mana", g.Card(minion).Name(), cost),
			AnchorCard: &id,
			Raid:       &RaidChoice{Kind: RaidChoiceSummon, Minion: minion},
		},
		PromptChoice{
			Label: "Pass",
			Raid:  &RaidChoice{Kind: RaidChoiceDoNotSummon, Minion: minion},
		},
	)
}

// encounterPrompt offers the Riftcaller their weapons against the
// encountered minion, plus continuing unarmed.
func encounterPrompt(g *GameState, minion CardId) GamePrompt {
	var choices []PromptChoice
	for _, opt := range weaponOptions(g, minion) {
		weapon := opt.Weapon
		choices = append(choices, PromptChoice{
			Label:      fmt.Sprintf("%s for %d mana", g.Card(weapon).Name(), opt.Mana),
			AnchorCard: &weapon,
			Raid: &RaidChoice{
				Kind: RaidChoiceUseWeapon, Weapon: weapon,
				Minion: minion, Cost: opt.Mana,
			},
		})
	}
	if CanUseNoWeapon(g, minion) {
		choices = append(choices, PromptChoice{
			Label: "Continue",
			Raid:  &RaidChoice{Kind: RaidChoiceNoWeapon, Minion: minion},
		})
	}
	return ButtonPrompt(ContextEncounterMinion, choices...)
}

// approachChoices builds the Covenant's pre-access window: unveiling
// projects and activating abilities, then proceeding. Empty when neither is
// available.
func approachChoices(g *GameState) []PromptChoice {
	var choices []PromptChoice
	for _, c := range g.AllCards() {
		if c.Id.Side != Covenant || !c.Position.InPlay() {
			continue
		}
		if !c.FaceUp {
			if !CanSummonProject(g, Covenant, c.Id) {
				continue
			}
			id := c.Id
			choices = append(choices, PromptChoice{
				Label:      "Unveil " + c.Name(),
				AnchorCard: &id,
				Effects:    []PromptEffect{{Kind: EffectSummonProject, Card: id}},
			})
			continue
		}
		for i, a := range c.Definition().Abilities {
			if a.Type != AbilityActivated {
				continue
			}
			id := AbilityId{Card: c.Id, Index: i}
			if !abilityCostsPayable(g, Covenant, id) ||
				!QueryBool(g, QueryCanActivateAbility, id, NewFlag(true)) {
				continue
			}
			card := c.Id
			choices = append(choices, PromptChoice{
				Label:      fmt.Sprintf("Use %s: %s", c.Name(), a.Text),
				AnchorCard: &card,
				Effects:    []PromptEffect{{Kind: EffectActivateAbility, Ability: &id}},
			})
		}
	}
	if len(choices) == 0 {
		return nil
	}
	choices = append(choices, PromptChoice{
		Label: "Continue",
		Raid:  &RaidChoice{Kind: RaidChoiceProceedToAccess},
	})
	return choices
}

// buildAccessSet selects the cards the access phase reveals, per room:
// vault = realized deck top, sanctum = random cards from hand, crypt = the
// discard pile, outer rooms = their occupants.
func buildAccessSet(g *GameState, raid *RaidData) ([]CardId, error) {
	rooms := append([]RoomId{raid.Target}, raid.AdditionalTargets...)
	var accessed []CardId
	for _, room := range rooms {
		switch room {
		case RoomVault:
			top, err := RealizeTopOfDeck(g, Covenant, VaultAccessCount(g, raid.Id))
			if err != nil {
				return nil, err
			}
			accessed = append(accessed, top...)
		case RoomSanctum:
			hand := g.Hand(Covenant)
			n := SanctumAccessCount(g, raid.Id)
			for _, i := range pickDistinct(&g.Rng, len(hand), n) {
				accessed = append(accessed, hand[i].Id)
			}
		case RoomCrypt:
			for _, c := range g.DiscardPile(Covenant) {
				accessed = append(accessed, c.Id)
			}
		default:
			for _, c := range g.Occupants(room) {
				accessed = append(accessed, c.Id)
			}
		}
	}
	return accessed, nil
}

// pickDistinct returns min(k, n) distinct indices in [0, n).
func pickDistinct(rng *Xoshiro, n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	if k > n {
		k = n
	}
	return idx[:k]
}

// accessChoices lists the score and raze options remaining in the access
// set.
func accessChoices(g *GameState, raid *RaidData) []PromptChoice {
	available := ManaAvailable(g, Riftcaller, PayForRaze)
	var choices []PromptChoice
	for _, id := range raid.Accessed {
		c := g.Card(id)
		if c == nil || c.Position.Kind == PositionScored {
			continue
		}
		if points := SchemePointsFor(g, id); points != nil {
			anchor := id
			choices = append(choices, PromptChoice{
				Label:      fmt.Sprintf("Score %s for %d points", c.Name(), points.Points),
				AnchorCard: &anchor,
				Raid:       &RaidChoice{Kind: RaidChoiceScoreCard, Card: id},
			})
			continue
		}
		if raze := RazeCostFor(g, id); raze != nil && *raze <= available {
			anchor := id
			choices = append(choices, PromptChoice{
				Label:      fmt.Sprintf("Raze %s for %d mana", c.Name(), *raze),
				AnchorCard: &anchor,
				Raid:       &RaidChoice{Kind: RaidChoiceRazeCard, Card: id, Cost: *raze},
			})
		}
	}
	return choices
}

func scoreEventFor(g *GameState, card CardId, side Side) ScoreEvent {
	points := 0
	if p := SchemePointsFor(g, card); p != nil {
		points = p.Points
	}
	return ScoreEvent{Card: card, Side: side, Points: points}
}

// applyRaidJump consumes the pending jump request.
func applyRaidJump(g *GameState) error {
	raid := g.Raid
	jump := *raid.Jump
	raid.Jump = nil
	switch jump.Kind {
	case JumpEncounterMinion:
		m := g.Card(jump.Card)
		if err := verify(m != nil, "jump: unknown minion %v", jump.Card); err != nil {
			return err
		}
		pos := m.Position
		if err := verify(pos.Kind == PositionRoom && pos.Location == RoomDefenders,
			"jump: %v is not defending a room", jump.Card); err != nil {
			return err
		}
		// The raid follows the minion to its room.
		raid.Target = pos.Room
		key := m.SortingKey
		raid.EncounterPosition = &key
		raid.Encounter = nil
		raid.MinionEncounter = nil
		raid.Step = RaidStep{Kind: StepEncounterMinion, Minion: jump.Card}

	case JumpChangeTarget:
		raid.Target = jump.Room
		raid.EncounterPosition = nil
		raid.Encounter = nil
		raid.Step = RaidStep{Kind: StepNextEncounter}

	case JumpChangeTargetMoveOutermost:
		if raid.Encounter != nil {
			if err := MoveCard(g, *raid.Encounter, InRoom(jump.Room, RoomDefenders)); err != nil {
				return err
			}
		}
		raid.Target = jump.Room
		raid.EncounterPosition = nil
		raid.Encounter = nil
		raid.Step = RaidStep{Kind: StepNextEncounter}

	case JumpAddAdditionalTargetRoom:
		for _, r := range raid.AdditionalTargets {
			if r == jump.Room {
				return nil
			}
		}
		raid.AdditionalTargets = append(raid.AdditionalTargets, jump.Room)

	case JumpEvadeCurrentMinion:
		raid.Encounter = nil
		raid.MinionEncounter = nil
		raid.Step = RaidStep{Kind: StepNextEncounter}

	case JumpDefeatCurrentMinion:
		if raid.Encounter == nil {
			return nil
		}
		minion := *raid.Encounter
		if err := DiscardCard(g, minion); err != nil {
			return err
		}
		g.pushHistory(HistoryEvent{Kind: HistoryMinionDefeated, Side: Riftcaller, Card: minion, Raid: raid.Id})
		if err := Fire(g, OnMinionDefeated, MinionDefeatedEvent{Defender: minion}); err != nil {
			return err
		}
		raid.Step = RaidStep{Kind: StepMinionDefeated, Minion: minion}
	}
	return nil
}

// removeAccessed drops a card from the access set.
func (r *RaidData) removeAccessed(id CardId) {
	for i, c := range r.Accessed {
		if c == id {
			r.Accessed = append(r.Accessed[:i], r.Accessed[i+1:]...)
			return
		}
	}
}
