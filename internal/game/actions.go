package game

import (
	"fmt"

	"go.uber.org/zap"
)

// ActionKind enumerates everything a player can ask the engine to do.
type ActionKind int

const (
	ActionMulligan ActionKind = iota
	ActionGainMana
	ActionDrawCard
	ActionSpendActionPoint
	ActionPlayCard
	ActionActivateAbility
	ActionSummonProject
	ActionRemoveCurse
	ActionDispelEvocation
	ActionInitiateRaid
	ActionProgressRoom
	ActionStartTurn
	ActionEndTurn
	ActionPromptChoice
	ActionMoveSelectorCard
	ActionSubmitCardSelector
	ActionSelectRoom
	ActionResign
)

func (k ActionKind) String() string {
	switch k {
	case ActionMulligan:
		return "Mulligan"
	case ActionGainMana:
		return "GainMana"
	case ActionDrawCard:
		return "DrawCard"
	case ActionSpendActionPoint:
		return "SpendActionPoint"
	case ActionPlayCard:
		return "PlayCard"
	case ActionActivateAbility:
		return "ActivateAbility"
	case ActionSummonProject:
		return "SummonProject"
	case ActionRemoveCurse:
		return "RemoveCurse"
	case ActionDispelEvocation:
		return "DispelEvocation"
	case ActionInitiateRaid:
		return "InitiateRaid"
	case ActionProgressRoom:
		return "ProgressRoom"
	case ActionStartTurn:
		return "StartTurn"
	case ActionEndTurn:
		return "EndTurn"
	case ActionPromptChoice:
		return "PromptChoice"
	case ActionMoveSelectorCard:
		return "MoveSelectorCard"
	case ActionSubmitCardSelector:
		return "SubmitCardSelector"
	case ActionSelectRoom:
		return "SelectRoom"
	case ActionResign:
		return "Resign"
	default:
		return "Unknown"
	}
}

// Action is one player request. Fields beyond Kind are read per kind.
type Action struct {
	Kind ActionKind `json:"kind"`

	Card    CardId     `json:"card,omitempty"`
	Ability *AbilityId `json:"ability,omitempty"`
	Target  PlayTarget `json:"target,omitempty"`
	Room    RoomId     `json:"room,omitempty"`

	Mulligan MulliganDecision `json:"mulligan,omitempty"`
	// ChoiceIndex selects a button for ActionPromptChoice.
	ChoiceIndex int `json:"choice_index,omitempty"`
}

// HandleAction is the single entry point for player actions. Invalid actions
// return a typed error with the state unchanged; valid ones mutate, run
// state-based processing, and leave the animation tracker holding this
// action's steps.
func HandleAction(g *GameState, side Side, action Action) error {
	if g.IsGameOver() {
		return ErrIllegalAction
	}
	if g.Animations != nil {
		g.Animations.Reset()
	}
	g.Logger().Debug("handle action",
		zap.Stringer("side", side), zap.Stringer("kind", action.Kind))

	var err error
	switch action.Kind {
	case ActionMulligan:
		err = handleMulligan(g, side, action.Mulligan)
	case ActionGainMana:
		err = handleGainMana(g, side)
	case ActionDrawCard:
		err = handleDrawCard(g, side)
	case ActionSpendActionPoint:
		err = handleSpendActionPoint(g, side)
	case ActionPlayCard:
		err = InitiatePlayCard(g, side, action.Card, action.Target, ByPlayer())
	case ActionActivateAbility:
		err = handleActivateAbility(g, side, action)
	case ActionSummonProject:
		err = handleSummonProject(g, side, action.Card)
	case ActionRemoveCurse:
		err = handleRemoveCurse(g, side)
	case ActionDispelEvocation:
		err = handleDispelEvocation(g, side, action.Card)
	case ActionInitiateRaid:
		err = handleInitiateRaid(g, side, action.Room)
	case ActionProgressRoom:
		err = handleProgressRoom(g, side, action.Room)
	case ActionStartTurn:
		err = handleStartTurn(g, side)
	case ActionEndTurn:
		err = handleEndTurn(g, side)
	case ActionPromptChoice:
		err = handlePromptChoice(g, side, action.ChoiceIndex)
	case ActionMoveSelectorCard:
		err = handleMoveSelectorCard(g, side, action.Card)
	case ActionSubmitCardSelector:
		err = handleSubmitCardSelector(g, side)
	case ActionSelectRoom:
		err = handleSelectRoom(g, side, action.Room)
	case ActionResign:
		err = GameOver(g, side.Opponent())
	default:
		err = fmt.Errorf("%w: unknown action kind %d", ErrIllegalAction, action.Kind)
	}
	if err != nil {
		return err
	}
	return runStateBasedActions(g)
}

func handleMulligan(g *GameState, side Side, decision MulliganDecision) error {
	if g.Info.Phase != PhaseResolveMulligans {
		return ErrIllegalAction
	}
	p := g.Player(side)
	if p.Mulligan != nil {
		return ErrIllegalAction
	}
	if decision == MulliganTakeNew {
		var hand []CardId
		for _, c := range g.Hand(side) {
			hand = append(hand, c.Id)
		}
		if err := ShuffleIntoDeck(g, side, hand); err != nil {
			return err
		}
		if err := DrawCards(g, side, StartingHandSize, ByPlayer()); err != nil {
			return err
		}
	}
	d := decision
	p.Mulligan = &d
	if g.Player(side.Opponent()).Mulligan == nil {
		return nil
	}
	// Both hands are settled: the game proper begins.
	g.Player(Covenant).Mana.Base = StartingMana
	g.Player(Riftcaller).Mana.Base = StartingMana
	g.Info.Phase = PhasePlay
	return startTurn(g, Covenant, 1)
}

func handleGainMana(g *GameState, side Side) error {
	if !CanTakeGainManaAction(g, side) {
		return ErrIllegalAction
	}
	if err := SpendActionPoints(g, side, 1); err != nil {
		return err
	}
	GainMana(g, side, 1)
	g.pushHistory(HistoryEvent{Kind: HistoryGainedManaAction, Side: side})
	return nil
}

func handleDrawCard(g *GameState, side Side) error {
	if !CanTakeDrawCardAction(g, side) {
		return ErrIllegalAction
	}
	if err := SpendActionPoints(g, side, 1); err != nil {
		return err
	}
	if err := DrawCards(g, side, 1, ByPlayer()); err != nil {
		return err
	}
	if g.IsGameOver() {
		return nil
	}
	return Fire(g, OnDrawCardAction, TurnEvent{Side: side, Number: g.Info.Turn.Number})
}

func handleSpendActionPoint(g *GameState, side Side) error {
	if !CanSpendActionPoint(g, side) {
		return ErrIllegalAction
	}
	if err := SpendActionPoints(g, side, 1); err != nil {
		return err
	}
	g.pushHistory(HistoryEvent{Kind: HistorySpentActionPoint, Side: side})
	return nil
}

func handleActivateAbility(g *GameState, side Side, action Action) error {
	if action.Ability == nil || !CanActivateAbility(g, side, *action.Ability) {
		return ErrIllegalAction
	}
	if err := activateAbility(g, side, *action.Ability); err != nil {
		return err
	}
	if g.Raid != nil {
		refreshRaidPrompt(g, side)
		return ProgressRaid(g)
	}
	return nil
}

// activateAbility pays an activated ability's costs and fires its event.
// Legality is the caller's concern: the action handler gates on
// CanActivateAbility, the approach prompt on its own choice list.
func activateAbility(g *GameState, side Side, id AbilityId) error {
	a := abilityFor(g, id)
	if err := verify(a != nil && a.Activated != nil, "activate: no ability %v", id); err != nil {
		return err
	}
	if err := SpendActionPoints(g, side, a.Activated.Cost.ActionPoints); err != nil {
		return err
	}
	if mana := AbilityManaCostFor(g, id); mana != nil {
		if err := SpendMana(g, side, PayForAbility, *mana); err != nil {
			return err
		}
	}
	if a.Activated.Cost.Custom != nil && a.Activated.Cost.Custom.Pay != nil {
		if err := a.Activated.Cost.Custom.Pay(g, id.Card); err != nil {
			return err
		}
	}
	g.Card(id.Card).abilityState(id.Index).LastUsedTurn = g.Info.Turn.Number
	g.pushHistory(HistoryEvent{
		Kind: HistoryActivatedAbility, Side: side,
		Card: id.Card, Ability: &id,
	})
	return Fire(g, OnActivateAbility, id)
}

func handleSummonProject(g *GameState, side Side, id CardId) error {
	if !CanSummonProject(g, side, id) {
		return ErrIllegalAction
	}
	return SummonProject(g, id, ByPlayer())
}

func handleRemoveCurse(g *GameState, side Side) error {
	if !CanRemoveCurse(g, side) {
		return ErrIllegalAction
	}
	if err := SpendActionPoints(g, side, 1); err != nil {
		return err
	}
	if err := SpendMana(g, side, PayForRemoveCurse, CostToRemoveCurse); err != nil {
		return err
	}
	RemoveCurses(g, 1)
	return nil
}

func handleDispelEvocation(g *GameState, side Side, id CardId) error {
	if !CanDispelEvocation(g, side, id) {
		return ErrIllegalAction
	}
	if err := SpendActionPoints(g, side, 1); err != nil {
		return err
	}
	if err := SpendMana(g, side, PayForDispelEvocation, CostToDispelEvocation); err != nil {
		return err
	}
	return DiscardCard(g, id)
}

func handleInitiateRaid(g *GameState, side Side, room RoomId) error {
	if side != Riftcaller {
		return ErrIllegalAction
	}
	return InitiateRaid(g, room, ByPlayer())
}

func handleProgressRoom(g *GameState, side Side, room RoomId) error {
	if !CanProgressRoom(g, side, room) {
		return ErrIllegalAction
	}
	if err := SpendActionPoints(g, side, 1); err != nil {
		return err
	}
	if err := SpendMana(g, side, PayForProgress, 1); err != nil {
		return err
	}
	g.pushHistory(HistoryEvent{Kind: HistoryRoomProgressed, Side: side, Room: room})
	g.addAnimation(GameAnimation{Kind: AnimProgressRoom, Side: side, Room: room})
	for _, occ := range g.Occupants(room) {
		points := SchemePointsFor(g, occ.Id)
		if points == nil {
			continue
		}
		if err := AddProgress(g, occ.Id, 1); err != nil {
			return err
		}
		if occ.Progress >= points.ProgressRequirement {
			if err := CovenantScoreCard(g, occ.Id); err != nil {
				return err
			}
		}
	}
	return nil
}

func handleStartTurn(g *GameState, side Side) error {
	if !CanStartTurn(g, side) {
		return ErrIllegalAction
	}
	return startTurn(g, side, nextTurnNumber(g, side))
}

func handleEndTurn(g *GameState, side Side) error {
	if !CanEndTurn(g, side) {
		return ErrIllegalAction
	}
	g.Info.TurnState = TurnEnded
	limit := MaximumHandSize(g, side)
	hand := g.Hand(side)
	if len(hand) > limit {
		var unchosen []CardId
		for _, c := range hand {
			unchosen = append(unchosen, c.Id)
		}
		g.Player(side).PushPrompt(GamePrompt{
			Kind:    PromptCardSelector,
			Context: ContextDiscardToLimit,
			Selector: &CardSelectorPrompt{
				Unchosen:   unchosen,
				Target:     InDiscardPile(side),
				Validation: SelectorValidation{ExactlyCount: len(hand) - limit},
				Action:     SelectorDiscard,
			},
		})
		return nil
	}
	next := side.Opponent()
	return startTurn(g, next, nextTurnNumber(g, next))
}

// nextTurnNumber: the turn number increments when play returns to the
// Covenant, who goes first.
func nextTurnNumber(g *GameState, side Side) int {
	if side == Covenant {
		return g.Info.Turn.Number + 1
	}
	return g.Info.Turn.Number
}

// startTurn begins a turn: phase bookkeeping, the dawn/dusk event,
// start-of-turn action points and the Covenant's automatic draw.
func startTurn(g *GameState, side Side, number int) error {
	g.Info.Phase = PhasePlay
	g.Info.Turn = TurnData{Side: side, Number: number}
	g.Info.TurnState = TurnActive
	g.Player(side).ActionPoints = StartOfTurnActions(g, side)
	g.addAnimation(GameAnimation{Kind: AnimStartTurn, Side: side})
	g.Logger().Debug("turn start",
		zap.Stringer("side", side), zap.Int("number", number))

	event := OnDawn
	if side == Covenant {
		event = OnDusk
	}
	if err := Fire(g, event, TurnEvent{Side: side, Number: number}); err != nil {
		return err
	}
	if side == Covenant {
		return DrawCards(g, Covenant, 1, ByPlayer())
	}
	return nil
}

func handlePromptChoice(g *GameState, side Side, index int) error {
	p := g.Player(side)
	prompt := p.Prompt()
	if prompt == nil || len(prompt.Buttons) == 0 {
		return ErrPromptMismatch
	}
	switch prompt.Kind {
	case PromptButtons, PromptPriority:
	case PromptPlayCardBrowser:
		// A browser's buttons are its decline path.
	default:
		return ErrPromptMismatch
	}
	if index < 0 || index >= len(prompt.Buttons) {
		return ErrPromptMismatch
	}
	choice := prompt.Buttons[index]
	p.PopPrompt()

	if err := applyPromptEffects(g, side, choice.Effects); err != nil {
		return err
	}
	if choice.Raid != nil {
		if err := applyRaidChoice(g, *choice.Raid); err != nil {
			return err
		}
	}
	if g.Raid != nil {
		if err := ProgressRaid(g); err != nil {
			return err
		}
	}
	if g.PlayCard != nil {
		return ProgressPlayCard(g)
	}
	return nil
}

func applyPromptEffects(g *GameState, side Side, effects []PromptEffect) error {
	for _, e := range effects {
		switch e.Kind {
		case EffectNone:
		case EffectMoveCard:
			if err := MoveCard(g, e.Card, e.Target); err != nil {
				return err
			}
		case EffectSacrificeCard:
			if err := SacrificeCard(g, e.Card); err != nil {
				return err
			}
		case EffectGainMana:
			GainMana(g, side, e.Amount)
		case EffectEndRaid:
			if err := EndRaid(g, ByPlayer()); err != nil {
				return err
			}
		case EffectSummonProject:
			if err := SummonProject(g, e.Card, ByPlayer()); err != nil {
				return err
			}
		case EffectActivateAbility:
			if err := verify(e.Ability != nil, "effect: no ability to activate"); err != nil {
				return err
			}
			if err := activateAbility(g, side, *e.Ability); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyRaidChoice translates an answered raid button into the stepper's
// next step.
func applyRaidChoice(g *GameState, choice RaidChoice) error {
	raid := g.Raid
	if err := verify(raid != nil, "raid choice without a raid"); err != nil {
		return err
	}
	switch choice.Kind {
	case RaidChoiceSummon:
		raid.Step = RaidStep{Kind: StepSummonMinion, Minion: choice.Minion}
	case RaidChoiceDoNotSummon:
		raid.Step = RaidStep{Kind: StepDoNotSummon, Minion: choice.Minion}
	case RaidChoiceUseWeapon:
		weapon := choice.Weapon
		raid.Step = RaidStep{Kind: StepUseWeapon, Minion: choice.Minion, Weapon: &weapon}
	case RaidChoiceNoWeapon:
		raid.Step = RaidStep{Kind: StepFireMinionCombatAbility, Minion: choice.Minion}
	case RaidChoiceProceedToAccess:
		raid.Step = RaidStep{Kind: StepAccessStart}
	case RaidChoiceScoreCard:
		raid.Step = RaidStep{Kind: StepStartScoringCard, Card: choice.Card}
	case RaidChoiceRazeCard:
		raid.Step = RaidStep{Kind: StepStartRazingCard, Card: choice.Card, Cost: choice.Cost}
	case RaidChoiceEndRaid:
		raid.Step = RaidStep{Kind: StepFinishAccess}
	default:
		return fmt.Errorf("%w: unknown raid choice %d", ErrInternal, choice.Kind)
	}
	return nil
}

func handleMoveSelectorCard(g *GameState, side Side, id CardId) error {
	p := g.Player(side)
	prompt := p.Prompt()
	if prompt == nil || prompt.Kind != PromptCardSelector || prompt.Selector == nil {
		return ErrPromptMismatch
	}
	sel := prompt.Selector
	for i, c := range sel.Unchosen {
		if c == id {
			sel.Unchosen = append(sel.Unchosen[:i], sel.Unchosen[i+1:]...)
			sel.Chosen = append(sel.Chosen, id)
			return nil
		}
	}
	for i, c := range sel.Chosen {
		if c == id {
			sel.Chosen = append(sel.Chosen[:i], sel.Chosen[i+1:]...)
			sel.Unchosen = append(sel.Unchosen, id)
			return nil
		}
	}
	return ErrPromptMismatch
}

func handleSubmitCardSelector(g *GameState, side Side) error {
	p := g.Player(side)
	prompt := p.Prompt()
	if prompt == nil || prompt.Kind != PromptCardSelector || prompt.Selector == nil {
		return ErrPromptMismatch
	}
	sel := prompt.Selector
	if len(sel.Chosen) != sel.Validation.ExactlyCount {
		return ErrPromptMismatch
	}
	context := prompt.Context
	p.PopPrompt()
	for _, id := range sel.Chosen {
		switch sel.Action {
		case SelectorDiscard:
			if err := DiscardCard(g, id); err != nil {
				return err
			}
		case SelectorSacrifice:
			if err := SacrificeCard(g, id); err != nil {
				return err
			}
		}
	}
	if context == ContextDiscardToLimit && g.Info.TurnState == TurnEnded {
		next := side.Opponent()
		return startTurn(g, next, nextTurnNumber(g, next))
	}
	if g.Raid != nil {
		return ProgressRaid(g)
	}
	return nil
}

func handleSelectRoom(g *GameState, side Side, room RoomId) error {
	p := g.Player(side)
	prompt := p.Prompt()
	if prompt == nil || prompt.Kind != PromptRoomSelector || prompt.Rooms == nil {
		return ErrPromptMismatch
	}
	valid := false
	for _, r := range prompt.Rooms.ValidRooms {
		if r == room {
			valid = true
			break
		}
	}
	if !valid {
		return ErrPromptMismatch
	}
	initiator := prompt.Rooms.Initiator
	p.PopPrompt()
	a := abilityFor(g, initiator)
	if a != nil && a.OnRoomSelected != nil {
		scope := Scope{Ability: initiator}
		if c := g.Card(initiator.Card); c != nil {
			scope.Metadata = CardMetadata{Upgraded: c.Variant.Upgraded}
		}
		if err := a.OnRoomSelected(g, scope, room); err != nil {
			return err
		}
	}
	if g.Raid != nil {
		return ProgressRaid(g)
	}
	return nil
}
