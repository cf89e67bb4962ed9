package game

import "go.uber.org/zap"

// PlayStep is one stage of the play-card sequence. Playing a card runs
// through these in order; the sequence suspends whenever a decision (like a
// full defender room) is pending and resumes after it resolves.
type PlayStep int

const (
	PlayStepBegin PlayStep = iota
	PlayStepCheckRoomSpace
	PlayStepMoveToTarget
	PlayStepPayCosts
	PlayStepFireEvents
	PlayStepFinish
)

// PlayCardState is the in-flight state of one card being played.
type PlayCardState struct {
	Card      CardId      `json:"card"`
	Target    PlayTarget  `json:"target"`
	Step      PlayStep    `json:"step"`
	Initiator InitiatedBy `json:"initiator"`
}

// InitiatePlayCard begins playing a card. Legality and the action-point cost
// are handled here; the remaining steps run via ProgressPlayCard.
func InitiatePlayCard(g *GameState, side Side, id CardId, target PlayTarget, initiator InitiatedBy) error {
	if !CanPlayCard(g, side, id, target) {
		return ErrIllegalAction
	}
	if browser := activeBrowser(g, side); browser != nil && browserContains(browser, id) {
		g.Player(side).PopPrompt()
		// The card that opened the browser is still finishing its own play
		// sequence; let it resolve before this one takes the slot.
		if g.PlayCard != nil {
			if err := ProgressPlayCard(g); err != nil {
				return err
			}
		}
		if err := verify(g.PlayCard == nil, "play: browser play while another card resolves"); err != nil {
			return err
		}
	}
	if err := SpendActionPoints(g, side, ActionCostFor(g, id)); err != nil {
		return err
	}
	if err := MoveCard(g, id, InPlayed(side)); err != nil {
		return err
	}
	g.Logger().Debug("playing card",
		zap.Stringer("side", side), zap.String("card", g.Card(id).Name()))
	g.PlayCard = &PlayCardState{
		Card:      id,
		Target:    target,
		Step:      PlayStepBegin,
		Initiator: initiator,
	}
	return ProgressPlayCard(g)
}

// ProgressPlayCard advances the play sequence until it completes, suspends
// on a pending decision, or the game ends.
func ProgressPlayCard(g *GameState) error {
	for g.PlayCard != nil && !anyPromptPending(g) && !g.IsGameOver() {
		if err := evaluatePlayStep(g); err != nil {
			return err
		}
	}
	return nil
}

func evaluatePlayStep(g *GameState) error {
	pc := g.PlayCard
	c := g.Card(pc.Card)
	if err := verify(c != nil, "play: unknown card %v", pc.Card); err != nil {
		return err
	}
	switch pc.Step {
	case PlayStepBegin:
		pc.Step = PlayStepCheckRoomSpace

	case PlayStepCheckRoomSpace:
		if c.Position.Kind == PositionHand {
			// The room-full choice returned the card to hand; abort the play
			// and refund the action.
			GainActionPoints(g, pc.Card.Side, ActionCostFor(g, pc.Card))
			g.PlayCard = nil
			return nil
		}
		if c.Definition().CardType == CardTypeMinion && pc.Target.Kind == PlayTargetRoom {
			defenders := g.Defenders(pc.Target.Room)
			if len(defenders) >= MaximumMinionsInRoom {
				pushRoomFullPrompt(g, pc, defenders[0].Id)
				return nil
			}
		}
		pc.Step = PlayStepMoveToTarget

	case PlayStepMoveToTarget:
		dest, faceUp := playDestination(c.Definition().CardType, pc)
		if dest.Kind != PositionPlayed {
			if err := MoveCard(g, pc.Card, dest); err != nil {
				return err
			}
		}
		if faceUp {
			if err := TurnFaceUp(g, pc.Card); err != nil {
				return err
			}
		}
		pc.Step = PlayStepPayCosts

	case PlayStepPayCosts:
		if !playsFaceDown(g, pc.Card) {
			mana := ManaCostFor(g, pc.Card)
			if err := verify(mana != nil, "play: card %v has no mana cost", pc.Card); err != nil {
				return err
			}
			if err := SpendMana(g, pc.Card.Side, PayForCard, *mana); err != nil {
				return err
			}
			if custom := c.Definition().Cost.Custom; custom != nil && custom.Pay != nil {
				if err := custom.Pay(g, pc.Card); err != nil {
					return err
				}
			}
		}
		pc.Step = PlayStepFireEvents

	case PlayStepFireEvents:
		c.OnPlay = &OnPlayState{Target: pc.Target}
		g.pushHistory(HistoryEvent{
			Kind: HistoryPlayedCard, Side: pc.Card.Side,
			Card: pc.Card, Room: pc.Target.Room,
		})
		if err := Fire(g, OnPlayCard, CardPlayed{Card: pc.Card, Target: pc.Target}); err != nil {
			return err
		}
		pc.Step = PlayStepFinish

	case PlayStepFinish:
		// Spells resolve from the staging zone and then hit the discard pile.
		if c.Position.Kind == PositionPlayed {
			if err := MoveCard(g, pc.Card, InDiscardPile(pc.Card.Side)); err != nil {
				return err
			}
		}
		g.PlayCard = nil
	}
	return nil
}

// playDestination maps a card type and target to the zone the card enters
// and whether it enters face-up.
func playDestination(t CardType, pc *PlayCardState) (Position, bool) {
	side := pc.Card.Side
	switch t {
	case CardTypeMinion:
		return InRoom(pc.Target.Room, RoomDefenders), false
	case CardTypeScheme, CardTypeProject:
		return InRoom(pc.Target.Room, RoomOccupants), false
	case CardTypeArtifact:
		return InItem(ItemArtifacts), true
	case CardTypeEvocation:
		return InItem(ItemEvocations), true
	case CardTypeAlly:
		return InItem(ItemAllies), true
	case CardTypeIdentity:
		return InIdentityZone(side), true
	case CardTypeGameModifier:
		return InGameModifierZone(), true
	default: // spells stage in the played zone while their effects resolve
		return InPlayed(side), true
	}
}

// pushRoomFullPrompt asks the Covenant to resolve a full defender room:
// sacrifice the oldest minion to make space, or take the new card back.
func pushRoomFullPrompt(g *GameState, pc *PlayCardState, oldest CardId) {
	g.Player(Covenant).PushPrompt(ButtonPrompt(ContextRoomIsFull,
		PromptChoice{
			Label:      "Sacrifice " + g.Card(oldest).Name(),
			AnchorCard: &oldest,
			Effects:    []PromptEffect{{Kind: EffectSacrificeCard, Card: oldest}},
		},
		PromptChoice{
			Label:   "Return " + g.Card(pc.Card).Name() + " to hand",
			Effects: []PromptEffect{{Kind: EffectMoveCard, Card: pc.Card, Target: InHand(Covenant)}},
		},
	))
}
