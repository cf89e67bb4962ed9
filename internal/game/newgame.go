package game

import (
	"encoding/binary"

	"go.uber.org/zap"
)

// NewGame builds a fresh game from two deck lists: cards are instantiated,
// decks shuffled (implicitly, via the unknown-deck zone), opening hands
// drawn, and both sides put into the mulligan phase.
func NewGame(id GameId, covenant, riftcaller *Deck, config GameConfig) (*GameState, error) {
	if err := verify(covenant.Side == Covenant, "covenant deck has side %v", covenant.Side); err != nil {
		return nil, err
	}
	if err := verify(riftcaller.Side == Riftcaller, "riftcaller deck has side %v", riftcaller.Side); err != nil {
		return nil, err
	}

	seed := config.Seed
	if !config.Deterministic {
		seed = binary.BigEndian.Uint64(id[:8]) ^ binary.BigEndian.Uint64(id[8:])
	}

	g := &GameState{
		Id: id,
		Info: GameInfo{
			Phase:     PhaseResolveMulligans,
			Turn:      TurnData{Side: Covenant, Number: 0},
			TurnState: TurnActive,
			Config:    config,
		},
		Players: [2]*PlayerState{
			{Side: Covenant, Schools: covenant.Schools},
			{Side: Riftcaller, Schools: riftcaller.Schools},
		},
		Rng: NewXoshiro(seed),
	}

	for _, deck := range []*Deck{covenant, riftcaller} {
		if err := instantiateDeck(g, deck); err != nil {
			return nil, err
		}
	}

	for _, side := range []Side{Covenant, Riftcaller} {
		if err := DrawCards(g, side, StartingHandSize, ByPlayer()); err != nil {
			return nil, err
		}
	}

	g.Logger().Info("game created",
		zap.String("id", id.String()),
		zap.Int("covenant_cards", len(g.Cards[Covenant])),
		zap.Int("riftcaller_cards", len(g.Cards[Riftcaller])))
	return g, nil
}

func instantiateDeck(g *GameState, deck *Deck) error {
	side := deck.Side
	if deck.Identity != "" {
		id, err := CreateAndAddCard(g, CardVariant{Name: deck.Identity}, side, InIdentityZone(side))
		if err != nil {
			return err
		}
		if err := TurnFaceUp(g, id); err != nil {
			return err
		}
	}
	for _, name := range deck.Riftcallers {
		id, err := CreateAndAddCard(g, CardVariant{Name: name}, side, InIdentityZone(side))
		if err != nil {
			return err
		}
		if err := TurnFaceUp(g, id); err != nil {
			return err
		}
	}
	for _, entry := range deck.Cards {
		variant := CardVariant{Name: entry.Name, Upgraded: entry.Upgraded}
		for i := 0; i < entry.Count; i++ {
			if _, err := CreateAndAddCard(g, variant, side, InDeckUnknown(side)); err != nil {
				return err
			}
		}
	}
	return nil
}
