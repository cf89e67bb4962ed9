package main

import (
	"fmt"
	"io"

	"github.com/riftwar-games/riftwar/internal/display"
	"github.com/riftwar-games/riftwar/internal/game"
)

// demo runs a short scripted game against a fixed seed and prints every
// update, answering prompts with a simple default policy.
func demo(w io.Writer, seed uint64) error {
	covenant := &game.Deck{
		Side:     game.Covenant,
		Identity: "Covenant Architect",
		Cards: []game.DeckEntry{
			{Name: "Rime Sentinel", Count: 3},
			{Name: "Ashen Warden", Count: 3},
			{Name: "Gold Reserves", Count: 3},
			{Name: "Hidden Ledger", Count: 3},
			{Name: "Mana Crucible", Count: 2},
			{Name: "Requisition", Count: 2},
		},
	}
	riftcaller := &game.Deck{
		Side:     game.Riftcaller,
		Identity: "Rift Wanderer",
		Cards: []game.DeckEntry{
			{Name: "Emberblade", Count: 3},
			{Name: "Prism Edge", Count: 2},
			{Name: "Veilwisp", Count: 3},
			{Name: "Grey Pilgrim", Count: 2},
			{Name: "Sift", Count: 3},
		},
	}

	config := game.GameConfig{Deterministic: true, Seed: seed}
	g, err := game.NewGame(game.NewGameId(), covenant, riftcaller, config)
	if err != nil {
		return err
	}

	script := []struct {
		side   game.Side
		action game.Action
		note   string
	}{
		{game.Covenant, game.Action{Kind: game.ActionMulligan, Mulligan: game.MulliganKeep}, "Covenant keeps"},
		{game.Riftcaller, game.Action{Kind: game.ActionMulligan, Mulligan: game.MulliganKeep}, "Riftcaller keeps"},
		{game.Covenant, game.Action{Kind: game.ActionGainMana}, "Covenant gains mana"},
		{game.Covenant, game.Action{Kind: game.ActionDrawCard}, "Covenant draws"},
		{game.Covenant, game.Action{Kind: game.ActionEndTurn}, "Covenant ends the turn"},
		{game.Riftcaller, game.Action{Kind: game.ActionGainMana}, "Riftcaller gains mana"},
		{game.Riftcaller, game.Action{Kind: game.ActionInitiateRaid, Room: game.RoomVault}, "Riftcaller raids the Vault"},
		{game.Riftcaller, game.Action{Kind: game.ActionEndTurn}, "Riftcaller ends the turn"},
	}

	for _, step := range script {
		fmt.Fprintf(w, "\n== %s\n", step.note)
		if err := game.HandleAction(g, step.side, step.action); err != nil {
			return fmt.Errorf("%s: %w", step.note, err)
		}
		display.RenderAnimations(w, g.Animations)
		if err := resolvePrompts(w, g); err != nil {
			return err
		}
		if g.IsGameOver() {
			break
		}
	}

	display.Render(w, display.BuildGameView(g, game.Riftcaller))
	return nil
}

// resolvePrompts answers pending prompts with defaults: the last button, the
// first cards of a selector, the first valid room.
func resolvePrompts(w io.Writer, g *game.GameState) error {
	for {
		side := g.CurrentPriority()
		if side == nil {
			return nil
		}
		p := g.Player(*side).Prompt()
		if p == nil {
			return nil
		}
		var action game.Action
		switch {
		case len(p.Buttons) > 0:
			choice := len(p.Buttons) - 1
			fmt.Fprintf(w, "   %s chooses: %s\n", side, p.Buttons[choice].Label)
			action = game.Action{Kind: game.ActionPromptChoice, ChoiceIndex: choice}
		case p.Selector != nil:
			if len(p.Selector.Chosen) < p.Selector.Validation.ExactlyCount {
				action = game.Action{Kind: game.ActionMoveSelectorCard, Card: p.Selector.Unchosen[0]}
			} else {
				action = game.Action{Kind: game.ActionSubmitCardSelector}
			}
		case p.Rooms != nil && len(p.Rooms.ValidRooms) > 0:
			action = game.Action{Kind: game.ActionSelectRoom, Room: p.Rooms.ValidRooms[0]}
		default:
			return fmt.Errorf("unanswerable prompt: %v", p.Kind)
		}
		if err := game.HandleAction(g, *side, action); err != nil {
			return err
		}
		display.RenderAnimations(w, g.Animations)
	}
}
