// Package display builds redacted per-side views of a game and renders them
// as text. The engine owns the authoritative state; everything here is a
// projection of what one viewer is allowed to see.
package display

import (
	"fmt"

	"github.com/riftwar-games/riftwar/internal/game"
)

// CardView is one card as seen by the viewer. Hidden cards carry no name.
type CardView struct {
	Name     string `json:"name,omitempty"`
	FaceDown bool   `json:"face_down,omitempty"`
	Type     string `json:"type,omitempty"`

	Progress     int `json:"progress,omitempty"`
	StoredMana   int `json:"stored_mana,omitempty"`
	PowerCharges int `json:"power_charges,omitempty"`

	Markers []string `json:"markers,omitempty"`
}

// PlayerView is one side's resources and hidden-zone counts.
type PlayerView struct {
	Side         string     `json:"side"`
	Mana         int        `json:"mana"`
	RaidMana     int        `json:"raid_mana,omitempty"`
	ActionPoints int        `json:"action_points"`
	Score        int        `json:"score"`
	HandCount    int        `json:"hand_count"`
	Hand         []CardView `json:"hand,omitempty"` // populated only for the viewer
	DeckCount    int        `json:"deck_count"`
	Discard      []CardView `json:"discard,omitempty"`
	Curses       int        `json:"curses,omitempty"`
	Wounds       int        `json:"wounds,omitempty"`
	Leylines     int        `json:"leylines,omitempty"`
}

// RoomView is one outer room of the Covenant board. Defenders are listed
// innermost first.
type RoomView struct {
	Room      string     `json:"room"`
	Defenders []CardView `json:"defenders,omitempty"`
	Occupants []CardView `json:"occupants,omitempty"`
}

// ItemsView is the Riftcaller's arena columns.
type ItemsView struct {
	Artifacts  []CardView `json:"artifacts,omitempty"`
	Evocations []CardView `json:"evocations,omitempty"`
	Allies     []CardView `json:"allies,omitempty"`
}

// RaidView summarizes a live raid for the viewer.
type RaidView struct {
	Target    string     `json:"target"`
	Encounter string     `json:"encounter,omitempty"`
	Accessed  []CardView `json:"accessed,omitempty"`
}

// SelectorView is a pending card selector.
type SelectorView struct {
	Unchosen []string `json:"unchosen"`
	Chosen   []string `json:"chosen,omitempty"`
	Required int      `json:"required"`
}

// PromptView is the viewer's oldest pending decision.
type PromptView struct {
	Kind     string        `json:"kind"`
	Context  string        `json:"context,omitempty"`
	Buttons  []string      `json:"buttons,omitempty"`
	Selector *SelectorView `json:"selector,omitempty"`
	Browser  []string      `json:"browser,omitempty"`
	Rooms    []string      `json:"rooms,omitempty"`
}

// GameView is the full game from one viewer's perspective.
type GameView struct {
	Viewer     string      `json:"viewer"`
	Turn       int         `json:"turn"`
	TurnSide   string      `json:"turn_side"`
	Phase      string      `json:"phase"`
	IsYourTurn bool        `json:"is_your_turn"`
	Winner     string      `json:"winner,omitempty"`
	You        PlayerView  `json:"you"`
	Opponent   PlayerView  `json:"opponent"`
	Rooms      []RoomView  `json:"rooms"`
	Items      ItemsView   `json:"items"`
	Raid       *RaidView   `json:"raid,omitempty"`
	Prompt     *PromptView `json:"prompt,omitempty"`
}

// BuildGameView projects the game state from one side's perspective. The
// result contains only information that side is entitled to see.
func BuildGameView(g *game.GameState, viewer game.Side) *GameView {
	v := &GameView{
		Viewer:     viewer.String(),
		Turn:       g.Info.Turn.Number,
		TurnSide:   g.Info.Turn.Side.String(),
		Phase:      g.Info.Phase.String(),
		IsYourTurn: g.Info.Turn.Side == viewer && g.Info.TurnState == game.TurnActive,
		You:        buildPlayerView(g, viewer, viewer),
		Opponent:   buildPlayerView(g, viewer.Opponent(), viewer),
	}
	if g.Info.Winner != nil {
		v.Winner = g.Info.Winner.String()
	}
	for _, room := range game.OuterRooms {
		rv := RoomView{Room: room.String()}
		for _, c := range g.Defenders(room) {
			rv.Defenders = append(rv.Defenders, buildCardView(g, c, viewer))
		}
		for _, c := range g.Occupants(room) {
			rv.Occupants = append(rv.Occupants, buildCardView(g, c, viewer))
		}
		if len(rv.Defenders) > 0 || len(rv.Occupants) > 0 {
			v.Rooms = append(v.Rooms, rv)
		}
	}
	v.Items = ItemsView{
		Artifacts:  buildCardViews(g, g.ArenaItems(game.ItemArtifacts), viewer),
		Evocations: buildCardViews(g, g.ArenaItems(game.ItemEvocations), viewer),
		Allies:     buildCardViews(g, g.ArenaItems(game.ItemAllies), viewer),
	}
	if g.Raid != nil {
		v.Raid = buildRaidView(g, viewer)
	}
	if p := g.Player(viewer).Prompt(); p != nil {
		v.Prompt = buildPromptView(g, p)
	}
	return v
}

func buildPlayerView(g *game.GameState, side, viewer game.Side) PlayerView {
	p := g.Player(side)
	pv := PlayerView{
		Side:         side.String(),
		Mana:         p.Mana.Base,
		RaidMana:     p.Mana.RaidSpecific,
		ActionPoints: p.ActionPoints,
		Score:        p.Score,
		HandCount:    len(g.Hand(side)),
		DeckCount:    len(g.DeckUnknown(side)) + len(g.DeckTop(side)),
		Curses:       p.Curses,
		Wounds:       p.Wounds,
		Leylines:     p.Leylines,
	}
	if side == viewer {
		pv.Hand = buildCardViews(g, g.Hand(side), viewer)
	}
	pv.Discard = buildCardViews(g, g.DiscardPile(side), viewer)
	return pv
}

func buildCardViews(g *game.GameState, cards []*game.CardState, viewer game.Side) []CardView {
	var out []CardView
	for _, c := range cards {
		out = append(out, buildCardView(g, c, viewer))
	}
	return out
}

func buildCardView(g *game.GameState, c *game.CardState, viewer game.Side) CardView {
	if !c.IsVisibleTo(viewer) {
		return CardView{FaceDown: true}
	}
	cv := CardView{
		Name:         c.Name(),
		FaceDown:     !c.FaceUp,
		Type:         c.Definition().CardType.String(),
		Progress:     c.Progress,
		StoredMana:   c.StoredMana,
		PowerCharges: c.PowerCharges,
	}
	for _, m := range game.StatusMarkersFor(g, c.Id) {
		cv.Markers = append(cv.Markers, m.String())
	}
	return cv
}

func buildRaidView(g *game.GameState, viewer game.Side) *RaidView {
	raid := g.Raid
	rv := &RaidView{Target: raid.Target.String()}
	if raid.Encounter != nil {
		if c := g.Card(*raid.Encounter); c != nil && c.IsVisibleTo(viewer) {
			rv.Encounter = c.Name()
		}
	}
	for _, id := range raid.Accessed {
		if c := g.Card(id); c != nil {
			rv.Accessed = append(rv.Accessed, buildCardView(g, c, viewer))
		}
	}
	return rv
}

func buildPromptView(g *game.GameState, p *game.GamePrompt) *PromptView {
	pv := &PromptView{Kind: p.Kind.String(), Context: string(p.Context)}
	for _, b := range p.Buttons {
		pv.Buttons = append(pv.Buttons, b.Label)
	}
	if p.Selector != nil {
		sv := &SelectorView{Required: p.Selector.Validation.ExactlyCount}
		for _, id := range p.Selector.Unchosen {
			sv.Unchosen = append(sv.Unchosen, cardLabel(g, id))
		}
		for _, id := range p.Selector.Chosen {
			sv.Chosen = append(sv.Chosen, cardLabel(g, id))
		}
		pv.Selector = sv
	}
	if p.Browser != nil {
		for _, id := range p.Browser.Cards {
			pv.Browser = append(pv.Browser, cardLabel(g, id))
		}
	}
	if p.Rooms != nil {
		for _, room := range p.Rooms.ValidRooms {
			pv.Rooms = append(pv.Rooms, room.String())
		}
	}
	return pv
}

func cardLabel(g *game.GameState, id game.CardId) string {
	if c := g.Card(id); c != nil {
		return c.Name()
	}
	return fmt.Sprintf("card %v", id)
}
