package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/riftwar-games/riftwar/internal/game"
)

// Render writes a text rendering of the view to w.
func Render(w io.Writer, v *GameView) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")

	opp := v.Opponent
	fmt.Fprintf(w, "║ %s  Mana: %s  Actions: %d  Score: %d  Hand: %d  Deck: %d\n",
		strings.ToUpper(opp.Side), manaLabel(opp), opp.ActionPoints, opp.Score,
		opp.HandCount, opp.DeckCount)
	renderStatusLine(w, opp)

	fmt.Fprintln(w, "║──────────────────────────────────────────────────────────────")
	renderBoard(w, v)
	fmt.Fprintln(w, "║──────────────────────────────────────────────────────────────")

	you := v.You
	fmt.Fprintf(w, "║ YOU (%s)  Mana: %s  Actions: %d  Score: %d  Deck: %d  Discard: %d\n",
		you.Side, manaLabel(you), you.ActionPoints, you.Score,
		you.DeckCount, len(you.Discard))
	renderStatusLine(w, you)
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")

	turnInfo := fmt.Sprintf("Turn %d (%s) | %s", v.Turn, v.TurnSide, v.Phase)
	if v.Winner != "" {
		turnInfo += " | Winner: " + v.Winner
	} else if v.IsYourTurn {
		turnInfo += " | Your turn"
	}
	fmt.Fprintln(w, turnInfo)

	if v.Raid != nil {
		line := "Raid on " + v.Raid.Target
		if v.Raid.Encounter != "" {
			line += " | Encountering " + v.Raid.Encounter
		}
		if len(v.Raid.Accessed) > 0 {
			line += " | Accessed: " + joinCards(v.Raid.Accessed)
		}
		fmt.Fprintln(w, line)
	}

	if len(you.Hand) > 0 {
		fmt.Fprintf(w, "\nHand: ")
		for i, c := range you.Hand {
			fmt.Fprintf(w, "[%d] %s  ", i+1, formatCard(c))
		}
		fmt.Fprintln(w)
	}
}

// RenderPrompt writes the pending decision with numbered choices.
func RenderPrompt(w io.Writer, p *PromptView) {
	if p == nil {
		return
	}
	header := p.Kind
	if p.Context != "" {
		header += " (" + p.Context + ")"
	}
	fmt.Fprintf(w, "\n%s:\n", header)
	for i, label := range p.Buttons {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, label)
	}
	if p.Selector != nil {
		fmt.Fprintf(w, "  choose exactly %d:\n", p.Selector.Required)
		for i, name := range p.Selector.Unchosen {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, name)
		}
		if len(p.Selector.Chosen) > 0 {
			fmt.Fprintf(w, "  chosen: %s\n", strings.Join(p.Selector.Chosen, ", "))
		}
	}
	for i, name := range p.Browser {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, name)
	}
	for i, room := range p.Rooms {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, room)
	}
}

// RenderAnimations writes one line per semantic update recorded by the last
// action.
func RenderAnimations(w io.Writer, tracker *game.AnimationTracker) {
	if tracker == nil {
		return
	}
	for _, step := range tracker.Steps {
		fmt.Fprintln(w, FormatAnimation(step))
	}
}

// FormatAnimation formats one update as a human-readable line, resolving card
// names against the snapshot the update was recorded with.
func FormatAnimation(step game.AnimationStep) string {
	g := step.Snapshot
	u := step.Update
	name := func(id game.CardId) string {
		if c := g.Card(id); c != nil && c.IsVisibleTo(id.Side.Opponent()) {
			return c.Name()
		}
		return "a hidden card"
	}
	switch u.Kind {
	case game.AnimStartTurn:
		return fmt.Sprintf("* %s's turn begins", u.Side)
	case game.AnimInitiateRaid:
		return fmt.Sprintf("* Raid on %s", u.Room)
	case game.AnimAccessSanctumCards:
		return fmt.Sprintf("* %d card(s) accessed from the Sanctum", len(u.Cards))
	case game.AnimCombatInteraction:
		return fmt.Sprintf("* %s strikes %s", name(u.Source), name(u.Target))
	case game.AnimScoreCard:
		return fmt.Sprintf("* %s scores %s", u.Side, name(u.Target))
	case game.AnimProgressRoom:
		return fmt.Sprintf("* %s progresses %s", u.Side, u.Room)
	case game.AnimSummonMinion:
		return fmt.Sprintf("* %s is summoned", name(u.Target))
	case game.AnimUnveilCard:
		return fmt.Sprintf("* %s is unveiled", name(u.Target))
	case game.AnimDrawCards:
		return fmt.Sprintf("* %s draws %d card(s)", u.Side, u.Amount)
	case game.AnimShuffleIntoDeck:
		return fmt.Sprintf("* %s shuffles %d card(s) into their deck", u.Side, len(u.Cards))
	case game.AnimDealDamage:
		return fmt.Sprintf("* %d damage dealt", u.Amount)
	case game.AnimRaidComplete:
		return fmt.Sprintf("* Raid on %s ends", u.Room)
	case game.AnimGameOver:
		return fmt.Sprintf("* Game over: %s wins", u.Winner)
	default:
		return fmt.Sprintf("* %s", u.Kind)
	}
}

func renderBoard(w io.Writer, v *GameView) {
	if len(v.Rooms) == 0 {
		fmt.Fprintln(w, "║ (no occupied rooms)")
	}
	for _, room := range v.Rooms {
		line := fmt.Sprintf("║ %-8s", room.Room)
		if len(room.Defenders) > 0 {
			line += " defenders: " + joinCards(room.Defenders)
		}
		if len(room.Occupants) > 0 {
			line += " occupants: " + joinCards(room.Occupants)
		}
		fmt.Fprintln(w, line)
	}
	var itemLines []string
	if len(v.Items.Artifacts) > 0 {
		itemLines = append(itemLines, "artifacts: "+joinCards(v.Items.Artifacts))
	}
	if len(v.Items.Evocations) > 0 {
		itemLines = append(itemLines, "evocations: "+joinCards(v.Items.Evocations))
	}
	if len(v.Items.Allies) > 0 {
		itemLines = append(itemLines, "allies: "+joinCards(v.Items.Allies))
	}
	for _, line := range itemLines {
		fmt.Fprintln(w, "║ "+line)
	}
}

func renderStatusLine(w io.Writer, p PlayerView) {
	var parts []string
	if p.RaidMana > 0 {
		parts = append(parts, fmt.Sprintf("raid mana: %d", p.RaidMana))
	}
	if p.Curses > 0 {
		parts = append(parts, fmt.Sprintf("curses: %d", p.Curses))
	}
	if p.Wounds > 0 {
		parts = append(parts, fmt.Sprintf("wounds: %d", p.Wounds))
	}
	if p.Leylines > 0 {
		parts = append(parts, fmt.Sprintf("leylines: %d", p.Leylines))
	}
	if len(parts) > 0 {
		fmt.Fprintln(w, "║   "+strings.Join(parts, "  "))
	}
}

func manaLabel(p PlayerView) string {
	if p.RaidMana > 0 {
		return fmt.Sprintf("%d+%d", p.Mana, p.RaidMana)
	}
	return fmt.Sprintf("%d", p.Mana)
}

func formatCard(c CardView) string {
	if c.Name == "" {
		return "[hidden]"
	}
	s := c.Name
	if c.FaceDown {
		s = "(" + s + ")"
	}
	if c.Progress > 0 {
		s += fmt.Sprintf(" p%d", c.Progress)
	}
	if c.StoredMana > 0 {
		s += fmt.Sprintf(" $%d", c.StoredMana)
	}
	return s
}

func joinCards(cards []CardView) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = formatCard(c)
	}
	return strings.Join(parts, ", ")
}
