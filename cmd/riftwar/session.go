package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/riftwar-games/riftwar/internal/display"
	"github.com/riftwar-games/riftwar/internal/game"
)

// Session drives one hot-seat game: both players share the terminal and the
// prompt alternates to whichever side holds priority.
type Session struct {
	Game *game.GameState
	In   io.Reader
	Out  io.Writer
}

func (s *Session) Run() error {
	scanner := bufio.NewScanner(s.In)
	fmt.Fprintln(s.Out, "Riftwar — type 'help' for commands.")
	for {
		side := s.Game.CurrentPriority()
		if side == nil {
			view := display.BuildGameView(s.Game, game.Riftcaller)
			display.Render(s.Out, view)
			return nil
		}
		view := display.BuildGameView(s.Game, *side)
		display.Render(s.Out, view)
		display.RenderPrompt(s.Out, view.Prompt)

		fmt.Fprintf(s.Out, "\n%s> ", side)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "quit":
			return nil
		case "help":
			s.printHelp()
			continue
		case "abilities":
			s.printAbilities(*side)
			continue
		}

		action, err := s.parse(*side, line)
		if err != nil {
			fmt.Fprintf(s.Out, "  %v\n", err)
			continue
		}
		if err := game.HandleAction(s.Game, *side, action); err != nil {
			fmt.Fprintf(s.Out, "  rejected: %v\n", err)
			continue
		}
		display.RenderAnimations(s.Out, s.Game.Animations)
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.Out, `Commands:
  keep | new            mulligan decision
  mana                  spend an action to gain 1 mana
  draw                  spend an action to draw a card
  spend                 burn an action point with no effect
  play N [ROOM]         play the Nth hand card, optionally into a room
  raid ROOM             begin a raid (Riftcaller)
  progress ROOM         progress a room's schemes (Covenant)
  summon NAME           unveil a face-down project (Covenant)
  curse                 remove a curse (Riftcaller)
  dispel NAME           dispel an opposing evocation (Covenant)
  abilities | use N     list / activate an ability
  choose N              answer a button prompt
  pick N | unpick N     move cards in a card selector
  submit                submit the card selector
  room ROOM             answer a room selector
  end | start           end your turn / start your next turn
  resign | quit         concede / leave
Rooms: vault, sanctum, crypt, a, b, c, d, e`)
}

func (s *Session) parse(side game.Side, line string) (game.Action, error) {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	rest := fields[1:]

	switch cmd {
	case "keep":
		return game.Action{Kind: game.ActionMulligan, Mulligan: game.MulliganKeep}, nil
	case "new", "mull":
		return game.Action{Kind: game.ActionMulligan, Mulligan: game.MulliganTakeNew}, nil
	case "mana":
		return game.Action{Kind: game.ActionGainMana}, nil
	case "draw":
		return game.Action{Kind: game.ActionDrawCard}, nil
	case "spend":
		return game.Action{Kind: game.ActionSpendActionPoint}, nil
	case "end":
		return game.Action{Kind: game.ActionEndTurn}, nil
	case "start":
		return game.Action{Kind: game.ActionStartTurn}, nil
	case "curse":
		return game.Action{Kind: game.ActionRemoveCurse}, nil
	case "submit":
		return game.Action{Kind: game.ActionSubmitCardSelector}, nil
	case "resign":
		return game.Action{Kind: game.ActionResign}, nil
	case "play":
		return s.parsePlay(side, rest)
	case "raid":
		room, err := parseRoom(rest)
		if err != nil {
			return game.Action{}, err
		}
		return game.Action{Kind: game.ActionInitiateRaid, Room: room}, nil
	case "progress":
		room, err := parseRoom(rest)
		if err != nil {
			return game.Action{}, err
		}
		return game.Action{Kind: game.ActionProgressRoom, Room: room}, nil
	case "room":
		room, err := parseRoom(rest)
		if err != nil {
			return game.Action{}, err
		}
		return game.Action{Kind: game.ActionSelectRoom, Room: room}, nil
	case "summon":
		id, err := s.findByName(side, strings.Join(rest, " "), game.CardTypeProject)
		if err != nil {
			return game.Action{}, err
		}
		return game.Action{Kind: game.ActionSummonProject, Card: id}, nil
	case "dispel":
		id, err := s.findByName(side.Opponent(), strings.Join(rest, " "), game.CardTypeEvocation)
		if err != nil {
			return game.Action{}, err
		}
		return game.Action{Kind: game.ActionDispelEvocation, Card: id}, nil
	case "use":
		n, err := parseIndex(rest)
		if err != nil {
			return game.Action{}, err
		}
		abilities := s.activatable(side)
		if n < 1 || n > len(abilities) {
			return game.Action{}, fmt.Errorf("no ability %d (try 'abilities')", n)
		}
		id := abilities[n-1]
		return game.Action{Kind: game.ActionActivateAbility, Ability: &id}, nil
	case "choose":
		n, err := parseIndex(rest)
		if err != nil {
			return game.Action{}, err
		}
		return game.Action{Kind: game.ActionPromptChoice, ChoiceIndex: n - 1}, nil
	case "pick", "unpick":
		return s.parsePick(side, cmd, rest)
	default:
		return game.Action{}, fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

// parsePlay picks the Nth card from the active play browser when one is
// pending, otherwise from the hand.
func (s *Session) parsePlay(side game.Side, rest []string) (game.Action, error) {
	if len(rest) == 0 {
		return game.Action{}, fmt.Errorf("usage: play N [ROOM]")
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil {
		return game.Action{}, fmt.Errorf("usage: play N [ROOM]")
	}
	var pool []game.CardId
	if p := s.Game.Player(side).Prompt(); p != nil && p.Browser != nil {
		pool = p.Browser.Cards
	} else {
		for _, c := range s.Game.Hand(side) {
			pool = append(pool, c.Id)
		}
	}
	if n < 1 || n > len(pool) {
		return game.Action{}, fmt.Errorf("no card %d", n)
	}
	target := game.NoTarget()
	if len(rest) > 1 {
		room, err := parseRoom(rest[1:])
		if err != nil {
			return game.Action{}, err
		}
		target = game.RoomTarget(room)
	}
	return game.Action{Kind: game.ActionPlayCard, Card: pool[n-1], Target: target}, nil
}

func (s *Session) parsePick(side game.Side, cmd string, rest []string) (game.Action, error) {
	n, err := parseIndex(rest)
	if err != nil {
		return game.Action{}, err
	}
	p := s.Game.Player(side).Prompt()
	if p == nil || p.Selector == nil {
		return game.Action{}, fmt.Errorf("no card selector pending")
	}
	pool := p.Selector.Unchosen
	if cmd == "unpick" {
		pool = p.Selector.Chosen
	}
	if n < 1 || n > len(pool) {
		return game.Action{}, fmt.Errorf("no card %d", n)
	}
	return game.Action{Kind: game.ActionMoveSelectorCard, Card: pool[n-1]}, nil
}

// findByName resolves a card a player can see by printed name.
func (s *Session) findByName(owner game.Side, name string, cardType game.CardType) (game.CardId, error) {
	if name == "" {
		return game.CardId{}, fmt.Errorf("card name required")
	}
	for _, c := range s.Game.Cards[owner] {
		if c.Definition() == nil || c.Definition().CardType != cardType {
			continue
		}
		if c.Position.InPlay() && strings.EqualFold(c.Name(), name) {
			return c.Id, nil
		}
	}
	return game.CardId{}, fmt.Errorf("no %v named %q in play", cardType, name)
}

// activatable lists the abilities the side may activate right now.
func (s *Session) activatable(side game.Side) []game.AbilityId {
	var out []game.AbilityId
	for _, c := range s.Game.Cards[side] {
		def := c.Definition()
		if def == nil {
			continue
		}
		for i, a := range def.Abilities {
			if a.Type != game.AbilityActivated {
				continue
			}
			id := game.AbilityId{Card: c.Id, Index: i}
			if game.CanActivateAbility(s.Game, side, id) {
				out = append(out, id)
			}
		}
	}
	return out
}

func (s *Session) printAbilities(side game.Side) {
	abilities := s.activatable(side)
	if len(abilities) == 0 {
		fmt.Fprintln(s.Out, "  no activatable abilities")
		return
	}
	for i, id := range abilities {
		c := s.Game.Card(id.Card)
		text := c.Definition().Abilities[id.Index].Text
		fmt.Fprintf(s.Out, "  [%d] %s: %s\n", i+1, c.Name(), text)
	}
}

func parseIndex(rest []string) (int, error) {
	if len(rest) == 0 {
		return 0, fmt.Errorf("number required")
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil {
		return 0, fmt.Errorf("number required, got %q", rest[0])
	}
	return n, nil
}

func parseRoom(rest []string) (game.RoomId, error) {
	if len(rest) == 0 {
		return 0, fmt.Errorf("room required")
	}
	switch strings.ToLower(rest[0]) {
	case "vault":
		return game.RoomVault, nil
	case "sanctum":
		return game.RoomSanctum, nil
	case "crypt":
		return game.RoomCrypt, nil
	case "a", "rooma":
		return game.RoomA, nil
	case "b", "roomb":
		return game.RoomB, nil
	case "c", "roomc":
		return game.RoomC, nil
	case "d", "roomd":
		return game.RoomD, nil
	case "e", "roome":
		return game.RoomE, nil
	default:
		return 0, fmt.Errorf("unknown room %q", rest[0])
	}
}
