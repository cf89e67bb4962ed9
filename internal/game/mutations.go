package game

import "go.uber.org/zap"

// Low-level state mutations. Everything that changes a GameState funnels
// through these so that delegate events, history records and animations stay
// consistent no matter which action triggered the change.

// MoveCard moves a card to a new position, stamping a fresh sorting key and
// firing move-related events. Entering and leaving play maintain the card's
// derived state (counters, visibility, LastEnteredPlay).
func MoveCard(g *GameState, id CardId, to Position) error {
	c := g.Card(id)
	if err := verify(c != nil, "move: unknown card %v", id); err != nil {
		return err
	}
	from := c.Position
	if from == to {
		return nil
	}
	moveCardInternal(g, c, to)

	if !from.InPlay() && to.InPlay() {
		c.LastEnteredPlay = g.Info.Turn.Number
		if err := Fire(g, OnEnterArena, id); err != nil {
			return err
		}
	}
	if from.InPlay() && !to.InPlay() {
		c.clearCounters()
		c.AbilityState = nil
	}
	if to.Kind == PositionDiscardPile {
		if err := Fire(g, OnMoveToDiscardPile, id); err != nil {
			return err
		}
	}
	if err := Fire(g, OnMoveCard, MoveCardEvent{Card: id, From: from, To: to}); err != nil {
		return err
	}
	if to.Kind == PositionRoom && to.Location == RoomDefenders {
		return enforceDefenderCap(g, to.Room)
	}
	return nil
}

// moveCardInternal repositions a card without firing events. Used for
// bookkeeping moves that must not be observable, like promoting cards from
// the unknown deck section to the known top.
func moveCardInternal(g *GameState, c *CardState, to Position) {
	c.Position = to
	c.SortingKey = g.nextSortingKey()
	applyZoneVisibility(g, c)
}

// applyZoneVisibility maintains the facing/visibility invariants of the
// destination zone.
func applyZoneVisibility(g *GameState, c *CardState) {
	switch c.Position.Kind {
	case PositionDeckUnknown:
		c.FaceUp = false
		c.RevealedTo = [2]bool{}
	case PositionDeckTop:
		c.FaceUp = false
	case PositionHand:
		c.FaceUp = false
		c.SetRevealedTo(c.Id.Side, true)
	case PositionDiscardPile:
		// Both discard piles are public.
		c.FaceUp = true
		c.RevealedTo = [2]bool{true, true}
	case PositionScored, PositionScoring:
		c.FaceUp = true
		c.RevealedTo = [2]bool{true, true}
	}
}

// enforceDefenderCap discards the oldest defender when a room exceeds the
// defender limit. The interactive play path asks the Covenant first; this
// handles card effects that move minions without a decision point.
func enforceDefenderCap(g *GameState, room RoomId) error {
	defenders := g.Defenders(room)
	if len(defenders) <= MaximumMinionsInRoom {
		return nil
	}
	oldest := defenders[0]
	g.Logger().Debug("defender limit exceeded, discarding oldest",
		zap.Stringer("room", room), zap.String("card", oldest.Name()))
	return DiscardCard(g, oldest.Id)
}

// RealizeTopOfDeck materializes the top n cards of a deck, promoting random
// cards from the unknown section as needed, and returns them topmost first.
// Already-known top cards stay in order, so realizing is idempotent.
func RealizeTopOfDeck(g *GameState, side Side, n int) ([]CardId, error) {
	top := g.DeckTop(side)
	for len(top) < n {
		unknown := g.DeckUnknown(side)
		if len(unknown) == 0 {
			break
		}
		pick := unknown[g.Rng.Intn(len(unknown))]
		// Insert beneath the existing known cards: restamp the known top so
		// it keeps its relative order above the promoted card.
		moveCardInternal(g, pick, InDeckTop(side))
		for _, t := range top {
			moveCardInternal(g, t, t.Position)
		}
		top = g.DeckTop(side)
	}
	if len(top) > n {
		top = top[len(top)-n:]
	}
	out := make([]CardId, 0, len(top))
	for i := len(top) - 1; i >= 0; i-- {
		out = append(out, top[i].Id)
	}
	return out, nil
}

// DrawCards draws n cards for side. A deck holding fewer than n cards loses
// the game immediately and nothing is drawn.
func DrawCards(g *GameState, side Side, n int, initiator InitiatedBy) error {
	if len(g.DeckUnknown(side))+len(g.DeckTop(side)) < n {
		g.Logger().Info("deck exhausted, game over",
			zap.Stringer("side", side), zap.Int("draw", n))
		return GameOver(g, side.Opponent())
	}
	var drawn []CardId
	for i := 0; i < n; i++ {
		top, err := RealizeTopOfDeck(g, side, 1)
		if err != nil {
			return err
		}
		if len(top) == 0 {
			return verify(false, "draw: deck emptied mid-draw for %v", side)
		}
		id := top[0]
		if err := MoveCard(g, id, InHand(side)); err != nil {
			return err
		}
		g.pushHistory(HistoryEvent{Kind: HistoryDrewCard, Side: side, Card: id})
		if err := Fire(g, OnDrawCard, id); err != nil {
			return err
		}
		drawn = append(drawn, id)
		if g.IsGameOver() {
			break
		}
	}
	if len(drawn) > 0 {
		g.addAnimation(GameAnimation{Kind: AnimDrawCards, Side: side, Cards: drawn})
	}
	return nil
}

// ShuffleIntoDeck moves the given cards into the unknown deck section. Any
// realized deck-top cards of the same side also lose their known order.
func ShuffleIntoDeck(g *GameState, side Side, cards []CardId) error {
	for _, id := range cards {
		c := g.Card(id)
		if err := verify(c != nil, "shuffle: unknown card %v", id); err != nil {
			return err
		}
		if err := MoveCard(g, id, InDeckUnknown(side)); err != nil {
			return err
		}
	}
	for _, c := range g.DeckTop(side) {
		moveCardInternal(g, c, InDeckUnknown(side))
	}
	g.addAnimation(GameAnimation{Kind: AnimShuffleIntoDeck, Side: side, Cards: cards})
	return nil
}

// SpendActionPoints deducts action points.
func SpendActionPoints(g *GameState, side Side, amount int) error {
	p := g.Player(side)
	if p.ActionPoints < amount {
		return ErrInsufficientActions
	}
	p.ActionPoints -= amount
	return nil
}

// GainActionPoints adds action points.
func GainActionPoints(g *GameState, side Side, amount int) {
	g.Player(side).ActionPoints += amount
}

// AddPowerCharges adds charge counters to an in-play card.
func AddPowerCharges(g *GameState, id CardId, amount int) error {
	c := g.Card(id)
	if err := verify(c != nil, "charges: unknown card %v", id); err != nil {
		return err
	}
	c.PowerCharges += amount
	return nil
}

// ScorePoints awards points and ends the game if the winning total is
// reached.
func ScorePoints(g *GameState, side Side, amount int) error {
	p := g.Player(side)
	p.Score += amount
	if p.Score >= PointsToWin {
		return GameOver(g, side)
	}
	return nil
}

// GameOver ends the game with a winner. All further actions become illegal.
func GameOver(g *GameState, winner Side) error {
	if g.IsGameOver() {
		return nil
	}
	g.Info.Phase = PhaseGameOver
	w := winner
	g.Info.Winner = &w
	g.Logger().Info("game over", zap.Stringer("winner", winner))
	g.addAnimation(GameAnimation{Kind: AnimGameOver, Winner: winner})
	return nil
}

// TurnFaceUp flips a card face-up, revealing it to both players.
func TurnFaceUp(g *GameState, id CardId) error {
	c := g.Card(id)
	if err := verify(c != nil, "turn face up: unknown card %v", id); err != nil {
		return err
	}
	if c.FaceUp {
		return nil
	}
	wasVisible := c.IsVisibleTo(id.Side.Opponent())
	c.FaceUp = true
	c.RevealedTo = [2]bool{true, true}
	if !wasVisible {
		return Fire(g, OnCardRevealed, id)
	}
	return nil
}

// RevealCardTo reveals a card's face to one side without flipping it.
func RevealCardTo(g *GameState, id CardId, side Side) error {
	c := g.Card(id)
	if err := verify(c != nil, "reveal: unknown card %v", id); err != nil {
		return err
	}
	if c.IsVisibleTo(side) {
		return nil
	}
	c.SetRevealedTo(side, true)
	if side == id.Side.Opponent() {
		return Fire(g, OnCardRevealed, id)
	}
	return nil
}

// CostMode selects whether an operation pays the card's printed costs.
// Card effects summon with IgnoreCosts; the normal game flow pays.
type CostMode int

const (
	PayCosts CostMode = iota
	IgnoreCosts
)

// SummonMinion flips a face-down minion face-up, paying its summon costs
// under PayCosts. The caller is responsible for legality; this pays and
// fires.
func SummonMinion(g *GameState, id CardId, initiator InitiatedBy, costs CostMode) error {
	c := g.Card(id)
	if err := verify(c != nil && !c.FaceUp, "summon: invalid minion %v", id); err != nil {
		return err
	}
	if costs == PayCosts {
		if err := paySummonCost(g, id); err != nil {
			return err
		}
	}
	if err := TurnFaceUp(g, id); err != nil {
		return err
	}
	g.pushHistory(HistoryEvent{Kind: HistoryMinionSummoned, Side: Covenant, Card: id})
	g.addAnimation(GameAnimation{Kind: AnimSummonMinion, Source: id})
	return Fire(g, OnSummonMinion, SummonEvent{Card: id, Initiator: initiator})
}

// SummonProject unveils a face-down project, paying its costs.
func SummonProject(g *GameState, id CardId, initiator InitiatedBy) error {
	c := g.Card(id)
	if err := verify(c != nil && !c.FaceUp, "unveil: invalid project %v", id); err != nil {
		return err
	}
	if err := paySummonCost(g, id); err != nil {
		return err
	}
	if err := TurnFaceUp(g, id); err != nil {
		return err
	}
	g.addAnimation(GameAnimation{Kind: AnimUnveilCard, Source: id})
	return Fire(g, OnSummonProject, SummonEvent{Card: id, Initiator: initiator})
}

func paySummonCost(g *GameState, id CardId) error {
	mana := ManaCostFor(g, id)
	if err := verify(mana != nil, "summon: card %v has no mana cost", id); err != nil {
		return err
	}
	if err := SpendMana(g, Covenant, PayForSummon, *mana); err != nil {
		return err
	}
	if custom := g.Card(id).Definition().Cost.Custom; custom != nil && custom.Pay != nil {
		return custom.Pay(g, id)
	}
	return nil
}

// DiscardCard moves a card to its owner's discard pile, firing discard
// events.
func DiscardCard(g *GameState, id CardId) error {
	if err := MoveCard(g, id, InDiscardPile(id.Side)); err != nil {
		return err
	}
	return Fire(g, OnDiscardCard, id)
}

// SacrificeCard discards a card its owner controls in play.
func SacrificeCard(g *GameState, id CardId) error {
	c := g.Card(id)
	if err := verify(c != nil && c.Position.InPlay(), "sacrifice: card %v not in play", id); err != nil {
		return err
	}
	if err := DiscardCard(g, id); err != nil {
		return err
	}
	g.pushHistory(HistoryEvent{Kind: HistoryCardSacrificed, Side: id.Side, Card: id})
	return Fire(g, OnCardSacrificed, id)
}

// DestroyCard removes a card from play to its owner's discard pile via a
// card ability, honoring destruction protection.
func DestroyCard(g *GameState, id CardId) error {
	if !CanAbilityDestroyCard(g, id) {
		return nil
	}
	return DiscardCard(g, id)
}

// DealDamage discards cards at random from the Riftcaller's hand. Damage in
// excess of hand size loses the game.
func DealDamage(g *GameState, source AbilityId, amount int) error {
	ev := &DealDamageEvent{Source: source, Amount: amount}
	if err := Fire(g, OnWillDealDamage, ev); err != nil {
		return err
	}
	for i := 0; i < ev.Amount; i++ {
		hand := g.Hand(Riftcaller)
		if len(hand) == 0 {
			g.Logger().Info("lethal damage, game over", zap.Int("amount", ev.Amount))
			return GameOver(g, Covenant)
		}
		pick := hand[g.Rng.Intn(len(hand))]
		if err := DiscardCard(g, pick.Id); err != nil {
			return err
		}
		ev.Discarded = append(ev.Discarded, pick.Id)
	}
	g.pushHistory(HistoryEvent{
		Kind: HistoryDealtDamage, Side: Riftcaller,
		Card: source.Card, Amount: ev.Amount,
	})
	g.addAnimation(GameAnimation{
		Kind: AnimDealDamage, Source: source.Card,
		Cards: ev.Discarded, Amount: ev.Amount,
	})
	return Fire(g, OnDealtDamage, ev)
}

// GiveCurses adds curses to the Riftcaller.
func GiveCurses(g *GameState, quantity int) error {
	g.Player(Riftcaller).Curses += quantity
	g.pushHistory(HistoryEvent{Kind: HistoryCursesReceived, Side: Riftcaller, Amount: quantity})
	return Fire(g, OnCursesReceived, CursesReceivedEvent{Quantity: quantity})
}

// RemoveCurses removes up to quantity curses from the Riftcaller.
func RemoveCurses(g *GameState, quantity int) {
	p := g.Player(Riftcaller)
	p.Curses -= quantity
	if p.Curses < 0 {
		p.Curses = 0
	}
}

// GiveWounds adds wounds to the Riftcaller, lowering their maximum hand
// size.
func GiveWounds(g *GameState, quantity int) {
	g.Player(Riftcaller).Wounds += quantity
}

// GiveLeylines grants leylines; each produces a mana at the start of the
// Riftcaller's turn.
func GiveLeylines(g *GameState, quantity int) {
	g.Player(Riftcaller).Leylines += quantity
}

// RemoveLeylines removes up to quantity leylines.
func RemoveLeylines(g *GameState, quantity int) {
	p := g.Player(Riftcaller)
	p.Leylines -= quantity
	if p.Leylines < 0 {
		p.Leylines = 0
	}
}

// AddStoredMana places mana on a card.
func AddStoredMana(g *GameState, id CardId, amount int) error {
	c := g.Card(id)
	if err := verify(c != nil, "store mana: unknown card %v", id); err != nil {
		return err
	}
	c.StoredMana += amount
	return nil
}

// TakeStoredMana transfers up to amount stored mana from a card to its
// owner and returns the quantity taken.
func TakeStoredMana(g *GameState, id CardId, amount int) (int, error) {
	c := g.Card(id)
	if err := verify(c != nil, "take mana: unknown card %v", id); err != nil {
		return 0, err
	}
	taken := amount
	if taken > c.StoredMana {
		taken = c.StoredMana
	}
	c.StoredMana -= taken
	GainMana(g, id.Side, taken)
	if taken > 0 {
		if err := Fire(g, OnStoredManaTaken, StoredManaEvent{Card: id, Amount: taken}); err != nil {
			return taken, err
		}
	}
	return taken, nil
}

// AddProgress adds progress counters to a card.
func AddProgress(g *GameState, id CardId, amount int) error {
	c := g.Card(id)
	if err := verify(c != nil, "progress: unknown card %v", id); err != nil {
		return err
	}
	c.Progress += amount
	return nil
}

// CovenantScoreCard scores a scheme for the Covenant: the card moves to the
// scored zone face-up, points are awarded and scoring events fire.
func CovenantScoreCard(g *GameState, id CardId) error {
	points := SchemePointsFor(g, id)
	if err := verify(points != nil, "score: card %v has no scheme points", id); err != nil {
		return err
	}
	if err := TurnFaceUp(g, id); err != nil {
		return err
	}
	if err := MoveCard(g, id, InScored(Covenant)); err != nil {
		return err
	}
	g.pushHistory(HistoryEvent{Kind: HistoryScoredCard, Side: Covenant, Card: id})
	g.addAnimation(GameAnimation{Kind: AnimScoreCard, Side: Covenant, Source: id})
	ev := ScoreEvent{Card: id, Side: Covenant, Points: points.Points}
	if err := Fire(g, OnCovenantScoreCard, ev); err != nil {
		return err
	}
	if err := Fire(g, OnScoreCard, ev); err != nil {
		return err
	}
	return ScorePoints(g, Covenant, points.Points)
}

// CreateAndAddCard mints a new card of the given variant at a position and
// returns its id. The delegate cache is invalidated so the new card's
// abilities take effect immediately.
func CreateAndAddCard(g *GameState, variant CardVariant, owner Side, pos Position) (CardId, error) {
	def := Lookup(variant)
	if err := verify(def != nil, "create: unknown variant %q", variant.Name); err != nil {
		return CardId{}, err
	}
	id := CardId{Side: owner, Index: len(g.Cards[owner])}
	c := &CardState{
		Id:         id,
		Variant:    variant,
		Position:   pos,
		SortingKey: g.nextSortingKey(),
	}
	applyZoneVisibility(g, c)
	g.Cards[owner] = append(g.Cards[owner], c)
	g.delegateCache = nil
	return id, nil
}

// OverwriteCard transmutes an existing card into a different variant,
// resetting its instance state but keeping its identity and position.
func OverwriteCard(g *GameState, id CardId, variant CardVariant) error {
	c := g.Card(id)
	if err := verify(c != nil, "overwrite: unknown card %v", id); err != nil {
		return err
	}
	if err := verify(Lookup(variant) != nil, "overwrite: unknown variant %q", variant.Name); err != nil {
		return err
	}
	c.Variant = variant
	c.def = nil
	c.clearCounters()
	c.AbilityState = nil
	c.Progress = 0
	g.delegateCache = nil
	return nil
}
