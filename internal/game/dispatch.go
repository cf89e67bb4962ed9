package game

import "go.uber.org/zap"

// DelegateContext pairs a registered delegate with the scope it was
// registered under.
type DelegateContext struct {
	Scope    Scope
	Delegate *Delegate
}

// rebuildDelegateCache reindexes every delegate of every card by kind, so
// that firing an event scans only its own subscribers. The cache is derived
// state: it is rebuilt whenever a card is created or overwritten and after
// deserialization, and is never persisted.
//
// Registration order defines firing order: Covenant cards before Riftcaller
// cards, then card index, then ability index, then delegate order within the
// ability.
func (g *GameState) rebuildDelegateCache() {
	cache := make(map[DelegateKind][]DelegateContext)
	for _, side := range []Side{Covenant, Riftcaller} {
		for _, card := range g.Cards[side] {
			def := card.Definition()
			if def == nil {
				continue
			}
			meta := CardMetadata{Upgraded: card.Variant.Upgraded}
			for abilityIndex := range def.Abilities {
				ability := &def.Abilities[abilityIndex]
				scope := Scope{
					Ability:  AbilityId{Card: card.Id, Index: abilityIndex},
					Metadata: meta,
				}
				for i := range ability.Delegates {
					d := &ability.Delegates[i]
					cache[d.Kind] = append(cache[d.Kind], DelegateContext{Scope: scope, Delegate: d})
				}
			}
		}
	}
	g.delegateCache = cache
}

// delegates returns the subscribers for a kind, building the cache if a
// deserialized state has not been rebuilt yet.
func (g *GameState) delegates(kind DelegateKind) []DelegateContext {
	if g.delegateCache == nil {
		g.rebuildDelegateCache()
	}
	return g.delegateCache[kind]
}

// Fire invokes every event delegate subscribed to kind whose requirement
// accepts the payload, in registration order. The first mutation error
// aborts the broadcast.
func Fire(g *GameState, kind DelegateKind, data any) error {
	for _, ctx := range g.delegates(kind) {
		if ctx.Delegate.Event == nil {
			continue
		}
		if ctx.Delegate.Requirement != nil && !ctx.Delegate.Requirement(g, ctx.Scope, data) {
			continue
		}
		if err := ctx.Delegate.Event(g, ctx.Scope, data); err != nil {
			g.Logger().Warn("delegate event failed",
				zap.Stringer("ability", ctx.Scope.Ability),
				zap.Error(err))
			return err
		}
	}
	return nil
}

// QueryFold seeds a query with an initial answer and folds every matching
// query delegate's transformation over it, in registration order.
func QueryFold[T any](g *GameState, kind DelegateKind, data any, initial T) T {
	value := any(initial)
	for _, ctx := range g.delegates(kind) {
		if ctx.Delegate.Query == nil {
			continue
		}
		if ctx.Delegate.Requirement != nil && !ctx.Delegate.Requirement(g, ctx.Scope, data) {
			continue
		}
		value = ctx.Delegate.Query(g, ctx.Scope, data, value)
	}
	out, ok := value.(T)
	if !ok {
		g.Logger().Error("query delegate returned wrong type", zap.Int("kind", int(kind)))
		return initial
	}
	return out
}

// QueryBool folds a Flag query and resolves it.
func QueryBool(g *GameState, kind DelegateKind, data any, initial Flag) bool {
	return QueryFold(g, kind, data, initial).Bool()
}
