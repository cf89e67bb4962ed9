package game

import "sync"

// CardRegistry maps card names to their definition constructors. Content
// packages append to it at startup, before any game is created.
var CardRegistry = map[string]func() *CardDefinition{}

// Register adds constructors to the registry. Panics on a duplicate name:
// two cards with the same name is a content authoring bug.
func Register(ctors map[string]func() *CardDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for name, ctor := range ctors {
		if _, dup := CardRegistry[name]; dup {
			panic("duplicate card registration: " + name)
		}
		CardRegistry[name] = ctor
	}
}

var (
	registryMu  sync.Mutex
	definitions sync.Map // CardVariant -> *CardDefinition
)

// Lookup resolves a variant to its shared immutable definition, or nil for
// an unknown name. Both printings of a card share one definition; upgraded
// behavior branches inside delegates via Scope.Upgraded.
func Lookup(variant CardVariant) *CardDefinition {
	if def, ok := definitions.Load(variant); ok {
		return def.(*CardDefinition)
	}
	registryMu.Lock()
	ctor, ok := CardRegistry[variant.Name]
	registryMu.Unlock()
	if !ok {
		return nil
	}
	def := ctor()
	actual, _ := definitions.LoadOrStore(variant, def)
	return actual.(*CardDefinition)
}
