package resource

import "fmt"

// Locator maps resource kinds to their definitions. It is configured once
// at startup.
type Locator struct {
	resolvable    map[Kind]ResolvableDefinition
	provisionable map[Kind]ProvisionableDefinition
}

// NewLocator creates a locator holding defs.
func NewLocator(defs ...Definition) *Locator {
	l := &Locator{
		resolvable:    make(map[Kind]ResolvableDefinition, len(defs)),
		provisionable: make(map[Kind]ProvisionableDefinition, len(defs)),
	}
	for _, def := range defs {
		l.resolvable[def.Kind()] = def
		l.provisionable[def.Kind()] = def
	}
	return l
}

// Resolvable returns the definition resolving kind.
func (l *Locator) Resolvable(kind Kind) (ResolvableDefinition, error) {
	def, ok := l.resolvable[kind]
	if !ok {
		return nil, fmt.Errorf("no resolvable definition registered for %q", kind)
	}
	return def, nil
}

// Provisionable returns the definition provisioning kind.
func (l *Locator) Provisionable(kind Kind) (ProvisionableDefinition, error) {
	def, ok := l.provisionable[kind]
	if !ok {
		return nil, fmt.Errorf("no provisionable definition registered for %q", kind)
	}
	return def, nil
}

// Len returns the number of registered kinds.
func (l *Locator) Len() int {
	return len(l.provisionable)
}
