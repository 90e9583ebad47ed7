package event

import "strings"

// Modifiers is the set of modifier keys held while an event was produced.
// The zero value is the empty set.
type Modifiers struct {
	data uint32
}

// NewModifiers returns the set containing exactly keys.
func NewModifiers(keys ...ModifierKey) Modifiers {
	var m Modifiers
	for _, k := range keys {
		m.Add(k)
	}
	return m
}

// Empty reports whether no modifier key is set.
func (m Modifiers) Empty() bool { return m.data == 0 }

// Has reports whether modifier is set, regardless of other keys.
func (m Modifiers) Has(modifier ModifierKey) bool { return m.data&uint32(modifier) != 0 }

// Is reports whether exactly the given modifiers are set and nothing else.
// Is() matches only the empty set.
func (m Modifiers) Is(modifiers ...ModifierKey) bool {
	var d uint32
	for _, mod := range modifiers {
		d |= uint32(mod)
	}
	return m.data == d
}

func (m *Modifiers) Add(modifier ModifierKey)    { m.data |= uint32(modifier) }
func (m *Modifiers) Remove(modifier ModifierKey) { m.data &^= uint32(modifier) }
func (m *Modifiers) Clear()                      { m.data = 0 }

// Set replaces the whole set with the single modifier.
func (m *Modifiers) Set(modifier ModifierKey) { m.data = uint32(modifier) }

// Keys returns the set modifier keys in bit order.
func (m Modifiers) Keys() []ModifierKey {
	var keys []ModifierKey
	for _, k := range modifierKeyNames {
		if m.Has(k.key) {
			keys = append(keys, k.key)
		}
	}
	return keys
}

func (m Modifiers) String() string {
	if m.Empty() {
		return "None"
	}
	u := []string{}
	for _, k := range m.Keys() {
		u = append(u, k.String())
	}
	return strings.Join(u, "+")
}
