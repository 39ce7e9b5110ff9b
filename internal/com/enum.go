package com

import (
	"fmt"
	"strings"
)

// IntEnum is an enumeration whose external identifier is an integer.
type IntEnum interface {
	SapID() int
}

// StringEnum is an enumeration whose external identifier is a string.
type StringEnum interface {
	SapID() string
}

// Enum is the constraint satisfied by every enumeration member type.
type Enum[ID comparable] interface {
	comparable
	SapID() ID
}

// EnumTable resolves external identifiers and symbolic names back to
// enumeration members.
type EnumTable[ID comparable, E Enum[ID]] struct {
	name    string
	members []E
	byID    map[ID]E
}

// NewEnumTable indexes members by identifier. It panics on a duplicate
// identifier, which is a programming error in the member list.
func NewEnumTable[ID comparable, E Enum[ID]](name string, members ...E) *EnumTable[ID, E] {
	t := &EnumTable[ID, E]{
		name:    name,
		members: members,
		byID:    make(map[ID]E, len(members)),
	}
	for _, m := range members {
		id := m.SapID()
		if _, dup := t.byID[id]; dup {
			panic(fmt.Sprintf("com: %s: duplicate identifier %v", name, id))
		}
		t.byID[id] = m
	}
	return t
}

func (t *EnumTable[ID, E]) Name() string { return t.name }

// Lookup returns the member with the given identifier.
func (t *EnumTable[ID, E]) Lookup(id ID) (E, error) {
	m, ok := t.byID[id]
	if !ok {
		var zero E
		return zero, &UnknownEnumIdentifierError{Enum: t.name, ID: id}
	}
	return m, nil
}

// Members returns the members in declaration order.
func (t *EnumTable[ID, E]) Members() []E {
	return append([]E(nil), t.members...)
}

// Parse accepts a member's symbolic name (case-insensitive) or the textual
// form of its identifier.
func (t *EnumTable[ID, E]) Parse(s string) (E, error) {
	s = strings.TrimSpace(s)
	for _, m := range t.members {
		if strings.EqualFold(fmt.Sprint(m), s) || fmt.Sprint(m.SapID()) == s {
			return m, nil
		}
	}
	var zero E
	return zero, &UnknownEnumIdentifierError{Enum: t.name, ID: s}
}
