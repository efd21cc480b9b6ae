// Package gamedata defines the reference tables the substitution engine reads:
// NPC appearance rows, items, equip slot categories, jobs, races, tribes and
// the name sheet used by the host's name generator.
//
// Rows are plain values. A Snapshot groups every table; a nil table means the
// backing data was absent, which callers treat as a fatal load error.
package gamedata
