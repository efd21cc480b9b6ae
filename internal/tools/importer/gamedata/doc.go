// Package gamedataimporter validates JSON dumps of the reference tables and
// imports them into the gamedata SQLite store.
//
// Each table lives in its own file named after the table (npc_base.json,
// item.json, ...) with the envelope
//
//	{"table": "item", "source": "client 7.0", "items": [...]}
//
// Missing optional files are skipped; a missing required table fails the run.
package gamedataimporter
