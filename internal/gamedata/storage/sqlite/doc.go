// Package sqlite stores the gamedata reference tables in SQLite.
package sqlite
