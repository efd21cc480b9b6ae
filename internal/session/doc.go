// Package session owns one substitution session: the candidate pools, the
// salted selector, the name supply and the identity cache.
//
// A Session is opened once and shared by every hook call site. ResetAll
// starts a new epoch for both appearance and names.
package session
