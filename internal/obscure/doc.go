// Package obscure applies substitutes to what the host is about to show.
//
// The host integration layer adapts its characters to HostEntityAccessor and
// calls into an Obscurer from its hook points: character initialisation,
// equipment slot updates, nameplates and free text. The Obscurer asks the
// substitution session for personas and names and decides, from the user's
// preferences, which subjects are affected.
package obscure
