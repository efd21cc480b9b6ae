// Package identity maps real subject names to substitute names and keeps the
// mapping stable for the life of a session.
//
// Each name remembers the (race, clan, sex) it was last seen with. When a
// later lookup presents a conflicting known attribute, the cached substitute
// is discarded and a fresh one is drawn, so a substitute never outlives the
// attributes it was chosen for. Unknown attributes never invalidate and never
// overwrite a known value.
package identity
