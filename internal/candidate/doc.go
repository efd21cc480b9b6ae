// Package candidate loads and filters the pools that substitute identities are
// drawn from.
//
// Load reads the reference tables once and keeps:
//
//   - the candidate personas: humanoid NPC rows that use the standard model,
//     wear both body and leg models, and are not well-known story characters;
//   - the per-job weapon pools, built from a job capability table resolved
//     once at load time, with unique items removed;
//   - the personal subset: candidates matching the local user's sex, race and
//     tribe preference masks.
//
// Pools are replaced wholesale on reload and never mutated in place, so a
// slice returned by an accessor stays valid after a refresh.
package candidate
