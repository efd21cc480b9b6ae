// Package selection derives a subject's substitute persona and weapons from
// its handle and the current salt.
//
// Every derivation builds a fresh seedmix stream from (handle, salt), so the
// result depends only on those two values and the candidate pools. Reset
// re-rolls the salt and clears memoized persona indexes together.
package selection
