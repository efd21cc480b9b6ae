// Package namesupply keeps a queue of pre-generated names for every
// (race, clan, sex) bucket.
//
// The host's name generator returns the same name when it is called twice in
// one frame with identical arguments, so the queue asks it for at most one
// name per bucket per tick and drops a result equal to the newest queued name.
// Buckets fill up to a fixed depth (100, the most players the host tracks at
// once) and then pause. Initialised flips to true the first time every bucket
// is full and stays true.
//
// The host also unloads the name sheet shortly after login. OnLogin arms a
// timer and the first tick after the delay asks the host to load the sheet
// again, once per login.
package namesupply
