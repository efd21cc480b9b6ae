// Package preferences holds the user's substitution settings and persists
// them as YAML.
//
// The settings decide which subjects are obscured (self, party, others) and
// which personas the local user may be shown as. The mask fields use the
// same bit layout as candidate.PreferenceMask.
package preferences
