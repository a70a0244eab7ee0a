// Package deck defines the core domain records of VerseDeck: verses,
// packs, per-verse memory health, and reminders.
//
// A pack is an ordered collection of verses reviewed together. Each verse
// carries a memory-health score in [0, 1] that is nudged up and down by
// review grades. Reminders attach a recurring time-of-day schedule to a
// pack.
//
// The package holds no persistence or presentation logic; pkg/store
// persists these records and internal/cli renders them.
package deck
