package eligibility

import "strings"

// KeyPrefix namespaces play-record keys, matching the campaign's
// original storage layout.
const KeyPrefix = "babyboss_played_"

// Store is the one-play-per-identity gate, keyed by KeyFor's output.
//
// HasPlayed reports whether a record exists for key and is
// side-effect-free. MarkPlayed is idempotent; a repeat write for the
// same key may overwrite or be ignored but never corrupts the stored
// card id. Neither surfaces storage failures: implementations fail
// open, treating a broken store as "not played" so it never blocks a
// legitimate visitor.
type Store interface {
	HasPlayed(key string) bool
	MarkPlayed(key, entryID string)
}

// KeyFor builds the storage key for a phone number.
func KeyFor(phone string) string {
	return KeyPrefix + NormalizePhone(phone)
}

// NormalizePhone strips separators so "091 234-5678" and "0912345678"
// gate the same identity. A leading + is kept.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
