// Package channel derives chat channel identities deterministically from the
// participant pair, so the same two parties always resolve to the same channel
// without a lookup round-trip.
package channel

// ID composes a channel identity from two participant ids. The composition is
// order-independent: ID(a, b) == ID(b, a).
func ID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}
