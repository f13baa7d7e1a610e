// Package reflector implements the Umkehrwalze: a fixed wiring that pairs
// the 26 contacts and sends the signal back through the rotor stack.
//
// A reflector has no position, no ring setting and never steps. Its wiring
// must be an involution without fixed points; New enforces this, which is
// what makes the whole machine reciprocal and guarantees that no letter
// enciphers to itself.
//
// Errors (sentinel): ErrBadWiring, ErrNotInvolution.
package reflector
