// Package jokes obtains dad jokes for personalization.
//
// Client talks to the icanhazdadjoke.com HTTP API: a keyword search whose
// first hit wins, and a random-joke endpoint used for blank keywords and for
// searches without matches. Every transport, status or decoding problem is
// reported as ErrLookupFailed so callers can decide how to degrade.
//
// FallbackPool is a small embedded list of jokes that callers use when the
// lookup service cannot be reached.
package jokes
