package engine

import "math/rand/v2"

// referenceAlphabet is the set of symbols a booking reference is
// drawn from: uppercase letters and digits, 36 symbols, giving
// 36^8 possible references at the fixed length of eight.
const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReferenceLength is the fixed length of a booking reference.
const ReferenceLength = 8

// newReference draws references uniformly from the alphabet until one
// is found that is not already a ledger key.  With the ledger bounded
// by the seat count and a space of ~2.8e12 codes, retries are
// vanishingly rare; the loop exists so a collision can never leak a
// live reference.  Caller must hold e.mu.
func (e *Engine) newReference() string {
    buf := make([]byte, ReferenceLength)
    for {
        for i := range buf {
            buf[i] = referenceAlphabet[rand.IntN(len(referenceAlphabet))]
        }
        ref := string(buf)
        if _, exists := e.ledger[ref]; !exists {
            return ref
        }
    }
}
