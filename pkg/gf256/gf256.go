// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-secretshare.
//
// go-secretshare is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package gf256

import "fmt"

const (
	// Order is the size of the multiplicative group of GF(256): all 255
	// elements except zero. It is also the largest element value.
	Order = 255

	// generator is the element whose powers enumerate every non-zero
	// element of the field exactly once.
	generator = 0x03

	// polynomial is the irreducible reducing polynomial
	// x^8 + x^4 + x^3 + x + 1 used for multiplication.
	polynomial = 0x11B
)

// GF is an element of GF(256). The zero value is the additive identity.
// Every byte value is a valid, distinct element; convert with GF(b) and
// back with Byte. Equality and ordering are native byte comparison, which
// has no algebraic meaning and exists only for deterministic iteration.
type GF byte

// Logarithm tables for the generator. logs[v-1] holds the discrete log of
// the non-zero element v, and ilogs[k] holds generator^k for k in [0,255).
// Written once below and never mutated, so concurrent reads need no locking.
var (
	logs  [Order]byte
	ilogs [Order]byte
)

func init() {
	x := GF(1)
	for i := 0; i < Order; i++ {
		ilogs[i] = byte(x)
		logs[x-1] = byte(i)

		// Multiply x by the generator: 3x = 2x + x, where doubling
		// shifts left and reduces by the field polynomial on overflow.
		d := uint16(x) << 1
		if d&0x100 != 0 {
			d ^= polynomial
		}
		x = GF(d) ^ x
	}
}

// Byte returns the raw byte representation of the element.
func (a GF) Byte() byte { return byte(a) }

// IsZero reports whether the element is the additive identity.
func (a GF) IsZero() bool { return a == 0 }

// String implements fmt.Stringer.
func (a GF) String() string { return fmt.Sprintf("GF(%d)", byte(a)) }

// Add returns a + b. Addition in a characteristic-2 field is XOR.
func (a GF) Add(b GF) GF { return a ^ b }

// Sub returns a - b, which is the same operation as addition.
func (a GF) Sub(b GF) GF { return a ^ b }

// Neg returns -a. Every element is its own additive inverse.
func (a GF) Neg() GF { return a }

// Mul returns a * b using the logarithm tables: the product of two non-zero
// elements is generator^((log a + log b) mod 255).
func (a GF) Mul(b GF) GF {
	if a == 0 || b == 0 {
		return 0
	}
	c := int(logs[a-1]) + int(logs[b-1])
	if c >= Order {
		c -= Order
	}
	return GF(ilogs[c])
}

// Div returns a / b. Dividing by zero returns ErrDivideByZero; a zero
// dividend with a non-zero divisor yields zero.
func (a GF) Div(b GF) (GF, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if a == 0 {
		return 0, nil
	}
	c := int(logs[a-1]) - int(logs[b-1])
	if c < 0 {
		c += Order
	}
	return GF(ilogs[c]), nil
}

// Log returns the discrete logarithm of a base the generator: the exponent
// k in [0,255) such that generator^k == a. Zero has no logarithm and
// returns ErrLogOfZero.
func (a GF) Log() (int, error) {
	if a == 0 {
		return 0, ErrLogOfZero
	}
	return int(logs[a-1]), nil
}

// logNZ is Log for callers that have already excluded zero.
func logNZ(a GF) int { return int(logs[a-1]) }

// Exp returns generator^k for any integer k, reducing k modulo the group
// order into [0,255). It is total and never fails.
func Exp(k int) GF {
	k %= Order
	if k < 0 {
		k += Order
	}
	return GF(ilogs[k])
}

// Pow returns a raised to the integer power b. The exponent may be negative
// when a is non-zero; raising zero to a non-positive power returns
// ErrZeroNegativePow. Pow(a, -1) is the multiplicative inverse of a.
func (a GF) Pow(b int) (GF, error) {
	if a == 0 {
		if b <= 0 {
			return 0, ErrZeroNegativePow
		}
		return 0, nil
	}
	b %= Order
	if b == 0 {
		return 1, nil
	}
	return Exp(b * int(logs[a-1])), nil
}
