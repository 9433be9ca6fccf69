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

// Package gf256 implements arithmetic over the finite field GF(256) and
// Lagrange interpolation over that field.
//
// Each field element is a single byte. Multiplication is polynomial
// multiplication modulo the irreducible polynomial x^8 + x^4 + x^3 + x + 1
// (0x11B, the AES polynomial), and addition is XOR. The 255 non-zero
// elements form a cyclic multiplicative group generated by GF(3); a pair of
// precomputed logarithm tables for that generator gives every multiplicative
// operation a constant cost.
//
// # Field Arithmetic
//
//	a := gf256.GF(0x53)
//	b := gf256.GF(0xCA)
//	sum := a.Add(b)      // XOR
//	prod := a.Mul(b)     // table lookup
//	quot, err := prod.Div(b)
//
// The only operations that can fail are division by zero, the logarithm of
// zero, and raising zero to a non-positive power. These are contract
// violations reported as sentinel errors; callers are expected to prevent
// them by construction.
//
// # Interpolation
//
// A Share pairs one x-coordinate with a vector of y-values sampled from one
// or more hidden polynomials. Interpolate evaluates those polynomials at any
// target coordinate given enough shares:
//
//	recovered, err := gf256.Interpolate(shares, gf256.GF(0))
//
// This is the arithmetic core used by threshold secret sharing: splitting a
// secret produces shares of random polynomials whose constant terms are the
// secret bytes, and interpolating at x=0 recovers them.
//
// # Concurrency
//
// The package holds no mutable state after initialization. The logarithm
// tables are written once during init and only read afterwards, so all
// operations are safe for concurrent use without locking.
package gf256
