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

// Share is one sample point of a set of hidden polynomials: an x-coordinate
// and one y-value per polynomial, all sampled at the same x. Shares passed
// to Interpolate together must have pairwise-distinct x-coordinates and
// equal-length y-vectors.
type Share struct {
	// X is the coordinate the polynomials were evaluated at
	X GF

	// Ys holds one evaluation per polynomial
	Ys []GF
}

// clone returns a copy of the share whose y-vector shares no memory with
// the original.
func (s Share) clone() Share {
	return Share{X: s.X, Ys: append([]GF(nil), s.Ys...)}
}

// Interpolate evaluates, at the coordinate destX, the unique
// degree-(n-1) polynomials determined by the n input shares: the returned
// share has X == destX and Ys[j] equal to the value at destX of the
// polynomial through the points {(s.X, s.Ys[j])} for every slot j.
//
// At least two shares are required, all with distinct x-coordinates and
// y-vectors of the same length. The returned share never aliases caller
// memory.
//
// The Lagrange basis coefficients are computed in the log domain: every
// coefficient shares the common factor prod(s.X - destX), so one pass sums
// its logarithm and each per-share coefficient follows from subtractions
// alone. This costs O(n*(n+m)) field operations for n shares of m values
// instead of the O(n^2*m) of the textbook formula.
func Interpolate(shares []Share, destX GF) (Share, error) {
	if len(shares) < 2 {
		return Share{}, ErrTooFewShares
	}
	width := len(shares[0].Ys)
	for _, s := range shares[1:] {
		if len(s.Ys) != width {
			return Share{}, ErrShareLength
		}
	}

	// a is the log of the product of (s.X - destX) over all shares. If any
	// factor is zero, destX is a sample point and that share is the answer.
	a := 0
	for _, s := range shares {
		d := s.X.Sub(destX)
		if d.IsZero() {
			return s.clone(), nil
		}
		a += logNZ(d)
	}

	r := Share{X: destX, Ys: make([]GF, width)}
	for i, s := range shares {
		// log of the Lagrange basis coefficient for s: divide the common
		// product by s's own factor and by every (s.X - t.X).
		b := a - logNZ(s.X.Sub(destX))
		for j, t := range shares {
			if j == i {
				continue
			}
			d := s.X.Sub(t.X)
			if d.IsZero() {
				return Share{}, ErrDuplicateShareX
			}
			b -= logNZ(d)
		}

		// Zero y-values contribute nothing and have no logarithm.
		for j, y := range s.Ys {
			if y.IsZero() {
				continue
			}
			r.Ys[j] = r.Ys[j].Add(Exp(b + logNZ(y)))
		}
	}

	return r, nil
}
