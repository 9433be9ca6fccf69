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

import "errors"

var (
	// ErrDivideByZero is returned when dividing by the zero element
	ErrDivideByZero = errors.New("gf256: division by zero")

	// ErrLogOfZero is returned when taking the discrete logarithm of zero
	ErrLogOfZero = errors.New("gf256: logarithm of zero")

	// ErrZeroNegativePow is returned when raising zero to a non-positive power
	ErrZeroNegativePow = errors.New("gf256: zero base requires a positive exponent")

	// ErrTooFewShares is returned when interpolating fewer than two shares
	ErrTooFewShares = errors.New("gf256: at least two shares are required")

	// ErrShareLength is returned when shares carry y-vectors of different lengths
	ErrShareLength = errors.New("gf256: shares have mismatched y-value lengths")

	// ErrDuplicateShareX is returned when two shares carry the same x-coordinate
	ErrDuplicateShareX = errors.New("gf256: duplicate share x-coordinate")
)
