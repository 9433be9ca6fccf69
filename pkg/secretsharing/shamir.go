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

package secretsharing

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"github.com/jeremyhahn/go-secretshare/pkg/gf256"
)

// ShareConfig configures secret sharing parameters.
type ShareConfig struct {
	Threshold   int // M - minimum shares needed to reconstruct
	TotalShares int // N - total shares to create
}

// Shamir splits and reconstructs secrets using Shamir's Secret Sharing
// Scheme over GF(256).
type Shamir struct {
	config *ShareConfig
}

// NewShamir creates a new Shamir instance with the given configuration.
// Returns an error if the configuration is invalid.
func NewShamir(config *ShareConfig) (*Shamir, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.Threshold < 2 {
		return nil, fmt.Errorf("threshold must be at least 2, got %d", config.Threshold)
	}
	if config.TotalShares < config.Threshold {
		return nil, fmt.Errorf("total shares (%d) must be >= threshold (%d)",
			config.TotalShares, config.Threshold)
	}
	if config.TotalShares > 255 {
		return nil, fmt.Errorf("total shares must be <= 255, got %d", config.TotalShares)
	}

	return &Shamir{
		config: config,
	}, nil
}

// Split divides a secret into N shares, requiring M to reconstruct. For
// every secret byte a fresh random polynomial of degree M-1 is generated
// with the secret byte as its constant term, and share i receives the
// polynomial evaluations at x = i.
func (s *Shamir) Split(secret []byte) ([]*Share, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("secret cannot be empty")
	}

	groupID := uuid.NewString()

	// One y-vector per share, one slot per secret byte.
	values := make([][]byte, s.config.TotalShares)
	for i := range values {
		values[i] = make([]byte, len(secret))
	}

	coeffs := make([]gf256.GF, s.config.Threshold)
	random := make([]byte, s.config.Threshold-1)

	for byteIdx, secretByte := range secret {
		coeffs[0] = gf256.GF(secretByte)
		if _, err := rand.Read(random); err != nil {
			return nil, fmt.Errorf("failed to generate random coefficients: %w", err)
		}
		for k, b := range random {
			coeffs[k+1] = gf256.GF(b)
		}

		for i := range values {
			x := gf256.GF(i + 1)
			values[i][byteIdx] = evalPolynomial(coeffs, x).Byte()
		}
	}

	shares := make([]*Share, s.config.TotalShares)
	for i, value := range values {
		shares[i] = &Share{
			GroupID:   groupID,
			Index:     i + 1, // x = 0 would leak the secret directly
			Threshold: s.config.Threshold,
			Total:     s.config.TotalShares,
			Value:     base64.StdEncoding.EncodeToString(value),
		}
	}

	return shares, nil
}

// Combine reconstructs the secret from M or more shares by interpolating
// the sharing polynomials at x = 0. Any subset of M shares from the
// original N can be used.
func (s *Shamir) Combine(shares []*Share) ([]byte, error) {
	if len(shares) < s.config.Threshold {
		return nil, fmt.Errorf("insufficient shares: need %d, got %d",
			s.config.Threshold, len(shares))
	}

	groupID := shares[0].GroupID
	for i, share := range shares {
		if err := share.Validate(); err != nil {
			return nil, fmt.Errorf("invalid share %d: %w", i, err)
		}
		if share.GroupID != groupID {
			return nil, fmt.Errorf("share %d belongs to group %s, not %s",
				i, share.GroupID, groupID)
		}
		if share.Threshold != s.config.Threshold {
			return nil, fmt.Errorf("share %d has threshold %d, expected %d",
				i, share.Threshold, s.config.Threshold)
		}
	}

	// The threshold determines the polynomials; extra shares add nothing.
	shares = shares[:s.config.Threshold]

	points := make([]gf256.Share, len(shares))
	width := -1
	for i, share := range shares {
		value, err := share.Bytes()
		if err != nil {
			return nil, fmt.Errorf("failed to decode share %d: %w", i, err)
		}
		if width == -1 {
			width = len(value)
		} else if len(value) != width {
			return nil, fmt.Errorf("share %d has %d bytes, expected %d",
				i, len(value), width)
		}

		ys := make([]gf256.GF, len(value))
		for j, b := range value {
			ys[j] = gf256.GF(b)
		}
		points[i] = gf256.Share{X: gf256.GF(share.Index), Ys: ys}
	}

	recovered, err := gf256.Interpolate(points, gf256.GF(0))
	if err != nil {
		return nil, fmt.Errorf("failed to interpolate shares: %w", err)
	}

	secret := make([]byte, len(recovered.Ys))
	for j, y := range recovered.Ys {
		secret[j] = y.Byte()
	}
	return secret, nil
}

// evalPolynomial evaluates a polynomial (constant term first) at point x
// in GF(256) using Horner's method.
func evalPolynomial(coeffs []gf256.GF, x gf256.GF) gf256.GF {
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = result.Mul(x).Add(coeffs[i])
	}
	return result
}
