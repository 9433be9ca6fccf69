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
	"encoding/base64"
	"fmt"
)

// Share represents a single piece of a split secret. Each share holds the
// evaluations of the per-byte sharing polynomials at x = Index, and can
// reconstruct the secret when combined with Threshold-1 other shares from
// the same group.
type Share struct {
	// GroupID identifies the split this share belongs to. All shares
	// produced by one Split call carry the same randomly generated ID.
	GroupID string `json:"group_id"`

	// Index is the share's x-coordinate (1 to Total)
	Index int `json:"index"`

	// Threshold is the minimum number of shares required to reconstruct (M)
	Threshold int `json:"threshold"`

	// Total is the total number of shares created (N)
	Total int `json:"total"`

	// Value is the share data, one byte per secret byte, base64 encoded
	// for JSON serialization
	Value string `json:"value"`
}

// Bytes returns the raw share value.
func (s *Share) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(s.Value)
}

// String returns a string representation of the share for debugging. The
// share value itself is not included.
func (s *Share) String() string {
	return fmt.Sprintf("Share{Group: %s, Index: %d, Threshold: %d/%d}",
		s.GroupID, s.Index, s.Threshold, s.Total)
}

// Validate checks if the share has valid parameters.
func (s *Share) Validate() error {
	if s.GroupID == "" {
		return fmt.Errorf("share group ID is empty")
	}
	if s.Index < 1 {
		return fmt.Errorf("invalid share index: %d (must be >= 1)", s.Index)
	}
	if s.Threshold < 2 {
		return fmt.Errorf("invalid threshold: %d (must be >= 2)", s.Threshold)
	}
	if s.Total < s.Threshold {
		return fmt.Errorf("invalid total: %d (must be >= threshold %d)", s.Total, s.Threshold)
	}
	if s.Total > 255 {
		return fmt.Errorf("invalid total: %d (must be <= 255)", s.Total)
	}
	if s.Index > s.Total {
		return fmt.Errorf("invalid share index: %d (must be <= total %d)", s.Index, s.Total)
	}
	if s.Value == "" {
		return fmt.Errorf("share value is empty")
	}
	if _, err := s.Bytes(); err != nil {
		return fmt.Errorf("share value is not valid base64: %w", err)
	}
	return nil
}
