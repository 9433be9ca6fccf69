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

// Package secretsharing implements Shamir's Secret Sharing Scheme on top of
// the gf256 arithmetic core.
//
// A secret is divided into N shares such that any M shares (the threshold)
// reconstruct it, while M-1 or fewer shares reveal no information. Each
// secret byte becomes the constant term of a random polynomial of degree
// M-1 over GF(256):
//
//	p(x) = a0 + a1*x + a2*x^2 + ... + a(M-1)*x^(M-1)
//
// Share i carries the evaluations of every per-byte polynomial at x = i.
// Reconstruction interpolates the polynomials at x = 0 with
// gf256.Interpolate, recovering the constant terms.
//
// # Usage
//
//	shamir, err := secretsharing.NewShamir(&secretsharing.ShareConfig{
//	    Threshold:   3,
//	    TotalShares: 5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shares, err := shamir.Split([]byte("my secret data"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Any 3 of the 5 shares reconstruct the secret.
//	secret, err := shamir.Combine(shares[:3])
//
// Shares marshal to JSON for storage and transport; every share in a set
// carries the same randomly generated group ID so that shares from
// different splits are never mixed.
//
// # Constraints
//
//   - 2 <= Threshold <= TotalShares <= 255
//   - Polynomial coefficients come from crypto/rand
//   - Shares carry no integrity protection; callers that need tamper
//     detection must layer their own authentication over the share values
package secretsharing
