// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-secretshare.

package gf256

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalPoly evaluates the polynomial with the given coefficients (constant
// term first) at x, by Horner's method.
func evalPoly(coeffs []GF, x GF) GF {
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = result.Mul(x).Add(coeffs[i])
	}
	return result
}

// samplePolys builds one share per x-coordinate from a set of polynomials,
// one y-slot per polynomial.
func samplePolys(t *testing.T, polys [][]GF, xs []GF) []Share {
	t.Helper()
	shares := make([]Share, len(xs))
	for i, x := range xs {
		ys := make([]GF, len(polys))
		for j, coeffs := range polys {
			ys[j] = evalPoly(coeffs, x)
		}
		shares[i] = Share{X: x, Ys: ys}
	}
	return shares
}

// randomPolys generates count random polynomials of the given degree.
func randomPolys(t *testing.T, count, degree int) [][]GF {
	t.Helper()
	polys := make([][]GF, count)
	for i := range polys {
		buf := make([]byte, degree+1)
		_, err := rand.Read(buf)
		require.NoError(t, err)
		coeffs := make([]GF, degree+1)
		for j, b := range buf {
			coeffs[j] = GF(b)
		}
		// A zero leading coefficient would lower the degree.
		if coeffs[degree].IsZero() {
			coeffs[degree] = GF(1)
		}
		polys[i] = coeffs
	}
	return polys
}

func TestInterpolate_RecoversSamplePoints(t *testing.T) {
	polys := randomPolys(t, 4, 2)
	xs := []GF{GF(1), GF(2), GF(3)}
	shares := samplePolys(t, polys, xs)

	// Interpolating at the x-coordinate of any known share reproduces it.
	for _, want := range shares {
		got, err := Interpolate(shares, want.X)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestInterpolate_EvaluatesHeldOutPoints(t *testing.T) {
	polys := randomPolys(t, 3, 3)
	xs := []GF{GF(5), GF(9), GF(42), GF(200)}
	shares := samplePolys(t, polys, xs)

	for _, destX := range []GF{GF(0), GF(7), GF(255)} {
		got, err := Interpolate(shares, destX)
		require.NoError(t, err)

		assert.Equal(t, destX, got.X)
		for j, coeffs := range polys {
			assert.Equal(t, evalPoly(coeffs, destX), got.Ys[j],
				"slot %d at %v", j, destX)
		}
	}
}

func TestInterpolate_SubsetConsistency(t *testing.T) {
	polys := randomPolys(t, 2, 2)
	xs := []GF{GF(1), GF(2), GF(3), GF(4), GF(5)}
	shares := samplePolys(t, polys, xs)

	want, err := Interpolate(shares[:3], GF(0))
	require.NoError(t, err)

	// Every 3-share subset of the 5 shares determines the same polynomials,
	// so every subset interpolates to the same value.
	for i := 0; i < len(shares); i++ {
		for j := i + 1; j < len(shares); j++ {
			for k := j + 1; k < len(shares); k++ {
				subset := []Share{shares[i], shares[j], shares[k]}
				got, err := Interpolate(subset, GF(0))
				require.NoError(t, err)
				assert.Equal(t, want, got, "subset {%d,%d,%d}", i, j, k)
			}
		}
	}

	// Oversized subsets agree as well.
	got, err := Interpolate(shares, GF(0))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInterpolate_SecretScenario(t *testing.T) {
	// Shares at x=1,2,3 of a degree-2 polynomial define a hidden value at
	// x=0. Recovering it and re-interpolating from {0,1,2} must reproduce
	// the share at x=3.
	polys := randomPolys(t, 1, 2)
	shares := samplePolys(t, polys, []GF{GF(1), GF(2), GF(3)})

	s0, err := Interpolate(shares, GF(0))
	require.NoError(t, err)
	assert.Equal(t, evalPoly(polys[0], GF(0)), s0.Ys[0])

	s3, err := Interpolate([]Share{s0, shares[0], shares[1]}, GF(3))
	require.NoError(t, err)
	assert.Equal(t, shares[2], s3)
}

func TestInterpolate_ShortcutDoesNotAlias(t *testing.T) {
	shares := []Share{
		{X: GF(1), Ys: []GF{GF(10), GF(20)}},
		{X: GF(2), Ys: []GF{GF(30), GF(40)}},
	}

	got, err := Interpolate(shares, GF(1))
	require.NoError(t, err)
	require.Equal(t, shares[0], got)

	got.Ys[0] = GF(99)
	assert.Equal(t, GF(10), shares[0].Ys[0], "result must not alias the input share")
}

func TestInterpolate_ZeroYValues(t *testing.T) {
	// Zero y-values contribute nothing but must still interpolate exactly.
	polys := [][]GF{{GF(0), GF(0), GF(1)}} // x^2
	xs := []GF{GF(1), GF(2), GF(3)}
	shares := samplePolys(t, polys, xs)

	got, err := Interpolate(shares, GF(0))
	require.NoError(t, err)
	assert.True(t, got.Ys[0].IsZero())

	got, err = Interpolate(shares, GF(4))
	require.NoError(t, err)
	assert.Equal(t, evalPoly(polys[0], GF(4)), got.Ys[0])
}

func TestInterpolate_Errors(t *testing.T) {
	one := Share{X: GF(1), Ys: []GF{GF(7)}}
	two := Share{X: GF(2), Ys: []GF{GF(9)}}

	tests := []struct {
		name   string
		shares []Share
		destX  GF
		want   error
	}{
		{
			name:   "no shares",
			shares: nil,
			destX:  GF(0),
			want:   ErrTooFewShares,
		},
		{
			name:   "single share",
			shares: []Share{one},
			destX:  GF(0),
			want:   ErrTooFewShares,
		},
		{
			name: "mismatched y-vector lengths",
			shares: []Share{
				one,
				{X: GF(2), Ys: []GF{GF(9), GF(11)}},
			},
			destX: GF(0),
			want:  ErrShareLength,
		},
		{
			name: "duplicate x-coordinates",
			shares: []Share{
				one,
				{X: GF(1), Ys: []GF{GF(9)}},
				two,
			},
			destX: GF(0),
			want:  ErrDuplicateShareX,
		},
		{
			name: "two shares with identical x",
			shares: []Share{
				one,
				{X: GF(1), Ys: []GF{GF(12)}},
			},
			destX: GF(0),
			want:  ErrDuplicateShareX,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Interpolate(tt.shares, tt.destX)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInterpolate_DuplicateXAtDest(t *testing.T) {
	// The shortcut fires before duplicate detection: if destX matches a
	// share, that share wins even when the input also contains duplicates.
	shares := []Share{
		{X: GF(3), Ys: []GF{GF(1)}},
		{X: GF(3), Ys: []GF{GF(2)}},
	}
	got, err := Interpolate(shares, GF(3))
	require.NoError(t, err)
	assert.Equal(t, shares[0], got)
}
