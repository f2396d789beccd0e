// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmputils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestUint256s(t *testing.T) {
	tests := []struct {
		name string
		a, b *uint256.Int
		want bool
	}{
		{"both_nil", nil, nil, true},
		{"nil_vs_zero", nil, new(uint256.Int), false},
		{"zero_vs_nil", new(uint256.Int), nil, false},
		{"equal", uint256.NewInt(42), uint256.NewInt(42), true},
		{"unequal", uint256.NewInt(42), uint256.NewInt(43), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cmp.Equal(tt.a, tt.b, Uint256s()))
		})
	}
}

func TestIfIn(t *testing.T) {
	type inner struct{ X *uint256.Int }
	type outer struct {
		In  inner
		Raw *uint256.Int
	}

	a := outer{In: inner{X: uint256.NewInt(1)}, Raw: uint256.NewInt(2)}
	b := outer{In: inner{X: uint256.NewInt(1)}, Raw: uint256.NewInt(2)}

	opts := IfIn[inner](Uint256s())
	assert.True(t, cmp.Equal(a, b, opts), "equal values")

	b.Raw = uint256.NewInt(3)
	assert.False(t, cmp.Equal(a, b, opts), "different value outside filtered path")
}
