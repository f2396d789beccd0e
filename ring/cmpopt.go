// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package ring

import "github.com/google/go-cmp/cmp"

// CmpOpt returns a configuration for [cmp.Diff] to compare [Buffer] instances
// by their elements alone, in logical order. Capacity, physical layout and
// configuration are ignored.
func CmpOpt[T any]() cmp.Option {
	return cmp.Transformer("ring.Buffer", func(b *Buffer[T]) []T {
		if b == nil {
			return nil
		}
		return b.Slice()
	})
}
