// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import (
	"fmt"
	"math"
)

// i32FromInt narrows a byte count to the signed length fields used by the
// TEX framing and the EDDS block table.
func i32FromInt(n int) (int32, error) {
	if n < 0 || int64(n) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d exceeds int32", ErrSizeOverflow, n)
	}

	return int32(n), nil
}

// u32FromInt narrows a dimension or count to a DDS header field.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d exceeds uint32", ErrSizeOverflow, n)
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}

// headerDims converts image dimensions for a DDS header.
func headerDims(width, height int) (uint32, uint32, error) {
	w, err := u32FromInt(width)
	if err != nil {
		return 0, 0, err
	}
	h, err := u32FromInt(height)
	if err != nil {
		return 0, 0, err
	}

	return w, h, nil
}
