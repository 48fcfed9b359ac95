// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import "github.com/woozymasta/bcn"

// calculateMipMapCount returns the full chain length down to 1x1.
func calculateMipMapCount(width, height int) (int, error) {
	w, h, err := headerDims(width, height)
	if err != nil {
		return 0, err
	}

	count := 1
	for w > 1 || h > 1 {
		count++
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}

	return count, nil
}

// mipDimension calculates the dimension of a mipmap level.
func mipDimension(base, level int) int {
	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}

// declaredMipCount returns the level count stored after the header.
// Legacy TEX headers often leave the mipmap caps bit clear, so either the
// header flag or the caps bit is enough.
func declaredMipCount(header *bcn.DDSHeader) int {
	if header.MipMapCount == 0 {
		return 1
	}
	if header.Flags&bcn.DDSFlagMipmapCount == 0 && header.Caps&bcn.DDSCapsMipmap == 0 {
		return 1
	}

	return int(header.MipMapCount)
}
