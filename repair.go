// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import "strings"

// Canonical A8R8G8B8 masks written by the repairer.
const (
	MaskRed   = 0x00ff0000
	MaskGreen = 0x0000ff00
	MaskBlue  = 0x000000ff
	MaskAlpha = 0xff000000
)

// Repair records which pixel format fields were rewritten.
type Repair uint8

const (
	// RepairChannelMasks means the RGB masks were replaced.
	RepairChannelMasks Repair = 1 << iota
	// RepairAlphaMask means the alpha flag and mask were set.
	RepairAlphaMask
)

// String lists the applied repairs, or "none".
func (r Repair) String() string {
	if r == 0 {
		return "none"
	}

	var parts []string
	if r&RepairChannelMasks != 0 {
		parts = append(parts, "channel-masks")
	}
	if r&RepairAlphaMask != 0 {
		parts = append(parts, "alpha-mask")
	}

	return strings.Join(parts, ",")
}

// RepairPixelFormat fills in channel masks and the alpha flag of legacy
// uncompressed headers. Only 24 and 32 bit layouts are touched; anything
// else passes through unchanged. Applying it twice is a no-op.
func RepairPixelFormat(h *HeaderView) Repair {
	pf := h.PixelFormat()
	if pf.RGBBitCount != 24 && pf.RGBBitCount != 32 {
		return 0
	}

	var applied Repair

	if pf.Flags&PixelFlagRGB != 0 && (pf.RBitMask == 0 || pf.GBitMask == 0 || pf.BBitMask == 0) {
		h.SetChannelMasks(MaskRed, MaskGreen, MaskBlue)
		applied |= RepairChannelMasks
	}

	// only a 32-bit layout has room for alpha
	if pf.RGBBitCount == 32 && (pf.ABitMask == 0 || pf.Flags&PixelFlagAlphaPixels == 0) {
		h.SetPixelFlags(pf.Flags | PixelFlagAlphaPixels)
		h.SetAlphaMask(MaskAlpha)
		applied |= RepairAlphaMask
	}

	return applied
}

// FixSurfaceCaps sets the texture caps bit.
func FixSurfaceCaps(h *HeaderView) {
	h.SetCaps(h.Caps() | CapsTexture)
}
