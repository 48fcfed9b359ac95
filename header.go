// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import (
	"encoding/binary"
	"fmt"
)

// DDS file layout, offsets relative to the start of the "DDS " magic.
const (
	offMagic       = 0
	offSize        = 4
	offFlags       = 8
	offHeight      = 12
	offWidth       = 16
	offPitch       = 20
	offDepth       = 24
	offMipMapCount = 28

	offPixelFormat = 76
	offPFSize      = offPixelFormat + 0
	offPFFlags     = offPixelFormat + 4
	offPFFourCC    = offPixelFormat + 8
	offPFBitCount  = offPixelFormat + 12
	offPFRMask     = offPixelFormat + 16
	offPFGMask     = offPixelFormat + 20
	offPFBMask     = offPixelFormat + 24
	offPFAMask     = offPixelFormat + 28

	offCaps  = 108
	offCaps2 = 112

	// DDSFileHeaderSize is the 4-byte magic plus the 124-byte DDS_HEADER.
	DDSFileHeaderSize = 128
	// PixelFormatSize is the size of the DDS_PIXELFORMAT block.
	PixelFormatSize = 32

	ddsMagic           = 0x20534444 // "DDS "
	ddsMagicTerminator = 0x20
)

// Pixel format and caps bits patched by the repairer.
const (
	PixelFlagAlphaPixels = 0x00000001
	PixelFlagFourCC      = 0x00000004
	PixelFlagRGB         = 0x00000040
	CapsTexture          = 0x00001000
)

// PixelFormat is a value copy of the DDS_PIXELFORMAT block.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// HeaderView gives named access to the DDS header at the start of a buffer.
// Writes go straight into the buffer.
type HeaderView struct {
	buf []byte
}

// NewHeaderView wraps buf, which must hold at least DDSFileHeaderSize bytes.
func NewHeaderView(buf []byte) (*HeaderView, error) {
	if len(buf) < DDSFileHeaderSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrTruncatedContainer, len(buf), DDSFileHeaderSize)
	}

	return &HeaderView{buf: buf[:DDSFileHeaderSize:DDSFileHeaderSize]}, nil
}

func (h *HeaderView) u32(off int) uint32 {
	return binary.LittleEndian.Uint32(h.buf[off : off+4])
}

func (h *HeaderView) putU32(off int, v uint32) {
	binary.LittleEndian.PutUint32(h.buf[off:off+4], v)
}

// Magic returns the first four bytes as a little-endian value.
func (h *HeaderView) Magic() uint32 { return h.u32(offMagic) }

// HasDDSMagic reports whether the buffer starts with "DDS ".
func (h *HeaderView) HasDDSMagic() bool { return h.Magic() == ddsMagic }

// Size returns the declared DDS_HEADER size (124 for valid files).
func (h *HeaderView) Size() uint32 { return h.u32(offSize) }

// Flags returns the DDS_HEADER flags.
func (h *HeaderView) Flags() uint32 { return h.u32(offFlags) }

// Height returns the top level height.
func (h *HeaderView) Height() uint32 { return h.u32(offHeight) }

// Width returns the top level width.
func (h *HeaderView) Width() uint32 { return h.u32(offWidth) }

// PitchOrLinearSize returns the pitch or linear size field.
func (h *HeaderView) PitchOrLinearSize() uint32 { return h.u32(offPitch) }

// Depth returns the depth field.
func (h *HeaderView) Depth() uint32 { return h.u32(offDepth) }

// MipMapCount returns the declared mip level count.
func (h *HeaderView) MipMapCount() uint32 { return h.u32(offMipMapCount) }

// PixelFormat returns a copy of the pixel format block.
func (h *HeaderView) PixelFormat() PixelFormat {
	return PixelFormat{
		Size:        h.u32(offPFSize),
		Flags:       h.u32(offPFFlags),
		FourCC:      h.u32(offPFFourCC),
		RGBBitCount: h.u32(offPFBitCount),
		RBitMask:    h.u32(offPFRMask),
		GBitMask:    h.u32(offPFGMask),
		BBitMask:    h.u32(offPFBMask),
		ABitMask:    h.u32(offPFAMask),
	}
}

// PixelFormatBytes returns the raw pixel format block. The slice aliases the buffer.
func (h *HeaderView) PixelFormatBytes() []byte {
	return h.buf[offPixelFormat : offPixelFormat+PixelFormatSize]
}

// SetPixelFlags overwrites the pixel format flags.
func (h *HeaderView) SetPixelFlags(v uint32) { h.putU32(offPFFlags, v) }

// SetChannelMasks overwrites the red, green and blue masks.
func (h *HeaderView) SetChannelMasks(r, g, b uint32) {
	h.putU32(offPFRMask, r)
	h.putU32(offPFGMask, g)
	h.putU32(offPFBMask, b)
}

// SetAlphaMask overwrites the alpha mask.
func (h *HeaderView) SetAlphaMask(v uint32) { h.putU32(offPFAMask, v) }

// Caps returns the surface capabilities field.
func (h *HeaderView) Caps() uint32 { return h.u32(offCaps) }

// SetCaps overwrites the surface capabilities field.
func (h *HeaderView) SetCaps(v uint32) { h.putU32(offCaps, v) }

// Caps2 returns the second capabilities field (cubemap/volume bits).
func (h *HeaderView) Caps2() uint32 { return h.u32(offCaps2) }
