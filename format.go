// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import (
	"fmt"
	"strings"

	"github.com/woozymasta/bcn"
)

// payloadLayout describes how the DDS body is stored and how it maps to a
// bcn format.
type payloadLayout struct {
	Format bcn.Format
	Name   string
	// BGR24 marks packed 24-bit B8G8R8 texels that are widened to BGRA8.
	BGR24 bool
}

func detectFormat(header *bcn.DDSHeader, dx10 *bcn.DDSHeaderDX10) payloadLayout {
	if dx10 != nil {
		return payloadLayout{Format: mapDxgiFormat(dx10.DXGIFormat), Name: fmt.Sprintf("DXGI %d", dx10.DXGIFormat)}
	}

	pf := header.PixelFormat
	if (pf.Flags & bcn.DDSPFFourCC) != 0 {
		fourCC := intToFourCC(pf.FourCC)
		switch fourCC {
		case "DXT1":
			return payloadLayout{Format: bcn.FormatDXT1, Name: fourCC}
		case "DXT2", "DXT3":
			return payloadLayout{Format: bcn.FormatDXT3, Name: fourCC}
		case "DXT4", "DXT5":
			return payloadLayout{Format: bcn.FormatDXT5, Name: fourCC}
		case "ATI1", "BC4U", "BC4S":
			return payloadLayout{Format: bcn.FormatBC4, Name: fourCC}
		case "ATI2", "BC5U", "BC5S":
			return payloadLayout{Format: bcn.FormatBC5, Name: fourCC}
		default:
			return payloadLayout{Format: bcn.FormatUnknown, Name: fourCC}
		}
	}

	if (pf.Flags & bcn.DDSPFRGB) != 0 {
		switch pf.RGBBitCount {
		case 32:
			if pf.RBitMask == 0x000000ff && pf.GBitMask == 0x0000ff00 && pf.BBitMask == 0x00ff0000 {
				return payloadLayout{Format: bcn.FormatRGBA8, Name: "RGBA8"}
			}
			if pf.RBitMask == MaskRed && pf.GBitMask == MaskGreen && pf.BBitMask == MaskBlue {
				return payloadLayout{Format: bcn.FormatBGRA8, Name: "BGRA8"}
			}
		case 24:
			if pf.RBitMask == MaskRed && pf.GBitMask == MaskGreen && pf.BBitMask == MaskBlue {
				return payloadLayout{Format: bcn.FormatBGRA8, Name: "BGR8", BGR24: true}
			}
		}
	}

	return payloadLayout{Format: bcn.FormatUnknown, Name: "UNKNOWN"}
}

func mapDxgiFormat(dxgiFormat uint32) bcn.Format {
	switch dxgiFormat {
	case 71:
		return bcn.FormatDXT1
	case 74:
		return bcn.FormatDXT3
	case 77:
		return bcn.FormatDXT5
	case 80:
		return bcn.FormatBC4
	case 83:
		return bcn.FormatBC5
	case 87:
		return bcn.FormatBGRA8
	case 28:
		return bcn.FormatRGBA8
	default:
		return bcn.FormatUnknown
	}
}

// ParseFormat maps a user-facing format name to a bcn format.
func ParseFormat(name string) (bcn.Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dxt1", "bc1":
		return bcn.FormatDXT1, nil
	case "dxt3", "bc2":
		return bcn.FormatDXT3, nil
	case "dxt5", "bc3":
		return bcn.FormatDXT5, nil
	case "bc4", "ati1":
		return bcn.FormatBC4, nil
	case "bc5", "ati2":
		return bcn.FormatBC5, nil
	case "rgba8":
		return bcn.FormatRGBA8, nil
	case "bgra8", "":
		return bcn.FormatBGRA8, nil
	default:
		return bcn.FormatUnknown, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}
}

func intToFourCC(value uint32) string {
	return string([]byte{
		byte(value & 0xff),
		byte((value >> 8) & 0xff),
		byte((value >> 16) & 0xff),
		byte((value >> 24) & 0xff),
	})
}

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// storedLength is the byte size of one level as stored in the DDS body.
func (l payloadLayout) storedLength(width, height int) int {
	if l.BGR24 {
		return width * height * 3
	}
	return expectedDataLength(l.Format, width, height)
}

func expectedDataLength(format bcn.Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	switch format {
	case bcn.FormatDXT1, bcn.FormatBC4:
		return blocksW * blocksH * 8
	case bcn.FormatDXT3, bcn.FormatDXT5, bcn.FormatBC5:
		return blocksW * blocksH * 16
	case bcn.FormatRGBA8, bcn.FormatBGRA8:
		return width * height * 4
	default:
		return -1
	}
}

// enfusionReserved1 tags headers written into EDDS containers.
func enfusionReserved1() [11]uint32 {
	return [11]uint32{
		0,
		makeFourCC('E', 'N', 'F', '1'),
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
}

func makeDDSHeader(width, height, mipMapCount uint32, format bcn.Format) (*bcn.DDSHeader, error) {
	flags := uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat)
	caps := uint32(bcn.DDSCapsTexture)
	if mipMapCount > 1 {
		flags |= bcn.DDSFlagMipmapCount
		caps |= bcn.DDSCapsComplex | bcn.DDSCapsMipmap
	}

	hdr := &bcn.DDSHeader{
		Size:        bcn.DDSHeaderSize,
		Flags:       flags,
		Height:      height,
		Width:       width,
		Depth:       1,
		MipMapCount: mipMapCount,
		Caps:        caps,
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize

	var fourCC uint32
	switch format {
	case bcn.FormatDXT1:
		fourCC = makeFourCC('D', 'X', 'T', '1')
	case bcn.FormatDXT3:
		fourCC = makeFourCC('D', 'X', 'T', '3')
	case bcn.FormatDXT5:
		fourCC = makeFourCC('D', 'X', 'T', '5')
	case bcn.FormatBC4:
		fourCC = makeFourCC('A', 'T', 'I', '1')
	case bcn.FormatBC5:
		fourCC = makeFourCC('A', 'T', 'I', '2')
	case bcn.FormatRGBA8, bcn.FormatBGRA8:
		hdr.Flags |= bcn.DDSFlagPitch
		hdr.PixelFormat.Flags = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
		hdr.PixelFormat.RGBBitCount = 32
		hdr.PixelFormat.ABitMask = MaskAlpha
		hdr.PitchOrLinearSize = width * 4
		if format == bcn.FormatRGBA8 {
			hdr.PixelFormat.RBitMask = 0x000000ff
			hdr.PixelFormat.GBitMask = 0x0000ff00
			hdr.PixelFormat.BBitMask = 0x00ff0000
		} else {
			hdr.PixelFormat.RBitMask = MaskRed
			hdr.PixelFormat.GBitMask = MaskGreen
			hdr.PixelFormat.BBitMask = MaskBlue
		}
		return hdr, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}

	hdr.Flags |= bcn.DDSFlagLinearSize
	hdr.PixelFormat.Flags = bcn.DDSPFFourCC
	hdr.PixelFormat.FourCC = fourCC
	// #nosec G115 -- block sizes of a uint32 sized image fit.
	hdr.PitchOrLinearSize = uint32(expectedDataLength(format, int(width), int(height)))

	return hdr, nil
}
