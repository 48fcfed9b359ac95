package tex

import (
	"encoding/binary"
	"testing"
)

// legacyHeader describes the DDS header embedded in a test TEX container.
type legacyHeader struct {
	width, height uint32
	mipMapCount   uint32
	flags         uint32
	pf            PixelFormat
	caps          uint32
}

func rgbHeader(bitCount uint32, width, height uint32) legacyHeader {
	return legacyHeader{
		width:  width,
		height: height,
		flags:  0x1007,
		pf: PixelFormat{
			Size:        PixelFormatSize,
			Flags:       PixelFlagRGB,
			RGBBitCount: bitCount,
		},
	}
}

// buildDDS returns a 128-byte DDS file header with "DDSR" magic followed by payload.
func buildDDS(h legacyHeader, payload []byte) []byte {
	buf := make([]byte, DDSFileHeaderSize, DDSFileHeaderSize+len(payload))
	copy(buf, "DDSR")
	put := func(off int, v uint32) { binary.LittleEndian.PutUint32(buf[off:], v) }
	put(offSize, 124)
	put(offFlags, h.flags)
	put(offHeight, h.height)
	put(offWidth, h.width)
	put(offMipMapCount, h.mipMapCount)
	put(offPFSize, h.pf.Size)
	put(offPFFlags, h.pf.Flags)
	put(offPFFourCC, h.pf.FourCC)
	put(offPFBitCount, h.pf.RGBBitCount)
	put(offPFRMask, h.pf.RBitMask)
	put(offPFGMask, h.pf.GBitMask)
	put(offPFBMask, h.pf.BBitMask)
	put(offPFAMask, h.pf.ABitMask)
	put(offCaps, h.caps)

	return append(buf, payload...)
}

// buildTEX wraps dds in V1 or V2 framing.
func buildTEX(t testing.TB, version Version, dds []byte) []byte {
	t.Helper()

	var framing []byte
	switch version {
	case V1:
		framing = make([]byte, v1HeaderSize)
		binary.LittleEndian.PutUint32(framing[v1LengthOffset:], uint32(len(dds)))
	case V2:
		framing = make([]byte, v2HeaderSize)
		binary.LittleEndian.PutUint32(framing[v2LengthOffset:], uint32(len(dds)))
	default:
		t.Fatalf("unsupported test version %v", version)
	}
	copy(framing, "TEX")
	framing[3] = byte(version)

	return append(framing, dds...)
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
