// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import (
	"encoding/binary"
	"fmt"
)

// Version identifies the TEX container framing variant.
type Version uint8

const (
	// V1 containers carry a 12-byte framing header.
	V1 Version = 0x01
	// V2 containers carry a 13-byte framing header.
	V2 Version = 0x02
)

const (
	// texFamily is "TEX" in the upper three bytes of the big-endian signature.
	texFamily = 0x54455800

	// MinContainerSize is the shortest buffer Sniff inspects.
	MinContainerSize = 13

	v1HeaderSize = 12
	v2HeaderSize = 13

	v1LengthOffset = 8
	v2LengthOffset = 9
)

// String returns "V1", "V2" or the raw version byte.
func (v Version) String() string {
	switch v {
	case V1:
		return "V1"
	case V2:
		return "V2"
	default:
		return fmt.Sprintf("0x%02x", uint8(v))
	}
}

// ContainerHeader describes the framing in front of the embedded DDS header.
type ContainerHeader struct {
	Version    Version
	HeaderSize int
	// TextureLength is the payload length the container declares.
	// Unwrapping does not depend on it.
	TextureLength int32
}

// Sniff classifies the TEX framing from the leading bytes of data.
// It never modifies data.
func Sniff(data []byte) (ContainerHeader, error) {
	if len(data) < MinContainerSize {
		return ContainerHeader{}, fmt.Errorf("%w: need %d bytes, have %d", ErrUnsupportedFormat, MinContainerSize, len(data))
	}

	signature := binary.BigEndian.Uint32(data[:4])
	if signature&0xffffff00 != texFamily {
		return ContainerHeader{}, fmt.Errorf("%w: signature 0x%08x", ErrUnsupportedFormat, signature)
	}

	switch Version(signature & 0xff) {
	case V1:
		return ContainerHeader{
			Version:       V1,
			HeaderSize:    v1HeaderSize,
			TextureLength: int32(binary.LittleEndian.Uint32(data[v1LengthOffset:])), // #nosec G115 -- raw field.
		}, nil
	case V2:
		return ContainerHeader{
			Version:       V2,
			HeaderSize:    v2HeaderSize,
			TextureLength: int32(binary.LittleEndian.Uint32(data[v2LengthOffset:])), // #nosec G115 -- raw field.
		}, nil
	default:
		return ContainerHeader{}, fmt.Errorf("%w: version byte 0x%02x", ErrUnsupportedVersion, signature&0xff)
	}
}

// IsContainer reports whether data starts with a recognized TEX signature.
func IsContainer(data []byte) bool {
	_, err := Sniff(data)
	return err == nil
}

// Unwrap drops the container framing and restores the "DDS " magic.
// The returned slice aliases data; the magic terminator is written into it
// only after the length check passes.
func Unwrap(data []byte, hdr ContainerHeader) ([]byte, error) {
	if hdr.HeaderSize <= 0 || hdr.HeaderSize > len(data) {
		return nil, fmt.Errorf("%w: framing %d bytes, buffer %d bytes", ErrTruncatedContainer, hdr.HeaderSize, len(data))
	}

	dds := data[hdr.HeaderSize:]
	if len(dds) < DDSFileHeaderSize {
		return nil, fmt.Errorf("%w: %s payload has %d bytes, need %d", ErrTruncatedContainer, hdr.Version, len(dds), DDSFileHeaderSize)
	}

	// legacy headers read "DDSR"
	dds[3] = ddsMagicTerminator

	return dds, nil
}
