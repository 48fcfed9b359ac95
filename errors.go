// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import "errors"

var (
	// ErrUnsupportedFormat indicates the leading bytes match no TEX signature.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrUnsupportedVersion indicates a TEX signature with an unknown version byte.
	ErrUnsupportedVersion = errors.New("unsupported TEX version")
	// ErrTruncatedContainer indicates the unwrapped payload cannot hold a DDS header.
	ErrTruncatedContainer = errors.New("truncated container")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidFormat indicates an unsupported target format.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnknownFormat indicates the DDS pixel format is not decodable.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrEmptyMipmaps indicates missing mipmap data.
	ErrEmptyMipmaps = errors.New("empty mipmaps")
	// ErrPayloadTruncated indicates the DDS body is shorter than its header declares.
	ErrPayloadTruncated = errors.New("DDS payload truncated")
	// ErrDDSHeaderRead indicates DDS header read failed.
	ErrDDSHeaderRead = errors.New("reading DDS header failed")
	// ErrDDSDX10Read indicates DDS DX10 header read failed.
	ErrDDSDX10Read = errors.New("reading DDS DX10 header failed")
	// ErrOpenFile indicates reading a TEX file failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrDecodeImage indicates image decode failed.
	ErrDecodeImage = errors.New("decode image failed")
	// ErrEncodeImage indicates mipmap encoding failed.
	ErrEncodeImage = errors.New("encode image failed")
	// ErrEncodePNG indicates PNG encoding failed.
	ErrEncodePNG = errors.New("encode PNG failed")
	// ErrWriteDDSMagic indicates DDS magic write failed.
	ErrWriteDDSMagic = errors.New("writing DDS magic failed")
	// ErrWriteDDSHeader indicates DDS header write failed.
	ErrWriteDDSHeader = errors.New("writing DDS header failed")
	// ErrWritePayload indicates mipmap payload write failed.
	ErrWritePayload = errors.New("writing payload failed")
	// ErrLZ4Compress indicates LZ4 compression failed.
	ErrLZ4Compress = errors.New("LZ4 compression failed")
	// ErrChunkTooLarge indicates a compressed chunk exceeds the 24-bit size field.
	ErrChunkTooLarge = errors.New("compressed chunk too large")
	// ErrWriteBlockTable indicates EDDS block table write failed.
	ErrWriteBlockTable = errors.New("writing block table failed")
	// ErrWriteBlockData indicates EDDS block body write failed.
	ErrWriteBlockData = errors.New("writing block data failed")
)
