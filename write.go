// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/woozymasta/bcn"
)

// WriteOptions configures DDS encoding from an image.
type WriteOptions struct {
	// Format is the payload format. Nil options use BGRA8.
	Format bcn.Format
	// MaxMipMaps limits the chain length; 0 means full chain.
	MaxMipMaps int
	// EncodeOptions are passed to the BCn encoder (quality, workers).
	EncodeOptions *bcn.EncodeOptions
}

func defaultWriteOptions() *WriteOptions {
	return &WriteOptions{Format: bcn.FormatBGRA8}
}

// EncodeDDS writes img as a legacy (non-DX10) DDS file with a mip chain.
func EncodeDDS(w io.Writer, img image.Image, opts *WriteOptions) error {
	if opts == nil {
		opts = defaultWriteOptions()
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	payloads, err := encodeMipChain(img, opts)
	if err != nil {
		return err
	}

	return writeDDS(w, opts.Format, width, height, payloads)
}

// ConvertPNG decodes a PNG from r and writes it to w as DDS.
func ConvertPNG(w io.Writer, r io.Reader, opts *WriteOptions) error {
	img, err := png.Decode(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}

	return EncodeDDS(w, img, opts)
}

// encodeMipChain generates and encodes the mip chain, largest level first.
func encodeMipChain(img image.Image, opts *WriteOptions) ([][]byte, error) {
	bounds := img.Bounds()
	mipMapCount, err := calculateMipMapCount(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	if opts.MaxMipMaps > 0 && opts.MaxMipMaps < mipMapCount {
		mipMapCount = opts.MaxMipMaps
	}

	mips := bcn.GenerateMipmaps(img, false)
	if len(mips) > mipMapCount {
		mips = mips[:mipMapCount]
	}

	payloads := make([][]byte, len(mips))
	for i, mip := range mips {
		data, _, _, err := bcn.EncodeImageWithOptions(mip, opts.Format, opts.EncodeOptions)
		if err != nil {
			return nil, fmt.Errorf("%w: mipmap %d: %v", ErrEncodeImage, i, err)
		}
		payloads[i] = data
	}

	return payloads, nil
}

// writeDDS writes magic, header and level payloads ordered largest first.
func writeDDS(w io.Writer, format bcn.Format, width, height int, payloads [][]byte) error {
	if len(payloads) == 0 {
		return ErrEmptyMipmaps
	}

	w32, h32, err := headerDims(width, height)
	if err != nil {
		return err
	}
	mip32, err := u32FromInt(len(payloads))
	if err != nil {
		return err
	}

	header, err := makeDDSHeader(w32, h32, mip32, format)
	if err != nil {
		return err
	}

	if err := bcn.WriteDDSMagic(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSMagic, err)
	}
	if err := bcn.WriteDDSHeader(w, header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSHeader, err)
	}
	for i, p := range payloads {
		if _, err := w.Write(p); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWritePayload, i, err)
		}
	}

	return nil
}
