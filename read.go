// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/woozymasta/bcn"
)

const dx10HeaderSize = 20

// ReadOptions configures decoding (e.g. BCn decode workers).
type ReadOptions struct {
	// DecodeOptions are passed to the BCn decoder (e.g. Workers).
	DecodeOptions *bcn.DecodeOptions
}

// ReadConfig reads a TEX (or plain DDS) file and returns its dimensions
// without decoding pixel data.
func ReadConfig(path string) (image.Config, error) {
	dds, err := loadFile(path)
	if err != nil {
		return image.Config{}, err
	}

	return DecodeConfig(dds)
}

// Read reads a TEX (or plain DDS) file and decodes its top level.
func Read(path string) (image.Image, error) {
	return ReadWithOptions(path, nil)
}

// ReadWithOptions reads a TEX (or plain DDS) file and decodes its top level
// with the given options. Nil opts uses default decoding.
func ReadWithOptions(path string, opts *ReadOptions) (image.Image, error) {
	dds, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(dds, opts)
}

// LoadFile reads a TEX container and normalizes it. Files that already
// start with a DDS header are returned as is with a zero Container.
func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}

	if !IsContainer(data) && isPlainDDS(data) {
		return &Result{Data: data}, nil
	}

	res, err := NormalizeWithResult(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return res, nil
}

func loadFile(path string) ([]byte, error) {
	res, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return res.Data, nil
}

func isPlainDDS(data []byte) bool {
	view, err := NewHeaderView(data)
	return err == nil && view.HasDDSMagic()
}

// DecodeConfig returns the dimensions declared by a DDS header.
func DecodeConfig(dds []byte) (image.Config, error) {
	header, _, err := readDDSHeaders(bytes.NewReader(dds))
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// Info summarizes the headers of a normalized DDS file.
type Info struct {
	Width    int
	Height   int
	MipMaps  int
	Format   string
	BitCount uint32
	// Decodable reports whether Decode supports the stored format.
	Decodable bool
}

// Describe reads the DDS headers without touching the payload.
func Describe(dds []byte) (*Info, error) {
	header, dx10, err := readDDSHeaders(bytes.NewReader(dds))
	if err != nil {
		return nil, err
	}

	layout := detectFormat(header, dx10)
	return &Info{
		Width:     int(header.Width),
		Height:    int(header.Height),
		MipMaps:   declaredMipCount(header),
		Format:    layout.Name,
		BitCount:  header.PixelFormat.RGBBitCount,
		Decodable: layout.Format != bcn.FormatUnknown,
	}, nil
}

// Decode decodes the top level of a normalized DDS file.
func Decode(dds []byte, opts *ReadOptions) (image.Image, error) {
	header, dx10, err := readDDSHeaders(bytes.NewReader(dds))
	if err != nil {
		return nil, err
	}

	layout := detectFormat(header, dx10)
	if layout.Format == bcn.FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, layout.Name)
	}

	width, height := int(header.Width), int(header.Height)
	start := payloadOffset(dx10)
	data, err := levelPayload(dds, start, layout, width, height)
	if err != nil {
		return nil, err
	}
	if layout.BGR24 {
		data = widenBGR24(data)
	}

	decOpts := (*bcn.DecodeOptions)(nil)
	if opts != nil {
		decOpts = opts.DecodeOptions
	}
	img, err := bcn.DecodeImageWithOptions(data, width, height, layout.Format, decOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}

	return img, nil
}

// EncodePNG decodes the top level of a normalized DDS file and writes it as PNG.
func EncodePNG(w io.Writer, dds []byte, opts *ReadOptions) error {
	img, err := Decode(dds, opts)
	if err != nil {
		return err
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: %v", ErrEncodePNG, err)
	}

	return nil
}

func payloadOffset(dx10 *bcn.DDSHeaderDX10) int {
	if dx10 != nil {
		return DDSFileHeaderSize + dx10HeaderSize
	}
	return DDSFileHeaderSize
}

// levelPayload slices one stored level starting at offset.
func levelPayload(dds []byte, offset int, layout payloadLayout, width, height int) ([]byte, error) {
	size := layout.storedLength(width, height)
	if size <= 0 {
		return nil, fmt.Errorf("%w: %s %dx%d", ErrUnknownFormat, layout.Name, width, height)
	}
	if offset > len(dds) || len(dds)-offset < size {
		return nil, fmt.Errorf("%w: level %dx%d needs %d bytes at %d, file has %d", ErrPayloadTruncated, width, height, size, offset, len(dds))
	}

	return dds[offset : offset+size], nil
}

// widenBGR24 expands packed B8G8R8 texels to opaque B8G8R8A8.
func widenBGR24(src []byte) []byte {
	n := len(src) / 3
	dst := make([]byte, n*4)
	for i := 0; i < n; i++ {
		copy(dst[i*4:i*4+3], src[i*3:i*3+3])
		dst[i*4+3] = 0xff
	}

	return dst
}

// readDDSHeaders reads the DDS headers from the reader.
func readDDSHeaders(r io.Reader) (*bcn.DDSHeader, *bcn.DDSHeaderDX10, error) {
	header, err := bcn.ReadDDSHeader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDDSHeaderRead, err)
	}

	dx10, err := bcn.ReadDDSHeaderDX10(r, header)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDDSDX10Read, err)
	}

	return header, dx10, nil
}
