// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/woozymasta/bcn"
)

const (
	// BlockMagicCOPY marks an uncompressed EDDS block.
	BlockMagicCOPY = "COPY"
	// BlockMagicLZ4 marks an LZ4 chunk-stream EDDS block.
	BlockMagicLZ4 = "LZ4 "

	// ChunkSize is the Enfusion chunk size for LZ4 streams.
	ChunkSize = 64 * 1024

	// MaxEDDSMipMaps is the longest chain an EDDS file carries.
	MaxEDDSMipMaps = 11

	minCompressSize = 1024
	maxChunkSize    = 0x7fffff
	lastChunkFlag   = 0x80
	// blocks that do not shrink below this ratio are stored as COPY
	compressRatio = 0.85
)

// EDDSOptions configures ConvertToEDDS.
type EDDSOptions struct {
	// Compress stores levels as LZ4 chunk streams when it pays off.
	Compress bool
}

// eddsBlock is one level body as written after the block table.
type eddsBlock struct {
	magic string
	body  []byte
}

// ConvertToEDDS repackages a normalized DDS file as an Enfusion EDDS
// container. Level payloads are moved, not re-encoded; packed 24-bit
// levels are widened to BGRA8 since EDDS has no 24-bit layout. Chains
// longer than MaxEDDSMipMaps keep only the largest levels.
func ConvertToEDDS(w io.Writer, dds []byte, opts *EDDSOptions) error {
	if opts == nil {
		opts = &EDDSOptions{Compress: true}
	}

	header, dx10, err := readDDSHeaders(bytes.NewReader(dds))
	if err != nil {
		return err
	}

	layout := detectFormat(header, dx10)
	if layout.Format == bcn.FormatUnknown {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, layout.Name)
	}

	levels, err := splitLevels(dds, header, dx10, layout)
	if err != nil {
		return err
	}
	if len(levels) > MaxEDDSMipMaps {
		levels = levels[:MaxEDDSMipMaps]
	}

	mip32, err := u32FromInt(len(levels))
	if err != nil {
		return err
	}
	out, err := makeDDSHeader(header.Width, header.Height, mip32, layout.Format)
	if err != nil {
		return err
	}
	out.Reserved1 = enfusionReserved1()

	blocks := make([]eddsBlock, len(levels))
	for i, level := range levels {
		if !opts.Compress {
			blocks[i] = eddsBlock{magic: BlockMagicCOPY, body: level}
			continue
		}
		blocks[i], err = compressLevel(level)
		if err != nil {
			return fmt.Errorf("mipmap %d: %w", i, err)
		}
	}

	if err := bcn.WriteDDSMagic(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSMagic, err)
	}
	if err := bcn.WriteDDSHeader(w, out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSHeader, err)
	}

	// EDDS stores the table and bodies smallest level first
	for i := len(blocks) - 1; i >= 0; i-- {
		if err := writeBlockEntry(w, blocks[i]); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWriteBlockTable, i, err)
		}
	}
	for i := len(blocks) - 1; i >= 0; i-- {
		if _, err := w.Write(blocks[i].body); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWriteBlockData, i, err)
		}
	}

	return nil
}

// splitLevels slices every declared level out of the DDS body, largest first.
func splitLevels(dds []byte, header *bcn.DDSHeader, dx10 *bcn.DDSHeaderDX10, layout payloadLayout) ([][]byte, error) {
	count := declaredMipCount(header)
	width, height := int(header.Width), int(header.Height)

	levels := make([][]byte, 0, count)
	offset := payloadOffset(dx10)
	for level := 0; level < count; level++ {
		p, err := levelPayload(dds, offset, layout, mipDimension(width, level), mipDimension(height, level))
		if err != nil {
			return nil, fmt.Errorf("mipmap %d: %w", level, err)
		}
		offset += len(p)

		if layout.BGR24 {
			p = widenBGR24(p)
		}
		levels = append(levels, p)
	}

	return levels, nil
}

func writeBlockEntry(w io.Writer, b eddsBlock) error {
	size, err := i32FromInt(len(b.body))
	if err != nil {
		return err
	}

	var entry [8]byte
	copy(entry[:4], b.magic)
	binary.LittleEndian.PutUint32(entry[4:], uint32(size)) // #nosec G115 -- non-negative.
	_, err = w.Write(entry[:])
	return err
}

// compressLevel encodes data as an LZ4 block, falling back to COPY when
// the data is small or does not compress well.
func compressLevel(data []byte) (eddsBlock, error) {
	raw := eddsBlock{magic: BlockMagicCOPY, body: data}
	if len(data) < minCompressSize {
		return raw, nil
	}

	uncompressed, err := i32FromInt(len(data))
	if err != nil {
		return eddsBlock{}, err
	}

	stream, ok, err := lz4ChunkStream(data)
	if err != nil || !ok {
		return raw, err
	}

	body := make([]byte, 4, 4+len(stream))
	binary.LittleEndian.PutUint32(body, uint32(uncompressed)) // #nosec G115 -- non-negative.
	body = append(body, stream...)
	if _, err := i32FromInt(len(body)); err != nil {
		return eddsBlock{}, err
	}
	if float64(len(body)) > float64(len(data))*compressRatio {
		return raw, nil
	}

	return eddsBlock{magic: BlockMagicLZ4, body: body}, nil
}

// lz4ChunkStream splits data into ChunkSize pieces, each prefixed with a
// 24-bit compressed size and a flag byte (0x80 on the last chunk).
// ok is false when a chunk does not shrink enough to be worth storing.
func lz4ChunkStream(data []byte) ([]byte, bool, error) {
	var stream bytes.Buffer
	scratch := make([]byte, lz4.CompressBlockBound(ChunkSize))

	for start := 0; start < len(data); start += ChunkSize {
		end := min(start+ChunkSize, len(data))
		chunk := data[start:end]

		n, err := lz4.CompressBlockHC(chunk, scratch, 0, nil, nil)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrLZ4Compress, err)
		}
		if n == 0 || float64(n) > float64(len(chunk))*compressRatio {
			return nil, false, nil
		}
		if n > maxChunkSize {
			return nil, false, fmt.Errorf("%w: %d", ErrChunkTooLarge, n)
		}

		flags := byte(0)
		if end == len(data) {
			flags = lastChunkFlag
		}
		stream.Write([]byte{byte(n), byte(n >> 8), byte(n >> 16), flags})
		stream.Write(scratch[:n])
	}

	return stream.Bytes(), true, nil
}
