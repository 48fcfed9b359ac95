// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

// Result is the outcome of a successful normalization.
type Result struct {
	// Data is the normalized DDS file, owned by the caller.
	Data      []byte
	Container ContainerHeader
	Repairs   Repair
}

// Unwrapped reports whether Data came out of a TEX container.
func (r *Result) Unwrapped() bool {
	return r.Container.HeaderSize > 0
}

// Normalize converts a TEX container into a DDS file strict readers accept.
// The input is never modified; on error the output is nil.
func Normalize(data []byte) ([]byte, error) {
	res, err := NormalizeWithResult(data)
	if err != nil {
		return nil, err
	}

	return res.Data, nil
}

// NormalizeWithResult is Normalize that also reports the container framing
// and the pixel format repairs that were applied.
func NormalizeWithResult(data []byte) (*Result, error) {
	hdr, err := Sniff(data)
	if err != nil {
		return nil, err
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	dds, err := Unwrap(owned, hdr)
	if err != nil {
		return nil, err
	}

	view, err := NewHeaderView(dds)
	if err != nil {
		return nil, err
	}

	repairs := RepairPixelFormat(view)
	FixSurfaceCaps(view)

	return &Result{Data: dds, Container: hdr, Repairs: repairs}, nil
}
