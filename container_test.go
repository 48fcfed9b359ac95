package tex

import (
	"bytes"
	"errors"
	"testing"
)

func TestSniffTable(t *testing.T) {
	t.Parallel()

	dds := buildDDS(rgbHeader(32, 4, 4), nil)

	tests := []struct {
		name       string
		data       []byte
		wantErr    error
		wantVer    Version
		wantHeader int
	}{
		{name: "v1", data: buildTEX(t, V1, dds), wantVer: V1, wantHeader: 12},
		{name: "v2", data: buildTEX(t, V2, dds), wantVer: V2, wantHeader: 13},
		{name: "empty", data: nil, wantErr: ErrUnsupportedFormat},
		{name: "twelve-bytes", data: buildTEX(t, V1, dds)[:12], wantErr: ErrUnsupportedFormat},
		{name: "plain-dds", data: append([]byte("DDS "), make([]byte, 20)...), wantErr: ErrUnsupportedFormat},
		{name: "version-3", data: append([]byte("TEX\x03"), make([]byte, 20)...), wantErr: ErrUnsupportedVersion},
		{name: "version-0", data: append([]byte("TEX\x00"), make([]byte, 20)...), wantErr: ErrUnsupportedVersion},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			before := cloneBytes(tc.data)
			hdr, err := Sniff(tc.data)
			if !bytes.Equal(before, tc.data) {
				t.Fatalf("Sniff modified its input")
			}
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Sniff: %v", err)
			}
			if hdr.Version != tc.wantVer || hdr.HeaderSize != tc.wantHeader {
				t.Fatalf("Sniff() = %+v, want version %v header %d", hdr, tc.wantVer, tc.wantHeader)
			}
			if int(hdr.TextureLength) != len(dds) {
				t.Fatalf("TextureLength = %d, want %d", hdr.TextureLength, len(dds))
			}
		})
	}
}

func TestUnwrapExactness(t *testing.T) {
	t.Parallel()

	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dds := buildDDS(rgbHeader(32, 2, 1), payload)

	for _, version := range []Version{V1, V2} {
		version := version
		t.Run(version.String(), func(t *testing.T) {
			t.Parallel()

			data := buildTEX(t, version, dds)
			hdr, err := Sniff(data)
			if err != nil {
				t.Fatalf("Sniff: %v", err)
			}

			out, err := Unwrap(data, hdr)
			if err != nil {
				t.Fatalf("Unwrap: %v", err)
			}
			if len(data)-len(out) != hdr.HeaderSize {
				t.Fatalf("dropped %d bytes, want %d", len(data)-len(out), hdr.HeaderSize)
			}
			if string(out[:4]) != "DDS " {
				t.Fatalf("magic = %q, want %q", out[:4], "DDS ")
			}
			if !bytes.Equal(out[4:], dds[4:]) {
				t.Fatalf("unwrap changed bytes past the magic")
			}
		})
	}
}

func TestUnwrapTruncated(t *testing.T) {
	t.Parallel()

	full := buildTEX(t, V2, buildDDS(rgbHeader(32, 1, 1), nil))
	if len(full) != 13+DDSFileHeaderSize {
		t.Fatalf("fixture size %d", len(full))
	}

	short := cloneBytes(full[:len(full)-1])
	hdr, err := Sniff(short)
	if err != nil {
		t.Fatalf("Sniff: %v", err)
	}

	before := cloneBytes(short)
	if _, err := Unwrap(short, hdr); !errors.Is(err, ErrTruncatedContainer) {
		t.Fatalf("expected ErrTruncatedContainer, got %v", err)
	}
	if !bytes.Equal(before, short) {
		t.Fatalf("Unwrap wrote into a truncated buffer")
	}

	if _, err := Unwrap(full, hdr); err != nil {
		t.Fatalf("Unwrap minimal container: %v", err)
	}
}

func TestIsContainer(t *testing.T) {
	t.Parallel()

	if !IsContainer(buildTEX(t, V1, buildDDS(rgbHeader(24, 1, 1), nil))) {
		t.Fatalf("V1 container not recognized")
	}
	if IsContainer([]byte("DDS not a container")) {
		t.Fatalf("plain DDS recognized as container")
	}
}

func TestSizeConversions(t *testing.T) {
	t.Parallel()

	if _, err := i32FromInt(-1); !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("i32FromInt(-1) = %v", err)
	}
	if _, _, err := headerDims(4, -4); !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("headerDims(4,-4) = %v", err)
	}
	w, h, err := headerDims(512, 256)
	if err != nil || w != 512 || h != 256 {
		t.Fatalf("headerDims(512,256) = %d,%d,%v", w, h, err)
	}
	if n, err := calculateMipMapCount(512, 256); err != nil || n != 10 {
		t.Fatalf("calculateMipMapCount(512,256) = %d,%v", n, err)
	}
}
