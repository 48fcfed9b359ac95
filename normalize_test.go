package tex

import (
	"bytes"
	"errors"
	"testing"
)

func TestNormalizeV1Scenario(t *testing.T) {
	t.Parallel()

	payload := make([]byte, 4*4*3)
	input := buildTEX(t, V1, buildDDS(rgbHeader(24, 4, 4), payload))
	before := cloneBytes(input)

	res, err := NormalizeWithResult(input)
	if err != nil {
		t.Fatalf("NormalizeWithResult: %v", err)
	}
	if !bytes.Equal(before, input) {
		t.Fatalf("input was modified")
	}
	if len(res.Data) != len(input)-12 {
		t.Fatalf("output length %d, want %d", len(res.Data), len(input)-12)
	}
	if string(res.Data[:4]) != "DDS " {
		t.Fatalf("magic = %q", res.Data[:4])
	}
	if res.Container.Version != V1 || res.Repairs != RepairChannelMasks {
		t.Fatalf("result = %+v / %v", res.Container, res.Repairs)
	}

	view := mustView(t, res.Data)
	pf := view.PixelFormat()
	if pf.RBitMask != 0x00ff0000 || pf.GBitMask != 0x0000ff00 || pf.BBitMask != 0x000000ff {
		t.Fatalf("masks = %08x %08x %08x", pf.RBitMask, pf.GBitMask, pf.BBitMask)
	}
	if view.Caps()&CapsTexture == 0 {
		t.Fatalf("texture caps bit not set")
	}
	if !bytes.Equal(res.Data[DDSFileHeaderSize:], payload) {
		t.Fatalf("pixel payload changed")
	}
}

func TestNormalizeErrors(t *testing.T) {
	t.Parallel()

	dds := buildDDS(rgbHeader(32, 1, 1), nil)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "short", data: []byte("TEX\x01short"), wantErr: ErrUnsupportedFormat},
		{name: "foreign", data: append([]byte("RIFF"), dds...), wantErr: ErrUnsupportedFormat},
		{name: "bad-version", data: append([]byte("TEX\x07"), dds...), wantErr: ErrUnsupportedVersion},
		{name: "v2-truncated", data: buildTEX(t, V2, dds)[:13+DDSFileHeaderSize-1], wantErr: ErrTruncatedContainer},
		{name: "v1-truncated", data: buildTEX(t, V1, dds[:64]), wantErr: ErrTruncatedContainer},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			before := cloneBytes(tc.data)
			out, err := Normalize(tc.data)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if out != nil {
				t.Fatalf("expected nil output on failure, got %d bytes", len(out))
			}
			if !bytes.Equal(before, tc.data) {
				t.Fatalf("input was modified on failure")
			}
		})
	}
}

func TestNormalizeV2PassThroughFormat(t *testing.T) {
	t.Parallel()

	h := rgbHeader(16, 2, 2)
	h.pf.Flags = PixelFlagRGB
	input := buildTEX(t, V2, buildDDS(h, make([]byte, 8)))

	res, err := NormalizeWithResult(input)
	if err != nil {
		t.Fatalf("NormalizeWithResult: %v", err)
	}
	if res.Repairs != 0 {
		t.Fatalf("16-bit header repaired: %v", res.Repairs)
	}
	if !bytes.Equal(res.Data[offPixelFormat:offPixelFormat+PixelFormatSize], input[13+offPixelFormat:13+offPixelFormat+PixelFormatSize]) {
		t.Fatalf("16-bit pixel format modified")
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	t.Parallel()

	input := buildTEX(t, V1, buildDDS(rgbHeader(32, 2, 2), make([]byte, 16)))
	want, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	for i := 0; i < 8; i++ {
		t.Run("worker", func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(input)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("concurrent output differs")
			}
		})
	}
}
