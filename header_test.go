package tex

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestHeaderViewAccessors(t *testing.T) {
	t.Parallel()

	h := rgbHeader(32, 640, 480)
	h.caps = 0x401008
	buf := buildDDS(h, nil)
	binary.LittleEndian.PutUint32(buf[offPitch:], 640*4)
	binary.LittleEndian.PutUint32(buf[offDepth:], 1)
	binary.LittleEndian.PutUint32(buf[offCaps2:], 0x200)

	view := mustView(t, buf)

	if view.Magic() != binary.LittleEndian.Uint32([]byte("DDSR")) || view.HasDDSMagic() {
		t.Fatalf("magic = %08x", view.Magic())
	}
	if view.Size() != 124 || view.Flags() != 0x1007 {
		t.Fatalf("size/flags = %d/%x", view.Size(), view.Flags())
	}
	if view.Width() != 640 || view.Height() != 480 {
		t.Fatalf("dims = %dx%d", view.Width(), view.Height())
	}
	if view.PitchOrLinearSize() != 640*4 || view.Depth() != 1 || view.MipMapCount() != 0 {
		t.Fatalf("pitch/depth/mips = %d/%d/%d", view.PitchOrLinearSize(), view.Depth(), view.MipMapCount())
	}
	if view.Caps() != 0x401008 || view.Caps2() != 0x200 {
		t.Fatalf("caps = %x/%x", view.Caps(), view.Caps2())
	}
	if len(view.PixelFormatBytes()) != PixelFormatSize {
		t.Fatalf("pixel format block is %d bytes", len(view.PixelFormatBytes()))
	}

	buf[3] = ddsMagicTerminator
	if !view.HasDDSMagic() {
		t.Fatalf("view does not see writes to the buffer")
	}
}

func TestHeaderViewShortBuffer(t *testing.T) {
	t.Parallel()

	if _, err := NewHeaderView(make([]byte, DDSFileHeaderSize-1)); !errors.Is(err, ErrTruncatedContainer) {
		t.Fatalf("expected ErrTruncatedContainer, got %v", err)
	}
}
