package engine

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeUploader struct {
	uploads []fakeUpload
	bound   map[uint]uint32
	deleted []uint32
	failing bool
}

type fakeUpload struct {
	width, height int
	alpha         bool
}

func (f *fakeUploader) Upload(pix []byte, width, height int, alpha bool) (uint32, error) {
	if f.failing {
		return 0, fmt.Errorf("upload refused")
	}
	f.uploads = append(f.uploads, fakeUpload{width, height, alpha})
	return uint32(100 + len(f.uploads)), nil
}

func (f *fakeUploader) Bind(unit uint, id uint32) {
	if f.bound == nil {
		f.bound = map[uint]uint32{}
	}
	f.bound[unit] = id
}

func (f *fakeUploader) Delete(ids []uint32) {
	f.deleted = append(f.deleted, ids...)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func writeImage(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, encodePNG(t, img), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func opaqueImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 0, 0xff})
		}
	}
	return img
}

func TestDecodeTextureOpaqueRGB(t *testing.T) {
	pix, w, h, alpha, err := DecodeTexture(bytes.NewReader(encodePNG(t, opaqueImage(4, 3))))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w != 4 || h != 3 {
		t.Errorf("size = %dx%d, want 4x3", w, h)
	}
	if alpha {
		t.Error("opaque image classified as alpha")
	}
	if len(pix) != 4*3*3 {
		t.Errorf("len(pix) = %d, want %d", len(pix), 4*3*3)
	}
}

func TestDecodeTextureAlphaRGBA(t *testing.T) {
	img := opaqueImage(2, 2)
	img.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 0x80})

	pix, _, _, alpha, err := DecodeTexture(bytes.NewReader(encodePNG(t, img)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !alpha {
		t.Error("translucent image classified as opaque")
	}
	if len(pix) != 2*2*4 {
		t.Errorf("len(pix) = %d, want %d", len(pix), 2*2*4)
	}
}

func TestDecodeTextureFlipsVertically(t *testing.T) {
	// 1x2 image: bottom row should come out first
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{0xaa, 0, 0, 0xff}) // top
	img.SetNRGBA(0, 1, color.NRGBA{0xbb, 0, 0, 0xff}) // bottom

	pix, _, _, _, err := DecodeTexture(bytes.NewReader(encodePNG(t, img)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pix[0] != 0xbb {
		t.Errorf("first packed row R = %#x, want bottom row %#x", pix[0], 0xbb)
	}
	if pix[3] != 0xaa {
		t.Errorf("second packed row R = %#x, want top row %#x", pix[3], 0xaa)
	}
}

func TestDecodeTextureRejectsGrayscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	_, _, _, _, err := DecodeTexture(bytes.NewReader(encodePNG(t, img)))
	if err == nil {
		t.Fatal("grayscale image accepted")
	}
	if !strings.Contains(err.Error(), "channel count") {
		t.Errorf("err = %v, want channel count message", err)
	}
}

func TestPackTextureSubimage(t *testing.T) {
	// rows 0..3 carry their index in R; the subimage keeps the parent's
	// pixel buffer and a nonzero Bounds().Min
	parent := image.NewNRGBA(image.Rect(0, 0, 1, 4))
	for y := 0; y < 4; y++ {
		parent.SetNRGBA(0, y, color.NRGBA{uint8(y + 1), 0, 0, 0xff})
	}
	sub := parent.SubImage(image.Rect(0, 1, 1, 3)).(*image.NRGBA)

	pix, w, h, _, err := packTexture(sub)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if w != 1 || h != 2 {
		t.Fatalf("size = %dx%d, want 1x2", w, h)
	}
	// subimage rows are 1 and 2; flipped, row 2 packs first
	if pix[0] != 3 || pix[3] != 2 {
		t.Errorf("packed R per row = %d, %d, want 3, 2", pix[0], pix[3])
	}
}

func TestDecodeTextureBadData(t *testing.T) {
	if _, _, _, _, err := DecodeTexture(strings.NewReader("not an image")); err == nil {
		t.Fatal("garbage input accepted")
	}
}

func TestRegistryLoadAndFind(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewTextureRegistry(up)

	path := writeImage(t, dir, "apple.png", opaqueImage(2, 2))
	if err := r.Load(path, "sphere"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := r.Load(path, "torus"); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := r.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	if got := r.FindUnit("sphere"); got != 0 {
		t.Errorf("FindUnit(sphere) = %d, want 0", got)
	}
	if got := r.FindUnit("torus"); got != 1 {
		t.Errorf("FindUnit(torus) = %d, want 1", got)
	}
	if got := r.FindID("sphere"); got != 101 {
		t.Errorf("FindID(sphere) = %d, want 101", got)
	}
	if got := r.FindUnit("missing"); got != -1 {
		t.Errorf("FindUnit(missing) = %d, want -1", got)
	}
	if got := r.FindID("missing"); got != -1 {
		t.Errorf("FindID(missing) = %d, want -1", got)
	}
}

func TestRegistryDuplicateTagFirstMatch(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewTextureRegistry(up)

	path := writeImage(t, dir, "dup.png", opaqueImage(2, 2))
	if err := r.Load(path, "wood"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := r.Load(path, "wood"); err != nil {
		t.Fatalf("load duplicate: %v", err)
	}

	if got := r.FindUnit("wood"); got != 0 {
		t.Errorf("FindUnit(wood) = %d, want first entry 0", got)
	}
	if got := r.FindID("wood"); got != 101 {
		t.Errorf("FindID(wood) = %d, want first entry 101", got)
	}
}

func TestRegistryLoadFailureLeavesRegistryUnchanged(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewTextureRegistry(up)

	if err := r.Load(filepath.Join(dir, "nope.png"), "ghost"); err == nil {
		t.Fatal("missing file accepted")
	}
	if got := r.Count(); got != 0 {
		t.Errorf("Count() = %d after failed load, want 0", got)
	}

	up.failing = true
	path := writeImage(t, dir, "ok.png", opaqueImage(2, 2))
	if err := r.Load(path, "ghost"); err == nil {
		t.Fatal("failed upload accepted")
	}
	if got := r.Count(); got != 0 {
		t.Errorf("Count() = %d after failed upload, want 0", got)
	}
}

func TestRegistryUnitCap(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewTextureRegistry(up)

	path := writeImage(t, dir, "fill.png", opaqueImage(2, 2))
	for i := 0; i < MaxTextureUnits; i++ {
		if err := r.Load(path, fmt.Sprintf("tex%d", i)); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}
	if err := r.Load(path, "overflow"); err == nil {
		t.Fatal("load past unit cap accepted")
	}
	if got := r.Count(); got != MaxTextureUnits {
		t.Errorf("Count() = %d, want %d", got, MaxTextureUnits)
	}
}

func TestRegistryBindAll(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewTextureRegistry(up)

	path := writeImage(t, dir, "bind.png", opaqueImage(2, 2))
	r.Load(path, "a")
	r.Load(path, "b")
	r.BindAll()

	if up.bound[0] != 101 || up.bound[1] != 102 {
		t.Errorf("bound = %v, want unit 0 -> 101, unit 1 -> 102", up.bound)
	}
}

func TestRegistryReleaseAll(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewTextureRegistry(up)

	path := writeImage(t, dir, "rel.png", opaqueImage(2, 2))
	r.Load(path, "a")
	r.Load(path, "b")
	r.ReleaseAll()

	if len(up.deleted) != 2 {
		t.Fatalf("deleted %d handles, want 2", len(up.deleted))
	}
	if got := r.Count(); got != 0 {
		t.Errorf("Count() = %d after release, want 0", got)
	}
	if got := r.FindUnit("a"); got != -1 {
		t.Errorf("FindUnit(a) = %d after release, want -1", got)
	}

	// units free up for reuse
	if err := r.Load(path, "c"); err != nil {
		t.Fatalf("load after release: %v", err)
	}
	if got := r.FindUnit("c"); got != 0 {
		t.Errorf("FindUnit(c) = %d, want unit 0 reused", got)
	}
}
