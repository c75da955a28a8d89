package engine

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/bits-and-blooms/bitset"
)

// MaxTextureUnits is the number of texture units the scene may occupy.
const MaxTextureUnits = 16

// Uploader moves decoded pixels onto the GPU. The registry itself never
// touches GL, which keeps tag bookkeeping testable without a context.
type Uploader interface {
	// Upload creates a texture from tightly packed 8-bit pixels, RGB when
	// alpha is false, RGBA when true, and returns its handle.
	Upload(pix []byte, width, height int, alpha bool) (uint32, error)

	// Bind makes the texture current on the given unit.
	Bind(unit uint, id uint32)

	// Delete frees the given texture handles.
	Delete(ids []uint32)
}

type textureEntry struct {
	tag string
	id  uint32
}

// TextureRegistry loads image files into GPU textures and resolves them by
// tag at draw time. Entries are never mutated after load; the unit an entry
// binds to is its load order.
type TextureRegistry struct {
	uploader Uploader
	entries  []textureEntry
	units    *bitset.BitSet
}

func NewTextureRegistry(uploader Uploader) *TextureRegistry {
	return &TextureRegistry{
		uploader: uploader,
		units:    bitset.New(MaxTextureUnits),
	}
}

// Load decodes the image file at path and registers the uploaded texture
// under tag. Duplicate tags are allowed; lookups resolve in first-match
// order. Failure leaves the registry unchanged.
func (r *TextureRegistry) Load(path, tag string) error {
	unit, ok := r.units.NextClear(0)
	if !ok || unit >= MaxTextureUnits {
		return fmt.Errorf("load texture %q: all %d texture units in use", tag, MaxTextureUnits)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load texture %q: %w", tag, err)
	}
	defer file.Close()

	pix, w, h, alpha, err := DecodeTexture(file)
	if err != nil {
		return fmt.Errorf("load texture %q from %s: %w", tag, path, err)
	}

	id, err := r.uploader.Upload(pix, w, h, alpha)
	if err != nil {
		return fmt.Errorf("load texture %q from %s: %w", tag, path, err)
	}

	r.entries = append(r.entries, textureEntry{tag: tag, id: id})
	r.units.Set(unit)

	log.Printf("loaded texture %q from %s (%dx%d)", tag, path, w, h)
	return nil
}

// BindAll binds every loaded texture to its own unit, unit index matching
// load order.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		r.uploader.Bind(uint(i), e.id)
	}
}

// FindID returns the GPU handle registered under tag, or -1 when the tag
// was never loaded.
func (r *TextureRegistry) FindID(tag string) int32 {
	for _, e := range r.entries {
		if e.tag == tag {
			return int32(e.id)
		}
	}
	return -1
}

// FindUnit returns the texture unit the tag is bound to, or -1 when the
// tag was never loaded.
func (r *TextureRegistry) FindUnit(tag string) int32 {
	for i, e := range r.entries {
		if e.tag == tag {
			return int32(i)
		}
	}
	return -1
}

// Count reports how many textures are registered.
func (r *TextureRegistry) Count() int {
	return len(r.entries)
}

// ReleaseAll frees every texture at once. There is no per-entry release.
func (r *TextureRegistry) ReleaseAll() {
	if len(r.entries) == 0 {
		return
	}
	ids := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.id
	}
	r.uploader.Delete(ids)
	r.entries = nil
	r.units.ClearAll()
}

// DecodeTexture decodes an image into tightly packed 8-bit pixels, flipped
// vertically so row zero is the bottom of the image. Fully opaque images
// pack to RGB, images with alpha to RGBA; anything that maps to neither
// channel count (grayscale and friends) is rejected.
func DecodeTexture(rd io.Reader) (pix []byte, width, height int, alpha bool, err error) {
	img, _, err := image.Decode(rd)
	if err != nil {
		return nil, 0, 0, false, err
	}
	return packTexture(img)
}

// packTexture flattens an image into the flipped, tightly packed pixel
// layout Upload expects.
func packTexture(img image.Image) (pix []byte, width, height int, alpha bool, err error) {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return nil, 0, 0, false, fmt.Errorf("unsupported channel count: 1")
	}

	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	// the flip loop below assumes zero-based bounds, so subimages get
	// copied too
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Bounds().Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	alpha = hasAlpha(nrgba)

	channels := 3
	if alpha {
		channels = 4
	}
	pix = make([]byte, width*height*channels)

	// flip vertically while packing
	for y := 0; y < height; y++ {
		src := nrgba.Pix[(height-1-y)*nrgba.Stride:]
		dst := pix[y*width*channels:]
		for x := 0; x < width; x++ {
			copy(dst[x*channels:], src[x*4:x*4+channels])
		}
	}

	return pix, width, height, alpha, nil
}

func hasAlpha(img *image.NRGBA) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[(y-bounds.Min.Y)*img.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			if row[x*4+3] != 0xff {
				return true
			}
		}
	}
	return false
}
