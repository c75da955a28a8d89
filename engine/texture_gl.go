package engine

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLUploader implements Uploader against the active OpenGL context.
type GLUploader struct{}

func (GLUploader) Upload(pix []byte, width, height int, alpha bool) (uint32, error) {
	if len(pix) == 0 || width <= 0 || height <= 0 {
		return 0, fmt.Errorf("empty texture image")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if alpha {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height),
			0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	} else {
		// 3-byte rows are not 4-aligned for arbitrary widths
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height),
			0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pix))
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

func (GLUploader) Bind(unit uint, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (GLUploader) Delete(ids []uint32) {
	if len(ids) > 0 {
		gl.DeleteTextures(int32(len(ids)), &ids[0])
	}
}
