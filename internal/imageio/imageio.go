// Package imageio renders a region.Image into a standard PNG, mirroring
// the reference platform's Pillow-based map export (frombytes + save as
// PNG).
package imageio

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/StoreStation/biomegen/pkg/region"
)

// EncodePNG renders img's packed RGB buffer into a PNG and writes it to w.
func EncodePNG(w io.Writer, img *region.Image) error {
	rgba := ToRGBA(img)
	return png.Encode(w, rgba)
}

// PNGBytes renders img to an in-memory PNG buffer.
func PNGBytes(img *region.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToRGBA expands img's packed 3-byte-per-pixel buffer into a fully
// opaque image.RGBA.
func ToRGBA(img *region.Image) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Depth))
	for z := 0; z < img.Depth; z++ {
		for x := 0; x < img.Width; x++ {
			srcOff := (x + z*img.Width) * 3
			dstOff := rgba.PixOffset(x, z)
			rgba.Pix[dstOff+0] = img.RGB[srcOff+0]
			rgba.Pix[dstOff+1] = img.RGB[srcOff+1]
			rgba.Pix[dstOff+2] = img.RGB[srcOff+2]
			rgba.Pix[dstOff+3] = 0xFF
		}
	}
	return rgba
}
