package texture

import (
	"image"
	"image/draw"
)

// ImageToRGBA converts any image.Image to a tightly packed *image.RGBA with origin (0,0).
// If flip is true, rows are reversed so the first row is the bottom of the image,
// which is the order OpenGL expects for texture uploads.
func ImageToRGBA(img image.Image, flip bool) *image.RGBA {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) || rgba.Stride != 4*bounds.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	} else if flip {
		// Don't modify the caller's image.
		cp := image.NewRGBA(rgba.Rect)
		copy(cp.Pix, rgba.Pix)
		rgba = cp
	}

	if flip {
		FlipVertical(rgba)
	}
	return rgba
}

// FlipVertical reverses the row order of img in place.
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Checker builds a two-color checkerboard, used as a stand-in texture and by procedural sky faces.
func Checker(size, cells int, a, b [4]uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cells < 1 {
		cells = 1
	}
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			i := img.PixOffset(x, y)
			copy(img.Pix[i:i+4], c[:])
		}
	}
	return img
}

// VerticalGradient fills an image from top to bottom with a linear blend of two colors.
func VerticalGradient(size int, top, bottom [4]uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		t := float32(y) / float32(max(size-1, 1))
		var c [4]uint8
		for k := 0; k < 4; k++ {
			c[k] = uint8(float32(top[k])*(1-t) + float32(bottom[k])*t + 0.5)
		}
		for x := 0; x < size; x++ {
			i := img.PixOffset(x, y)
			copy(img.Pix[i:i+4], c[:])
		}
	}
	return img
}
