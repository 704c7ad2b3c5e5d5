// Package texture provides image decoding and pixel conversion for GPU upload.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

var errTGATruncated = errors.New("TGA data truncated")

// DecodeTGA decodes an uncompressed or RLE compressed true-color TGA file (24 or 32 bpp).
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	// Bit 5 of the descriptor: rows stored top to bottom.
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty TGA image %dx%d", width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	r := &tgaReader{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		bytesPP:     bpp / 8,
		topToBottom: topToBottom,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = r.readRaw(width * height)
	} else {
		err = r.readRLE()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

type tgaReader struct {
	img         *image.RGBA
	src         []byte
	pos         int
	pixel       int
	bytesPP     int
	topToBottom bool
}

// next reads one BGR(A) pixel.
func (r *tgaReader) next() (color.RGBA, error) {
	if r.pos+r.bytesPP > len(r.src) {
		return color.RGBA{}, errTGATruncated
	}
	p := r.src[r.pos : r.pos+r.bytesPP]
	r.pos += r.bytesPP
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bytesPP == 4 {
		c.A = p[3]
	}
	return c, nil
}

// put writes c at the current pixel and advances.
func (r *tgaReader) put(c color.RGBA) {
	w := r.img.Rect.Dx()
	h := r.img.Rect.Dy()
	x, y := r.pixel%w, r.pixel/w
	if !r.topToBottom {
		y = h - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.pixel++
}

func (r *tgaReader) total() int {
	return r.img.Rect.Dx() * r.img.Rect.Dy()
}

func (r *tgaReader) readRaw(count int) error {
	for i := 0; i < count && r.pixel < r.total(); i++ {
		c, err := r.next()
		if err != nil {
			return err
		}
		r.put(c)
	}
	return nil
}

func (r *tgaReader) readRLE() error {
	for r.pixel < r.total() {
		if r.pos >= len(r.src) {
			return errTGATruncated
		}
		packet := r.src[r.pos]
		r.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 == 0 {
			if err := r.readRaw(count); err != nil {
				return err
			}
			continue
		}

		// Run-length packet: one pixel repeated count times.
		c, err := r.next()
		if err != nil {
			return err
		}
		for i := 0; i < count && r.pixel < r.total(); i++ {
			r.put(c)
		}
	}
	return nil
}
