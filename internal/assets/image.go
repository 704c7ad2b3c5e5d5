package assets

import (
	"bytes"
	"fmt"
	"image"
	"path"
	"strings"

	// Registered decoders.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/Faultbox/hillscene/internal/engine/texture"
)

// LoadImage decodes a jpeg, png, bmp or tga asset into RGBA.
// With flip set the rows are reversed for OpenGL upload.
func (l *Loader) LoadImage(name string, flip bool) (*image.RGBA, error) {
	data, err := l.Read(name)
	if err != nil {
		return nil, err
	}

	img, err := decodeImage(data, CleanPath(name))
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("empty image")}
	}

	return texture.ImageToRGBA(img, flip), nil
}

func decodeImage(data []byte, name string) (image.Image, error) {
	if strings.EqualFold(path.Ext(name), ".tga") {
		return texture.DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
