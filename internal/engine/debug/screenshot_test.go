package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "hillscene")
	sc.Now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 15, 250e6, time.UTC) }

	want := filepath.Join("shots", "hillscene_2024-05-01_12-30-15.250.png")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %s, want %s", got, want)
	}

	sc.SetOutputDir("")
	if got := sc.GenerateFilename(); got != "hillscene_2024-05-01_12-30-15.250.png" {
		t.Errorf("GenerateFilename() without dir = %s", got)
	}
}

func TestCaptureFromImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	sc := NewScreenshotCapture(dir, "test")

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 1, color.RGBA{R: 255, A: 255})

	path, err := sc.CaptureFromImage(img)
	if err != nil {
		t.Fatalf("CaptureFromImage error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("saved to %s, want directory %s", path, dir)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
	if r, _, _, _ := decoded.At(2, 1).RGBA(); r>>8 != 255 {
		t.Errorf("pixel (2,1) red = %d, want 255", r>>8)
	}
}
