package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	xwebp "golang.org/x/image/webp"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestThumbnailDownscalesLargeImage(t *testing.T) {
	data := pngBytes(t, 800, 600)

	thumb, err := Thumbnail(data)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	img, err := xwebp.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 320 {
		t.Errorf("width = %d, want 320", bounds.Dx())
	}
	if bounds.Dy() != 240 {
		t.Errorf("height = %d, want 240", bounds.Dy())
	}
}

func TestThumbnailKeepsSmallImageSize(t *testing.T) {
	data := pngBytes(t, 100, 50)

	thumb, err := Thumbnail(data)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	img, err := xwebp.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 50 {
		t.Errorf("size = %dx%d, want 100x50", bounds.Dx(), bounds.Dy())
	}
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	if _, err := Thumbnail([]byte("definitely not an image")); err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestThumbnailKey(t *testing.T) {
	if got := ThumbnailKey("7/123-abc.png"); got != "7/123-abc.png.thumb.webp" {
		t.Errorf("ThumbnailKey = %q", got)
	}
}
