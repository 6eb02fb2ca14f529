package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const thumbnailMaxDim = 320

// Thumbnail decodifica uma imagem de referência (jpeg/png/webp) e gera uma
// miniatura webp com no máximo 320px no maior lado. Imagens menores
// que o limite só são reencodadas.
func Thumbnail(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > thumbnailMaxDim || h > thumbnailMaxDim {
		if w >= h {
			h = h * thumbnailMaxDim / w
			w = thumbnailMaxDim
		} else {
			w = w * thumbnailMaxDim / h
			h = thumbnailMaxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ThumbnailKey deriva a chave da miniatura a partir da chave original.
func ThumbnailKey(key string) string {
	return key + ".thumb.webp"
}
