// Package dominant extracts the most frequent color of an image.
package dominant

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/mcuc-cli/mcuc/argb"
	"github.com/mcuc-cli/mcuc/filesystem"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SampleSize is the edge length images are resampled to before counting.
const SampleSize = 16

// ErrNotImage is returned for files whose content is not a recognized image.
var ErrNotImage = errors.New("not an image")

// FromFile decodes the image at path and returns its dominant color.
func FromFile(path string) (argb.ARGB, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read image: %w", err)
	}

	return FromBytes(data)
}

// FromBytes decodes an encoded image and returns its dominant color.
func FromBytes(data []byte) (argb.ARGB, error) {
	if !filetype.IsImage(data) {
		return 0, ErrNotImage
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		kind, _ := filetype.Match(data)
		return 0, fmt.Errorf("decode %s image: %w", kind.Extension, err)
	}

	return FromImage(img), nil
}

// FromImage resamples img to SampleSize x SampleSize and returns the color that
// occurs most often. Ties go to the color seen first in row-major order; an
// empty image yields black.
func FromImage(img image.Image) argb.ARGB {
	if img.Bounds().Empty() {
		return argb.Black
	}

	sample := transform.Resize(img, SampleSize, SampleSize, transform.Box)

	var (
		counts = make(map[argb.ARGB]int)
		order  []argb.ARGB
	)

	b := sample.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := argb.FromColor(sample.At(x, y))
			if _, seen := counts[c]; !seen {
				order = append(order, c)
			}
			counts[c]++
		}
	}

	dominant, best := argb.Black, 0
	for _, c := range order {
		if counts[c] > best {
			dominant, best = c, counts[c]
		}
	}
	return dominant
}
