package export

import (
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img to path, creating or truncating the file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
