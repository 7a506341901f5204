package atlas

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"github.com/matzehuels/hexatlas/pkg/errors"
)

// OutputSuffix is appended to the palette base name to form the output file.
const OutputSuffix = "-cta.png"

// OutputName returns the atlas file name for a palette base name.
func OutputName(base string) string {
	return base + OutputSuffix
}

// EncodePNG encodes the canvas as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode atlas")
	}
	return buf.Bytes(), nil
}

// WriteFile writes encoded atlas bytes to path.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
