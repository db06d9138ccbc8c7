// Package imageio moves rasters between plain PPM and the common raster
// formats understood by the image package and its extensions.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	pnm "github.com/jbuchbinder/gopnm"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/davesmith10/ppmtool/internal/ir"
	"github.com/davesmith10/ppmtool/internal/ppm"
)

// Format is an export target.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	PNM  Format = "pnm" // binary netpbm
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "pnm":
		return PNM, nil
	default:
		return "", fmt.Errorf("unsupported format: %q (use png, jpeg, gif, bmp, tiff, pnm)", s)
	}
}

// FormatFromPath picks a Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer format from %q: no extension", path)
	}
	return ParseFormat(ext)
}

// ExportOptions controls Export.
type ExportOptions struct {
	MaxDim  int // shrink so neither side exceeds MaxDim (0 = keep size)
	Quality int // JPEG quality 1-100 (0 = jpeg.DefaultQuality)
}

// Export encodes r in the given format.
func Export(r *ir.Raster, format Format, opts ExportOptions) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var img image.Image = r.Image()
	if opts.MaxDim > 0 {
		img = resize.Thumbnail(uint(opts.MaxDim), uint(opts.MaxDim), img, resize.NearestNeighbor)
	}

	out := new(bytes.Buffer)
	var err error
	switch format {
	case PNG:
		err = png.Encode(out, img)
	case JPEG:
		quality := opts.Quality
		if quality == 0 {
			quality = jpeg.DefaultQuality
		}
		if quality < 1 || quality > 100 {
			return nil, fmt.Errorf("JPEG quality %d out of range (1-100)", quality)
		}
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: quality})
	case GIF:
		err = gif.Encode(out, img, nil)
	case BMP:
		err = bmp.Encode(out, img)
	case TIFF:
		err = tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate})
	case PNM:
		err = pnm.Encode(out, img, pnm.PPM)
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}
	return out.Bytes(), nil
}

// Import decodes an image in any registered format into a raster. Plain
// PPM input goes through the strict ppm decoder. The returned string names
// the detected format.
func Import(data []byte) (*ir.Raster, string, error) {
	if isPlainPPM(data) {
		r, err := ppm.Decode(data)
		if err != nil {
			return nil, "", err
		}
		return r, "ppm", nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	r, err := ir.FromImage(img)
	if err != nil {
		return nil, "", err
	}
	return r, format, nil
}

// isPlainPPM reports whether data starts with the P3 magic number. Header
// errors past the magic are left for ppm.Decode to report.
func isPlainPPM(data []byte) bool {
	_, err := ppm.Info(data)
	return !errors.Is(err, ppm.ErrBadMagic)
}
