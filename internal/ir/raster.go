package ir

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// MaxVal is the per-channel maximum of every in-memory raster.
const MaxVal = 255

// Raster is the intermediate representation passed between the PPM codec,
// the pixel transforms and the format bridge. Pixels are stored as
// interleaved R,G,B bytes (3 bytes per pixel, row-major order, top row first).
type Raster struct {
	Width  int
	Height int
	MaxVal int    // always MaxVal once decoded
	Pixels []byte // len = Width * Height * 3
}

// New allocates a black raster of the given size.
func New(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		MaxVal: MaxVal,
		Pixels: make([]byte, width*height*3),
	}
}

// Validate reports whether the geometry and pixel buffer agree.
func (r *Raster) Validate() error {
	if r == nil {
		return fmt.Errorf("nil raster")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("invalid raster dimensions %dx%d", r.Width, r.Height)
	}
	if r.MaxVal != MaxVal {
		return fmt.Errorf("raster maxval is %d, expected %d", r.MaxVal, MaxVal)
	}
	if want := r.Width * r.Height * 3; len(r.Pixels) != want {
		return fmt.Errorf("expected %d pixel bytes for %dx%d raster, got %d", want, r.Width, r.Height, len(r.Pixels))
	}
	return nil
}

func (r *Raster) offset(x, y int) int {
	return (y*r.Width + x) * 3
}

// At returns the color of the pixel at (x, y).
func (r *Raster) At(x, y int) (red, green, blue uint8) {
	i := r.offset(x, y)
	return r.Pixels[i], r.Pixels[i+1], r.Pixels[i+2]
}

// Set stores a color at (x, y).
func (r *Raster) Set(x, y int, red, green, blue uint8) {
	i := r.offset(x, y)
	r.Pixels[i] = red
	r.Pixels[i+1] = green
	r.Pixels[i+2] = blue
}

// Row returns the interleaved bytes of row y. The slice aliases r.Pixels.
func (r *Raster) Row(y int) []byte {
	stride := r.Width * 3
	return r.Pixels[y*stride : (y+1)*stride]
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	c := *r
	c.Pixels = append([]byte(nil), r.Pixels...)
	return &c
}

// Equal reports whether both rasters have the same geometry and pixels.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Width == o.Width && r.Height == o.Height &&
		r.MaxVal == o.MaxVal && bytes.Equal(r.Pixels, o.Pixels)
}

// Image converts the raster to an opaque *image.RGBA.
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		src := r.Row(y)
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < r.Width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// FromImage converts any image to a raster, dropping alpha. Translucent
// pixels keep their premultiplied color, i.e. they are composited onto black.
func FromImage(img image.Image) (*Raster, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("empty image bounds %v", b)
	}
	r := New(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			r.Set(x-b.Min.X, y-b.Min.Y, c.R, c.G, c.B)
		}
	}
	return r, nil
}
