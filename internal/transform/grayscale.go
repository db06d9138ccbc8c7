package transform

import "github.com/davesmith10/ppmtool/internal/ir"

// Luma weights 0.2989, 0.5870 and 0.1140 scaled to integers. Dividing by
// their sum instead of 10000 keeps gray pixels fixed, so Grayify is
// idempotent.
const (
	weightR   = 2989
	weightG   = 5870
	weightB   = 1140
	weightSum = weightR + weightG + weightB
)

// Intensity returns the truncated weighted luma of an RGB color.
func Intensity(r, g, b uint8) uint8 {
	return uint8((weightR*uint32(r) + weightG*uint32(g) + weightB*uint32(b)) / weightSum)
}

// Grayify converts every pixel to (I, I, I) where I is its Intensity.
func Grayify(r *ir.Raster) *ir.Raster {
	return mapRows(r, func(dst []byte, y int) {
		row := r.Row(y)
		for i := 0; i < len(row); i += 3 {
			v := Intensity(row[i], row[i+1], row[i+2])
			dst[i], dst[i+1], dst[i+2] = v, v, v
		}
	})
}
