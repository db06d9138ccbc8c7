package transform

import "github.com/davesmith10/ppmtool/internal/ir"

// BlockSize is the edge length of the blocks used by Pixelate.
const BlockSize = 5

// Pixelate splits r into 5x5 blocks whose centers lie at 2, 7, 12, ... on
// both axes and paints each block with its center pixel.
func Pixelate(r *ir.Raster) *ir.Raster {
	return PixelateBlock(r, BlockSize)
}

// PixelateBlock paints every complete size x size block, anchored at the
// top-left corner, with the source color at its center (offset size/2).
// Partial blocks along the right and bottom edges keep their pixels, so a
// raster smaller than size in either dimension is returned unchanged.
func PixelateBlock(r *ir.Raster, size int) *ir.Raster {
	if size <= 1 {
		return r.Clone()
	}
	fullCols := r.Width / size * size
	fullRows := r.Height / size * size

	return mapRows(r, func(dst []byte, y int) {
		copy(dst, r.Row(y))
		if y >= fullRows {
			return
		}
		center := r.Row(y/size*size + size/2)
		for x := 0; x < fullCols; x++ {
			cx := (x/size*size + size/2) * 3
			copy(dst[x*3:x*3+3], center[cx:cx+3])
		}
	})
}
