package icon

import (
	"image"
	imgcolor "image/color"
)

// circleMask returns a size×size alpha mask that is opaque for every pixel
// whose centre lies within r of (cx, cy) and transparent elsewhere.
func circleMask(size int, cx, cy, r float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		dy := float64(y) + 0.5 - cy
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r*r {
				mask.SetAlpha(x, y, imgcolor.Alpha{A: 0xff})
			}
		}
	}
	return mask
}

// putAlpha copies img into a straight-alpha image and replaces its alpha
// channel with mask. Colour channels are kept as they are.
func putAlpha(img image.Image, mask *image.Alpha) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := imgcolor.NRGBAModel.Convert(img.At(x, y)).(imgcolor.NRGBA)
			c.A = mask.AlphaAt(x, y).A
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
