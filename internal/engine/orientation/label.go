package orientation

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PaintLabel renders name centered in black on a white size×size image.
// The bitmap face is drawn small and scaled up to fill most of the width.
func PaintLabel(name string, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if name == "" || size <= 0 {
		return dst
	}

	face := basicfont.Face7x13
	metrics := face.Metrics()
	textW := font.MeasureString(face, name).Ceil()
	textH := metrics.Height.Ceil()

	small := image.NewRGBA(image.Rect(0, 0, textW+2, textH+2))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(1, 1+metrics.Ascent.Ceil()),
	}
	d.DrawString(name)

	sw, sh := float64(small.Bounds().Dx()), float64(small.Bounds().Dy())
	scale := min(float64(size)*0.8/sw, float64(size)*0.35/sh)
	w, h := int(sw*scale), int(sh*scale)
	x0, y0 := (size-w)/2, (size-h)/2

	draw.ApproxBiLinear.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), small, small.Bounds(), draw.Src, nil)
	return dst
}
