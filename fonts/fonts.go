package fonts

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Body  FontName = "body"
	Title FontName = "title"
)

// Every name draws the 7x13 bitmap face, scaled up by an integer factor so
// the pixels stay crisp.
var (
	face   = text.NewGoXFace(basicfont.Face7x13)
	scales = map[FontName]float64{
		Body:  1,
		Title: 3,
	}
)

func (f FontName) Get() text.Face {
	return face
}

// Scale is the factor the face is drawn at. Unknown names draw at 1.
func (f FontName) Scale() float64 {
	if s, ok := scales[f]; ok {
		return s
	}
	return 1
}

// Width is the drawn width of s in pixels.
func (f FontName) Width(s string) float64 {
	w, _ := text.Measure(s, face, 0)
	return w * f.Scale()
}

// DrawCentered draws s with its top edge at y, centred on cx.
func DrawCentered(dst *ebiten.Image, s string, name FontName, cx, y float64, clr color.Color) {
	scale := name.Scale()
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-name.Width(s)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, name.Get(), op)
}
