package render

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/vocab"
)

// PNGRenderer rasterizes the same scene the SVG renderer emits. The font
// face is optional; when present the signature label is drawn into the
// bottom-left corner.
type PNGRenderer struct {
	width    int
	height   int
	fontFace font.Face
}

func NewPNGRenderer(width, height int) (*PNGRenderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas dimensions %dx%d", width, height)
	}
	return &PNGRenderer{width: width, height: height}, nil
}

// SetFontFace enables the signature label.
func (r *PNGRenderer) SetFontFace(face font.Face) { r.fontFace = face }

// LoadFontFace parses a TTF file into a face usable for labels.
func LoadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

// Render rasterizes the element list in the fixed layer order and returns
// encoded PNG bytes.
func (r *PNGRenderer) Render(elements []model.Element, subspecialty model.Subspecialty, ann Annotation) (bytes.Buffer, error) {
	var buf bytes.Buffer

	byKind := make(map[model.ElementKind][]model.Element, len(LayerOrder))
	for _, el := range elements {
		byKind[el.ElementKind()] = append(byKind[el.ElementKind()], el)
	}

	w, h := float64(r.width), float64(r.height)
	style := vocab.SubspecialtyStyle(subspecialty)

	dc := gg.NewContext(r.width, r.height)

	backdrop := gg.NewLinearGradient(0, 0, 0, h)
	backdrop.AddColorStop(0, mustHex(style.Top, 255))
	backdrop.AddColorStop(1, mustHex(style.Bottom, 255))
	dc.SetFillStyle(backdrop)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	for _, kind := range LayerOrder {
		for _, el := range byKind[kind] {
			r.drawElement(dc, el)
		}
	}

	if r.fontFace != nil && ann.Title != "" {
		dc.SetFontFace(r.fontFace)
		dc.SetColor(color.NRGBA{R: 232, G: 238, B: 244, A: 200})
		dc.DrawString(ann.Title, 16, h-16)
	}

	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf, nil
}

func (r *PNGRenderer) drawElement(dc *gg.Context, el model.Element) {
	w, h := float64(r.width), float64(r.height)

	switch v := el.(type) {
	case model.PrecisionGrid:
		if v.Spacing <= 0 {
			return
		}
		dc.SetColor(mustHex(v.Color, alpha(v.Opacity)))
		dc.SetLineWidth(0.5)
		for x := v.Spacing; x < w; x += v.Spacing {
			dc.DrawLine(x, 0, x, h)
			dc.Stroke()
		}
		for y := v.Spacing; y < h; y += v.Spacing {
			dc.DrawLine(0, y, w, y)
			dc.Stroke()
		}
	case model.AtmosphericParticle:
		dc.SetColor(mustHex(v.Color, alpha(v.Opacity)))
		dc.DrawCircle(v.X, v.Y, v.Size)
		dc.Fill()
	case model.EmotionalField:
		dc.SetColor(mustHex(v.Color, alpha(0.18)))
		dc.DrawEllipse(v.X, v.Y, v.Size, v.Size*0.6)
		dc.Fill()
	case model.HealingAura:
		aura := gg.NewRadialGradient(v.X, v.Y, 0, v.X, v.Y, v.Radius)
		aura.AddColorStop(0, mustHex(v.Color, alpha(0.45)))
		aura.AddColorStop(1, mustHex(v.Color, 0))
		dc.SetFillStyle(aura)
		dc.DrawCircle(v.X, v.Y, v.Radius)
		dc.Fill()
	case model.AndryRoot:
		dc.SetLineCapRound()
		dc.SetColor(mustHex(v.Color, 255))
		endX, endY := rootEnd(v.X, v.Y, v.Angle, v.Length)
		dc.SetLineWidth(v.Thickness)
		dc.DrawLine(v.X, v.Y, endX, endY)
		dc.Stroke()
		r.drawRootChildren(dc, v.Branches, endX, endY)
	case model.AndryTrunk:
		dc.SetLineCapRound()
		dc.SetColor(mustHex(v.Color, 255))
		dc.SetLineWidth(v.Thickness)
		dc.DrawLine(v.X, v.Y, v.X, v.Y-v.Height)
		dc.Stroke()
	case model.AndryBranch:
		dc.SetLineCapRound()
		dc.SetColor(mustHex(v.Color, 255))
		dc.SetLineWidth(v.Thickness)
		x2, y2 := branchEnd(v.X, v.Y, v.Angle, v.Length)
		dc.DrawLine(v.X, v.Y, x2, y2)
		dc.Stroke()
	case model.DataFlow:
		dc.SetColor(mustHex(v.Color, alpha(v.Opacity)))
		dc.SetLineWidth(v.Thickness)
		dc.MoveTo(v.Path.X1, v.Path.Y1)
		dc.CubicTo(v.Path.CX1, v.Path.CY1, v.Path.CX2, v.Path.CY2, v.Path.X2, v.Path.Y2)
		dc.Stroke()
	case model.HealingParticle:
		dc.SetColor(mustHex(v.Color, 255))
		dc.DrawCircle(v.X, v.Y, v.Size)
		dc.Fill()
	case model.ResearchStar:
		dc.SetColor(mustHex(v.Color, 255))
		dc.DrawCircle(v.X, v.Y, v.Size)
		dc.Fill()
	}
}

func (r *PNGRenderer) drawRootChildren(dc *gg.Context, branches []model.RootBranch, fromX, fromY float64) {
	for _, child := range branches {
		endX, endY := rootEnd(fromX, fromY, child.Angle, child.Length)
		dc.SetLineWidth(child.Thickness)
		dc.DrawLine(fromX, fromY, endX, endY)
		dc.Stroke()
		r.drawRootChildren(dc, child.Children, endX, endY)
	}
}

// Thumbnail scales a decoded artwork down to a square preview.
func Thumbnail(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// mustHex parses a #RRGGBB color, falling back to white so a malformed
// palette entry degrades visibly instead of failing the render.
func mustHex(s string, a uint8) color.NRGBA {
	r, g, b, err := parseHexRGB(s)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: a}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func parseHexRGB(s string) (r, g, b uint8, err error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("expected 6 hex chars")
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid hex color")
	}
	return raw[0], raw[1], raw[2], nil
}

func alpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(math.Round(opacity * 255))
}
