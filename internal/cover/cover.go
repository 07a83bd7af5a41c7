// Package cover renders the book cover: a generated design when no custom
// image is supplied, or an edition-label overlay on top of a supplied one.
package cover

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/fogleman/gg"
)

const (
	coverW = 1600
	coverH = 2400

	background = "#151A26"
	accent     = "#F7A501" // PostHog amber
	gridLine   = "#1A2030"
)

// Generate renders the default cover from scratch and returns it as PNG.
// The label goes into the build-info line at the bottom.
func Generate(label string) ([]byte, error) {
	dc := gg.NewContext(coverW, coverH)
	dc.SetHexColor(background)
	dc.Clear()

	// Subtle horizontal grid texture.
	dc.SetHexColor(gridLine)
	dc.SetLineWidth(1)
	for y := 0; y < coverH; y += 80 {
		dc.DrawLine(0, float64(y), coverW, float64(y))
		dc.Stroke()
	}

	drawHedgehog(dc, coverW/2, 580, 280)

	// Accent rules above and below the title block.
	dc.SetHexColor(accent)
	dc.SetLineWidth(4)
	dc.DrawLine(200, 860, coverW-200, 860)
	dc.Stroke()
	dc.DrawLine(200, 1420, coverW-200, 1420)
	dc.Stroke()

	dc.SetFontFace(face(true, 130))
	dc.SetHexColor("#FFFFFF")
	dc.DrawStringAnchored("The PostHog", coverW/2, 1010, 0.5, 0.5)
	dc.DrawStringAnchored("Handbook", coverW/2, 1170, 0.5, 0.5)

	dc.SetFontFace(face(false, 56))
	dc.SetHexColor("#9CA3AF")
	dc.DrawStringAnchored("How we work", coverW/2, 1340, 0.5, 0.5)

	dc.SetFontFace(face(false, 36))
	dc.SetHexColor("#6B7280")
	descLines := []string{
		"Strategy · Values · Culture",
		"Engineering · Product · Growth",
		"People · Operations · Content",
	}
	for i, line := range descLines {
		dc.DrawStringAnchored(line, coverW/2, float64(1520+i*60), 0.5, 0.5)
	}

	dc.SetFontFace(face(true, 48))
	dc.SetHexColor("#FFFFFF")
	dc.DrawStringAnchored("PostHog", coverW/2, 1875, 0.5, 0.5)

	dc.SetFontFace(face(false, 28))
	dc.SetHexColor("#4B5563")
	dc.DrawStringAnchored("Auto-generated from source · "+label, coverW/2, 2295, 0.5, 0.5)

	// Accent bars top and bottom.
	dc.SetHexColor(accent)
	dc.DrawRectangle(0, 0, coverW, 12)
	dc.Fill()
	dc.DrawRectangle(0, coverH-12, coverW, 12)
	dc.Fill()

	return encodePNG(dc)
}

// Overlay draws the book title and edition label into the empty top area of
// a custom cover image and returns the composite as PNG.
func Overlay(path, label string) ([]byte, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load cover %s: %w", path, err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dc := gg.NewContext(w, h)
	dc.DrawImage(img, 0, 0)

	fw, fh := float64(w), float64(h)

	dc.SetFontFace(face(true, fw/12))
	dc.SetHexColor("#FFFFFF")
	y := fh * 0.04
	for _, line := range []string{"The PostHog", "Handbook"} {
		_, th := dc.MeasureString(line)
		dc.DrawStringAnchored(line, fw/2, y+th/2, 0.5, 0.5)
		y += th + fh*0.015
	}

	y += fh * 0.01
	dc.SetFontFace(face(false, fw/22))
	dc.SetHexColor(accent)
	_, th := dc.MeasureString(label)
	dc.DrawStringAnchored(label, fw/2, y+th/2, 0.5, 0.5)

	return encodePNG(dc)
}

// drawHedgehog draws the geometric hedgehog motif: radiating spines over the
// top half, with a filled body, eye and nose.
func drawHedgehog(dc *gg.Context, cx, cy, radius float64) {
	const spines = 24
	for i := 0; i < spines; i++ {
		// 180 to 360 degrees, so spines only cover the hedgehog's back.
		angle := math.Pi + math.Pi*float64(i)/float64(spines-1)
		spineLen := radius
		if i%2 == 0 {
			spineLen += 40
		}
		innerR := radius * 0.45

		x1 := cx + innerR*math.Cos(angle)
		y1 := cy + innerR*math.Sin(angle)
		x2 := cx + spineLen*math.Cos(angle)
		y2 := cy + spineLen*math.Sin(angle)

		// Center spines are brighter and thicker.
		dist := math.Abs(float64(i-spines/2)) / float64(spines/2)
		switch {
		case dist < 0.3:
			dc.SetHexColor(accent)
			dc.SetLineWidth(6)
		case dist < 0.6:
			dc.SetHexColor("#D48B01")
			dc.SetLineWidth(5)
		default:
			dc.SetHexColor("#8B6914")
			dc.SetLineWidth(4)
		}
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	// Body.
	dc.SetHexColor("#2A3040")
	dc.DrawEllipse(cx, cy+radius*0.15, radius*0.5, radius*0.3)
	dc.FillPreserve()
	dc.SetHexColor("#3A4050")
	dc.SetLineWidth(2)
	dc.Stroke()

	// Eye.
	dc.SetHexColor("#FFFFFF")
	dc.DrawEllipse(cx-22.5, cy+22.5, 12.5, 12.5)
	dc.Fill()
	dc.SetHexColor(background)
	dc.DrawEllipse(cx-22.5, cy+22.5, 7.5, 7.5)
	dc.Fill()

	// Nose.
	dc.SetHexColor("#1A1A1A")
	dc.DrawEllipse(cx-51, cy+29, 9, 9)
	dc.Fill()
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode cover: %w", err)
	}
	return buf.Bytes(), nil
}
