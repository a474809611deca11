package main

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin  = 10 // mm
	pdfMaxFont = 64 // points, largest label
)

type rgb struct{ r, g, b int }

// colormaps holds the recognized palettes, cycled per label. Unknown names
// fall back to viridis.
var colormaps = map[string][]rgb{
	"viridis": {
		{68, 1, 84}, {59, 82, 139}, {33, 145, 140}, {94, 201, 98}, {253, 231, 37},
	},
	"Set1": {
		{228, 26, 28}, {55, 126, 184}, {77, 175, 74}, {152, 78, 163}, {255, 127, 0},
	},
}

// PDFRenderer lays the ranked labels out as a weighted word sheet: font
// size scales with frequency between MinFontSize and a fixed maximum, with
// RelativeScaling blending pure frequency against rank position the way the
// classic wordcloud sizing rule does.
type PDFRenderer struct {
	OutputFile string
}

func (r *PDFRenderer) Render(table FrequencyTable, cfg RenderConfig) error {
	entries := rankEntries(table, cfg.MaxWords)
	if len(entries) == 0 {
		return fmt.Errorf("nothing to render: empty frequency table")
	}

	orientation := "P"
	if cfg.Width > cfg.Height {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	if bg, ok := namedColor(cfg.BackgroundColor); ok {
		w, h := pdf.GetPageSize()
		pdf.SetFillColor(bg.r, bg.g, bg.b)
		pdf.Rect(0, 0, w, h, "F")
	}

	palette := colormaps[cfg.Colormap]
	if palette == nil {
		palette = colormaps["viridis"]
	}

	minFont := float64(cfg.MinFontSize)
	if minFont <= 0 {
		minFont = 10
	}
	rs := cfg.RelativeScaling
	if rs < 0 || rs > 1 {
		rs = 0.5
	}

	maxCount := float64(entries[0].Count)
	for i, e := range entries {
		freq := float64(e.Count) / maxCount
		rank := 1 - float64(i)/float64(len(entries))
		weight := rs*freq + (1-rs)*rank

		font := minFont + weight*(pdfMaxFont-minFont)
		color := palette[i%len(palette)]
		pdf.SetFont("Helvetica", "", font)
		pdf.SetTextColor(color.r, color.g, color.b)
		pdf.Write(font*0.45, e.Label+"  ")
	}

	if err := pdf.OutputFileAndClose(r.OutputFile); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", r.OutputFile, err)
	}
	fmt.Printf("Wordcloud PDF saved to %s\n", r.OutputFile)
	return nil
}

func namedColor(name string) (rgb, bool) {
	switch name {
	case "", "white":
		return rgb{}, false // page is already white
	case "black":
		return rgb{0, 0, 0}, true
	case "gray", "grey":
		return rgb{128, 128, 128}, true
	default:
		return rgb{}, false
	}
}
