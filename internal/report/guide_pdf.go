// Package report renders the printable practice guide.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/breathe/internal/catalog"
	"github.com/go-pdf/fpdf"
)

// GuideFileName is the default name of the exported guide.
func GuideFileName(now time.Time) string {
	return fmt.Sprintf("breathing_guide_%s.pdf", now.Format("2006-01-02"))
}

// WriteGuide renders every catalog entry and the practice tips to w.
func WriteGuide(w io.Writer, c *catalog.Catalog, tips []string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Breathing Techniques", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "Breathing Techniques")
	pdf.Ln(12)

	for _, e := range c.Entries() {
		r, g, b := hexRGB(e.Color)
		pdf.SetTextColor(r, g, b)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 8, e.Technique.Name)
		pdf.Ln(8)

		pdf.SetTextColor(60, 60, 60)
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 6, fmt.Sprintf("%s (cycle %s)", e.Pattern, e.Technique.Cycle()))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, e.Description, "", "", false)
		for _, benefit := range e.Benefits {
			pdf.Cell(0, 6, "  - "+benefit)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(tips) > 0 {
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 8, "Tips for Better Practice")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, tip := range tips {
			pdf.Cell(0, 6, "  - "+tip)
			pdf.Ln(6)
		}
	}
	return pdf.Output(w)
}

// ExportGuide writes the guide to path, creating its directory, and returns
// the absolute path written.
func ExportGuide(path string, c *catalog.Catalog, tips []string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create guide: %w", err)
	}
	if err := WriteGuide(f, c, tips); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("render guide: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close guide: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if len(hex) != 6 {
		return 0, 0, 0
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
