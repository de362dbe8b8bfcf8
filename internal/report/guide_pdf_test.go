package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/breathe/internal/catalog"
)

func TestWriteGuideProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGuide(&buf, catalog.Default(), catalog.Tips); err != nil {
		t.Fatalf("WriteGuide: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestExportGuideCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", GuideFileName(time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)))
	abs, err := ExportGuide(path, catalog.Default(), nil)
	if err != nil {
		t.Fatalf("ExportGuide: %v", err)
	}
	if filepath.Base(abs) != "breathing_guide_2026-05-04.pdf" {
		t.Fatalf("unexpected file %s", abs)
	}
	info, err := os.Stat(abs)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty file, err=%v", err)
	}
}

func TestHexRGB(t *testing.T) {
	r, g, b := hexRGB("#4FC3F7")
	if r != 0x4f || g != 0xc3 || b != 0xf7 {
		t.Fatalf("hexRGB = %d %d %d", r, g, b)
	}
	if r, g, b := hexRGB("bad"); r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected zero for invalid input")
	}
}
