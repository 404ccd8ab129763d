package report

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signintech/gopdf"
)

func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func testSummary() Summary {
	return Summary{
		RecordID:   42,
		Name:       "ARSHAD JAVED ALAM",
		Age:        25,
		Gender:     "F",
		Systolic:   120,
		Diastolic:  80,
		BMI:        22.0,
		HeartRate:  72,
		SleepHours: 7,
		Prediction: "Normal",
		Tips:       "Your body temperature is normal. Keep maintaining healthy habits!",
		Diet:       "Balanced diet with fruits, vegetables, protein, and water.",
		Exercise:   "Regular moderate exercise is good for health.",
	}
}

func systemFontAvailable() bool {
	for _, p := range NewBuilder("").fontPaths {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

func TestFileName_EmbedsRecordID(t *testing.T) {
	name := fileName(42)
	if !strings.HasPrefix(name, "patient_summary_42_") {
		t.Errorf("expected record id prefix, got %s", name)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("expected .pdf suffix, got %s", name)
	}
}

func TestFileName_UniquePerCall(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := fileName(7)
		if seen[n] {
			t.Fatalf("duplicate report filename %s", n)
		}
		seen[n] = true
	}
}

func TestBuild_NoFont(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir)
	b.SetFontPaths([]string{filepath.Join(dir, "missing.ttf")})

	charts := ChartPaths{
		Distribution: writeTestPNG(t, dir, "dist.png"),
		BPTrend:      writeTestPNG(t, dir, "bp.png"),
		BMIHeartRate: writeTestPNG(t, dir, "bmi.png"),
	}

	_, err := b.Build(testSummary(), charts)
	if !errors.Is(err, ErrBuild) {
		t.Fatalf("expected ErrBuild, got %v", err)
	}
}

func TestWriter_TextErrorStopsLayout(t *testing.T) {
	// Writing text without a loaded font fails inside gopdf; the writer must
	// capture that instead of dropping it and silently emitting blank lines.
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	w := writer{pdf: &pdf}
	w.line("Name: test")
	if w.err == nil {
		t.Fatal("expected error from text written without a font")
	}

	first := w.err
	w.heading(12, "Charts")
	w.wrapped("Tips: rest")
	if w.err != first {
		t.Errorf("expected first error to be kept, got %v", w.err)
	}
}

func TestBuild_WritesPDF(t *testing.T) {
	if !systemFontAvailable() {
		t.Skip("no DejaVuSans font installed")
	}

	dir := t.TempDir()
	b := NewBuilder(dir)
	charts := ChartPaths{
		Distribution: writeTestPNG(t, dir, "dist.png"),
		BPTrend:      writeTestPNG(t, dir, "bp.png"),
		BMIHeartRate: writeTestPNG(t, dir, "bmi.png"),
	}

	out, err := b.Build(testSummary(), charts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report file is empty")
	}
	if !strings.Contains(filepath.Base(out), "patient_summary_42_") {
		t.Errorf("unexpected report name %s", out)
	}
}

func TestBuild_MissingChartImage(t *testing.T) {
	if !systemFontAvailable() {
		t.Skip("no DejaVuSans font installed")
	}

	dir := t.TempDir()
	b := NewBuilder(dir)
	charts := ChartPaths{
		Distribution: filepath.Join(dir, "missing.png"),
		BPTrend:      writeTestPNG(t, dir, "bp.png"),
		BMIHeartRate: writeTestPNG(t, dir, "bmi.png"),
	}

	if _, err := b.Build(testSummary(), charts); !errors.Is(err, ErrBuild) {
		t.Fatalf("expected ErrBuild, got %v", err)
	}
}
