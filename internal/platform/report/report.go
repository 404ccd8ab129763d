// Package report composes the downloadable patient summary PDF from one
// submission and its three chart images.
package report

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/signintech/gopdf"
)

// ErrBuild is returned when chart embedding or document composition fails.
// The failure is recoverable: the assessment results remain valid, only the
// report artifact is withheld.
var ErrBuild = errors.New("report build failed")

// Summary carries the fields of one submission that appear in the report.
type Summary struct {
	RecordID   int64 // 0 when the submission was not persisted
	Name       string
	Age        int
	Gender     string
	Systolic   int
	Diastolic  int
	BMI        float64
	HeartRate  int
	SleepHours float64
	Prediction string
	Tips       string
	Diet       string
	Exercise   string
}

// ChartPaths are the three chart images embedded in the report, in their
// fixed order.
type ChartPaths struct {
	Distribution string
	BPTrend      string
	BMIHeartRate string
}

// Builder writes patient summary PDFs into a target directory.
type Builder struct {
	dir       string
	fontPaths []string
}

// NewBuilder creates a Builder that writes into dir. The DejaVuSans font is
// resolved from the usual system locations at build time.
func NewBuilder(dir string) *Builder {
	return &Builder{
		dir: dir,
		fontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
	}
}

// SetFontPaths overrides the candidate font locations.
func (b *Builder) SetFontPaths(paths []string) {
	b.fontPaths = paths
}

const (
	marginX    = 40.0
	pageBottom = 800.0
	lineH      = 14.0
)

// Build composes the summary document and returns the path of the written
// PDF. The filename embeds the record id and a random token, so concurrent
// submissions can never collide on a same-second timestamp.
func (b *Builder) Build(s Summary, charts ChartPaths) (string, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := b.loadFont(&pdf); err != nil {
		return "", err
	}

	w := writer{pdf: &pdf}
	w.heading(16, "Health Check-up Summary")
	w.space(10)

	w.heading(12, "Patient Information")
	w.line(fmt.Sprintf("Name: %s", s.Name))
	w.line(fmt.Sprintf("Age: %d", s.Age))
	w.line(fmt.Sprintf("Gender: %s", s.Gender))
	w.line(fmt.Sprintf("Systolic: %d", s.Systolic))
	w.line(fmt.Sprintf("Diastolic: %d", s.Diastolic))
	w.line(fmt.Sprintf("BMI: %.1f", s.BMI))
	w.line(fmt.Sprintf("HeartRate: %d", s.HeartRate))
	w.line(fmt.Sprintf("SleepHours: %g", s.SleepHours))
	w.space(8)

	w.heading(12, "Predicted Temperature Category")
	w.line(s.Prediction)
	w.space(5)

	w.heading(12, "Health Recommendations")
	w.wrapped(fmt.Sprintf("Tips: %s", s.Tips))
	w.wrapped(fmt.Sprintf("Diet: %s", s.Diet))
	w.wrapped(fmt.Sprintf("Exercise: %s", s.Exercise))
	w.space(5)

	w.heading(12, "Charts")
	w.image(charts.Distribution, 300, 300)
	w.image(charts.BPTrend, 500, 250)
	w.image(charts.BMIHeartRate, 500, 250)
	if w.err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuild, w.err)
	}

	out := filepath.Join(b.dir, fileName(s.RecordID))
	if err := pdf.WritePdf(out); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", ErrBuild, out, err)
	}
	return out, nil
}

// fileName names a report after the persisted record id plus a random token.
// Timestamps alone are not collision-safe for concurrent same-second
// submissions.
func fileName(recordID int64) string {
	return fmt.Sprintf("patient_summary_%d_%s.pdf", recordID, uuid.NewString())
}

func (b *Builder) loadFont(pdf *gopdf.GoPdf) error {
	var lastErr error
	for _, path := range b.fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("%w: no usable TTF font (install ttf-dejavu): %v", ErrBuild, lastErr)
}

// writer tracks the cursor and the first error while laying out the page.
// Every gopdf call that can fail feeds w.err, and once set, later calls are
// skipped so Build reports the first failure.
type writer struct {
	pdf *gopdf.GoPdf
	err error
}

func (w *writer) heading(size float64, text string) {
	if w.err != nil {
		return
	}
	if w.err = w.pdf.SetFont("DejaVu", "", size); w.err != nil {
		return
	}
	w.pdf.SetX(marginX)
	if w.err = w.pdf.Cell(nil, text); w.err != nil {
		return
	}
	w.pdf.Br(size + 6)
}

func (w *writer) line(text string) {
	if w.err != nil {
		return
	}
	if w.err = w.pdf.SetFont("DejaVu", "", 11); w.err != nil {
		return
	}
	w.pdf.SetX(marginX)
	if w.err = w.pdf.Cell(nil, text); w.err != nil {
		return
	}
	w.pdf.Br(lineH)
}

func (w *writer) wrapped(text string) {
	if w.err != nil {
		return
	}
	if w.err = w.pdf.SetFont("DejaVu", "", 11); w.err != nil {
		return
	}
	lines, err := w.pdf.SplitText(text, 500)
	if err != nil {
		lines = []string{text}
	}
	for _, l := range lines {
		w.pdf.SetX(marginX)
		if w.err = w.pdf.Cell(nil, l); w.err != nil {
			return
		}
		w.pdf.Br(lineH)
	}
}

func (w *writer) space(h float64) {
	if w.err != nil {
		return
	}
	w.pdf.Br(h)
}

func (w *writer) image(path string, width, height float64) {
	if w.err != nil {
		return
	}
	if w.pdf.GetY()+height > pageBottom {
		w.pdf.AddPage()
		w.pdf.SetY(40)
	}
	y := w.pdf.GetY()
	if err := w.pdf.Image(path, marginX, y, &gopdf.Rect{W: width, H: height}); err != nil {
		w.err = fmt.Errorf("embed image %s: %v", path, err)
		return
	}
	w.pdf.SetY(y + height + 10)
}
