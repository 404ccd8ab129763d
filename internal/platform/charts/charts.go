// Package charts renders the temporary PNG images embedded in patient
// summary reports: the week's category distribution, the blood-pressure
// trend, and the BMI/heart-rate trend.
package charts

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/vitaldash/vitaldash/internal/platform/classifier"
)

// Week is a synthesized week of readings centred on one submission. Only the
// last day is a real measurement; the rest give the trend charts something to
// plot, mirroring how the dashboard has always presented single submissions.
type Week struct {
	Categories []classifier.Category
	Systolic   []float64
	Diastolic  []float64
	BMI        []float64
	HeartRate  []float64
}

// Set holds the paths of the three rendered chart files for one assessment.
// The files are temporary; callers own their removal.
type Set struct {
	Distribution string
	BPTrend      string
	BMIHeartRate string
}

// Remove deletes the chart files. Missing files are ignored so Remove is safe
// on every exit path, including after partial failures.
func (s *Set) Remove() {
	for _, p := range []string{s.Distribution, s.BPTrend, s.BMIHeartRate} {
		if p != "" {
			os.Remove(p)
		}
	}
}

// Renderer produces chart PNGs into dir (the OS temp dir when empty). One
// Renderer serves every request, so access to rnd is serialized: *rand.Rand
// is not safe for concurrent use.
type Renderer struct {
	dir string

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{
		dir: dir,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var allCategories = []classifier.Category{
	classifier.CategoryLow,
	classifier.CategoryNormal,
	classifier.CategoryHigh,
}

// SynthesizeWeek builds seven days of readings around the submitted vitals:
// six random prior-day categories plus today's prediction, and small jitters
// on the numeric series (±5 mmHg systolic, ±3 diastolic, ±1.0 BMI, ±5 bpm).
func (r *Renderer) SynthesizeWeek(category classifier.Category, systolic, diastolic int, bmi float64, heartRate int) Week {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := Week{
		Categories: make([]classifier.Category, 0, 7),
		Systolic:   make([]float64, 7),
		Diastolic:  make([]float64, 7),
		BMI:        make([]float64, 7),
		HeartRate:  make([]float64, 7),
	}
	for i := 0; i < 6; i++ {
		w.Categories = append(w.Categories, allCategories[r.rnd.Intn(len(allCategories))])
	}
	w.Categories = append(w.Categories, category)

	for i := 0; i < 7; i++ {
		w.Systolic[i] = float64(systolic + r.rnd.Intn(11) - 5)
		w.Diastolic[i] = float64(diastolic + r.rnd.Intn(7) - 3)
		w.BMI[i] = bmi + r.rnd.Float64()*2 - 1
		w.HeartRate[i] = float64(heartRate + r.rnd.Intn(11) - 5)
	}
	return w
}

// Render draws all three charts for the given week and returns their paths.
// On any failure the already-written files are removed before returning.
func (r *Renderer) Render(patientName string, w Week) (*Set, error) {
	set := &Set{}

	var err error
	if set.Distribution, err = r.renderDistribution(patientName, w.Categories); err == nil {
		if set.BPTrend, err = r.renderBPTrend(w.Systolic, w.Diastolic); err == nil {
			set.BMIHeartRate, err = r.renderBMIHeartRate(w.BMI, w.HeartRate)
		}
	}
	if err != nil {
		set.Remove()
		return nil, err
	}
	return set, nil
}

func (r *Renderer) renderDistribution(patientName string, categories []classifier.Category) (string, error) {
	counts := make(map[classifier.Category]int)
	for _, c := range categories {
		counts[c]++
	}

	var values []chart.Value
	for _, c := range allCategories {
		if counts[c] > 0 {
			values = append(values, chart.Value{
				Value: float64(counts[c]),
				Label: fmt.Sprintf("%s (%d)", c, counts[c]),
			})
		}
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("%s's Temperature Category Distribution", patientName),
		Width:  512,
		Height: 512,
		Values: values,
	}
	return r.writePNG("chart_dist_*.png", pie.Render)
}

func (r *Renderer) renderBPTrend(systolic, diastolic []float64) (string, error) {
	x := dayIndexes(len(systolic))
	graph := chart.Chart{
		Title:  "BP Trend Over Week",
		Width:  640,
		Height: 320,
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Systolic", XValues: x, YValues: systolic},
			chart.ContinuousSeries{Name: "Diastolic", XValues: x, YValues: diastolic},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return r.writePNG("chart_bp_*.png", graph.Render)
}

func (r *Renderer) renderBMIHeartRate(bmi, heartRate []float64) (string, error) {
	x := dayIndexes(len(bmi))
	graph := chart.Chart{
		Title:  "BMI & Heart Rate Trend",
		Width:  640,
		Height: 320,
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "BMI", XValues: x, YValues: bmi},
			chart.ContinuousSeries{Name: "Heart Rate", XValues: x, YValues: heartRate},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return r.writePNG("chart_bmi_hr_*.png", graph.Render)
}

func dayIndexes(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
	}
	return x
}

func (r *Renderer) writePNG(pattern string, render func(chart.RendererProvider, io.Writer) error) (string, error) {
	f, err := os.CreateTemp(r.dir, pattern)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}

	if err := render(chart.PNG, f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close chart file: %w", err)
	}
	return f.Name(), nil
}
