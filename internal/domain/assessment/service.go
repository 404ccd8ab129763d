package assessment

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/vitaldash/vitaldash/internal/domain/submission"
	"github.com/vitaldash/vitaldash/internal/platform/charts"
	"github.com/vitaldash/vitaldash/internal/platform/classifier"
	"github.com/vitaldash/vitaldash/internal/platform/observability"
	"github.com/vitaldash/vitaldash/internal/platform/report"
)

// Recorder persists completed assessments.
type Recorder interface {
	Save(ctx context.Context, s *submission.Submission) error
}

// ChartRenderer produces the week-view chart images for a report.
type ChartRenderer interface {
	SynthesizeWeek(category classifier.Category, systolic, diastolic int, bmi float64, heartRate int) charts.Week
	Render(patientName string, w charts.Week) (*charts.Set, error)
}

// ReportBuilder writes the patient summary PDF and returns its path.
type ReportBuilder interface {
	Build(s report.Summary, c report.ChartPaths) (string, error)
}

// Outcome is the result of one assessment run. Classification always
// succeeds when an Outcome is returned; persistence and report generation
// are each allowed to fail independently, reported in SaveError and
// ReportError without voiding the rest.
type Outcome struct {
	Category        classifier.Category `json:"category"`
	Recommendations Recommendations     `json:"recommendations"`
	RecordID        *int64              `json:"record_id,omitempty"`
	Saved           bool                `json:"saved"`
	ReportFile      string              `json:"report_file,omitempty"`
	SaveError       string              `json:"save_error,omitempty"`
	ReportError     string              `json:"report_error,omitempty"`
}

type Service struct {
	model   classifier.Model
	records Recorder
	charts  ChartRenderer
	reports ReportBuilder
}

func NewService(model classifier.Model, records Recorder, charts ChartRenderer, reports ReportBuilder) *Service {
	return &Service{model: model, records: records, charts: charts, reports: reports}
}

// Assess runs the full pipeline: validate, classify, persist, report.
// Validation and classification failures abort the run; a store or report
// failure degrades the outcome instead.
func (s *Service) Assess(ctx context.Context, in *VitalsInput) (*Outcome, error) {
	if err := in.Validate(); err != nil {
		observability.RecordStageFailure("validate")
		return nil, err
	}

	category, err := s.model.Classify(in.FeatureVector())
	if err != nil {
		observability.RecordStageFailure("classify")
		return nil, err
	}
	recs := RecommendationsFor(category)

	out := &Outcome{Category: category, Recommendations: recs}

	rec := &submission.Submission{
		Name:       in.Name,
		Age:        in.Age,
		Gender:     in.Gender,
		SleepHours: in.SleepHours,
		BMI:        in.BMI,
		HeartRate:  in.HeartRate,
		Systolic:   in.Systolic,
		Diastolic:  in.Diastolic,
		Prediction: string(category),
		Tips:       recs.Tips,
		Diet:       recs.Diet,
		Exercise:   recs.Exercise,
	}
	if err := s.records.Save(ctx, rec); err != nil {
		observability.RecordStageFailure("store")
		log.Error().Err(err).Str("name", in.Name).Msg("assessment record not persisted")
		out.SaveError = "record could not be stored"
	} else {
		out.Saved = true
		out.RecordID = &rec.ID
	}

	s.buildReport(out, in, rec)

	observability.RecordAssessment(string(category))
	return out, nil
}

// buildReport renders the week charts and the PDF. The chart files are
// temporary and removed on every path, including report failure.
func (s *Service) buildReport(out *Outcome, in *VitalsInput, rec *submission.Submission) {
	week := s.charts.SynthesizeWeek(out.Category, in.Systolic, in.Diastolic, in.BMI, in.HeartRate)
	set, err := s.charts.Render(in.Name, week)
	if err != nil {
		observability.RecordStageFailure("charts")
		log.Error().Err(err).Str("name", in.Name).Msg("chart rendering failed")
		out.ReportError = "report could not be generated"
		return
	}
	defer set.Remove()

	path, err := s.reports.Build(report.Summary{
		RecordID:   rec.ID,
		Name:       in.Name,
		Age:        in.Age,
		Gender:     in.Gender,
		Systolic:   in.Systolic,
		Diastolic:  in.Diastolic,
		BMI:        in.BMI,
		HeartRate:  in.HeartRate,
		SleepHours: in.SleepHours,
		Prediction: string(out.Category),
		Tips:       out.Recommendations.Tips,
		Diet:       out.Recommendations.Diet,
		Exercise:   out.Recommendations.Exercise,
	}, report.ChartPaths{
		Distribution: set.Distribution,
		BPTrend:      set.BPTrend,
		BMIHeartRate: set.BMIHeartRate,
	})
	if err != nil {
		observability.RecordStageFailure("report")
		log.Error().Err(err).Str("name", in.Name).Msg("report build failed")
		out.ReportError = "report could not be generated"
		return
	}
	out.ReportFile = filepath.Base(path)
}
