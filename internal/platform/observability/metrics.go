package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	assessmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vitals_server",
		Subsystem: "assessment",
		Name:      "completed_total",
		Help:      "Assessments completed, labelled by predicted category.",
	}, []string{"category"})
	assessmentFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vitals_server",
		Subsystem: "assessment",
		Name:      "stage_failures_total",
		Help:      "Pipeline stage failures, labelled by stage (validate, classify, store, charts, report).",
	}, []string{"stage"})
	recordsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vitals_server",
		Subsystem: "store",
		Name:      "records_deleted_total",
		Help:      "Submission records removed by batch deletes.",
	})
)

func init() {
	prometheus.MustRegister(assessmentsTotal, assessmentFailures, recordsDeleted)
}

// RecordAssessment counts a completed assessment for the given category.
func RecordAssessment(category string) {
	assessmentsTotal.WithLabelValues(category).Inc()
}

// RecordStageFailure counts a pipeline stage failure.
func RecordStageFailure(stage string) {
	assessmentFailures.WithLabelValues(stage).Inc()
}

// RecordDeleted counts records removed by a batch delete.
func RecordDeleted(n int64) {
	if n <= 0 {
		return
	}
	recordsDeleted.Add(float64(n))
}
