package submission

import (
	"time"
)

// Submission maps to the submissions table: one completed assessment,
// created exactly once and never updated.
type Submission struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Age            int       `db:"age" json:"age"`
	Gender         string    `db:"gender" json:"gender"`
	SleepHours     float64   `db:"sleep_hours" json:"sleep_hours"`
	BMI            float64   `db:"bmi" json:"bmi"`
	HeartRate      int       `db:"heart_rate" json:"heart_rate"`
	Systolic       int       `db:"systolic" json:"systolic"`
	Diastolic      int       `db:"diastolic" json:"diastolic"`
	Prediction     string    `db:"prediction" json:"prediction"`
	Tips           string    `db:"tips" json:"tips"`
	Diet           string    `db:"diet" json:"diet"`
	Exercise       string    `db:"exercise" json:"exercise"`
	SubmissionTime time.Time `db:"submission_time" json:"submission_time"`
}

// Row is a transient query result: a stored submission plus its display-only
// sequential position (1..N in result order). DisplayIndex is presentation
// renumbering; it is never persisted and never a delete key — deletes always
// use the stored id.
type Row struct {
	Submission
	DisplayIndex int `json:"display_index"`
}
