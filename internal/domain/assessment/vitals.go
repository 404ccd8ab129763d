package assessment

import "fmt"

// ValidationError names the first offending field so the caller can surface
// it against the right input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// VitalsInput is one patient's measurement set as submitted for assessment.
type VitalsInput struct {
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	SleepHours float64 `json:"sleep_hours"`
	BMI        float64 `json:"bmi"`
	HeartRate  int     `json:"heart_rate"`
	Systolic   int     `json:"systolic"`
	Diastolic  int     `json:"diastolic"`
}

// Validate checks every field against its admissible range and reports the
// first violation found, in field order.
func (v *VitalsInput) Validate() error {
	if v.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if v.Age < 1 || v.Age > 120 {
		return &ValidationError{Field: "age", Reason: "must be between 1 and 120"}
	}
	if v.Gender != "M" && v.Gender != "F" {
		return &ValidationError{Field: "gender", Reason: `must be "M" or "F"`}
	}
	if v.SleepHours < 0 || v.SleepHours > 24 {
		return &ValidationError{Field: "sleep_hours", Reason: "must be between 0 and 24"}
	}
	if v.BMI < 10.0 || v.BMI > 50.0 {
		return &ValidationError{Field: "bmi", Reason: "must be between 10.0 and 50.0"}
	}
	if v.HeartRate < 40 || v.HeartRate > 200 {
		return &ValidationError{Field: "heart_rate", Reason: "must be between 40 and 200"}
	}
	if v.Systolic < 90 || v.Systolic > 180 {
		return &ValidationError{Field: "systolic", Reason: "must be between 90 and 180"}
	}
	if v.Diastolic < 60 || v.Diastolic > 120 {
		return &ValidationError{Field: "diastolic", Reason: "must be between 60 and 120"}
	}
	return nil
}

// FeatureVector projects the vitals onto the model's input order:
// age, encoded gender (F=1, M=0), systolic, diastolic.
func (v *VitalsInput) FeatureVector() []float64 {
	gender := 0.0
	if v.Gender == "F" {
		gender = 1.0
	}
	return []float64{float64(v.Age), gender, float64(v.Systolic), float64(v.Diastolic)}
}
