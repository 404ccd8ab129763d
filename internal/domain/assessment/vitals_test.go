package assessment

import (
	"errors"
	"testing"
)

func validInput() *VitalsInput {
	return &VitalsInput{
		Name: "Alice", Age: 30, Gender: "F", SleepHours: 7.5,
		BMI: 22.0, HeartRate: 72, Systolic: 118, Diastolic: 76,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validInput().Validate(); err != nil { t.Fatalf("unexpected error: %v", err) }
}

func TestValidate_Boundaries(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*VitalsInput)
		ok     bool
	}{
		{"name", func(v *VitalsInput) { v.Name = "" }, false},
		{"age", func(v *VitalsInput) { v.Age = 1 }, true},
		{"age", func(v *VitalsInput) { v.Age = 120 }, true},
		{"age", func(v *VitalsInput) { v.Age = 0 }, false},
		{"age", func(v *VitalsInput) { v.Age = 121 }, false},
		{"gender", func(v *VitalsInput) { v.Gender = "M" }, true},
		{"gender", func(v *VitalsInput) { v.Gender = "f" }, false},
		{"gender", func(v *VitalsInput) { v.Gender = "X" }, false},
		{"sleep_hours", func(v *VitalsInput) { v.SleepHours = 0 }, true},
		{"sleep_hours", func(v *VitalsInput) { v.SleepHours = 24 }, true},
		{"sleep_hours", func(v *VitalsInput) { v.SleepHours = 24.1 }, false},
		{"sleep_hours", func(v *VitalsInput) { v.SleepHours = -0.5 }, false},
		{"bmi", func(v *VitalsInput) { v.BMI = 10.0 }, true},
		{"bmi", func(v *VitalsInput) { v.BMI = 50.0 }, true},
		{"bmi", func(v *VitalsInput) { v.BMI = 9.9 }, false},
		{"bmi", func(v *VitalsInput) { v.BMI = 50.1 }, false},
		{"heart_rate", func(v *VitalsInput) { v.HeartRate = 40 }, true},
		{"heart_rate", func(v *VitalsInput) { v.HeartRate = 200 }, true},
		{"heart_rate", func(v *VitalsInput) { v.HeartRate = 39 }, false},
		{"heart_rate", func(v *VitalsInput) { v.HeartRate = 201 }, false},
		{"systolic", func(v *VitalsInput) { v.Systolic = 90 }, true},
		{"systolic", func(v *VitalsInput) { v.Systolic = 180 }, true},
		{"systolic", func(v *VitalsInput) { v.Systolic = 89 }, false},
		{"systolic", func(v *VitalsInput) { v.Systolic = 181 }, false},
		{"diastolic", func(v *VitalsInput) { v.Diastolic = 60 }, true},
		{"diastolic", func(v *VitalsInput) { v.Diastolic = 120 }, true},
		{"diastolic", func(v *VitalsInput) { v.Diastolic = 59 }, false},
		{"diastolic", func(v *VitalsInput) { v.Diastolic = 121 }, false},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(in)
		err := in.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.field, err)
		}
		if !tc.ok {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("%s: expected ValidationError, got %v", tc.field, err)
			} else if ve.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, ve.Field)
			}
		}
	}
}

func TestFeatureVector_Encoding(t *testing.T) {
	in := validInput()
	got := in.FeatureVector()
	want := []float64{30, 1, 118, 76}
	if len(got) != len(want) { t.Fatalf("expected %d features, got %d", len(want), len(got)) }
	for i := range want {
		if got[i] != want[i] { t.Errorf("feature %d: expected %v, got %v", i, want[i], got[i]) }
	}
	in.Gender = "M"
	if g := in.FeatureVector()[1]; g != 0 { t.Errorf("expected M encoded as 0, got %v", g) }
}

func TestRecommendations_ExactTriples(t *testing.T) {
	low := RecommendationsFor("Low")
	if low.Tips != "You may need to rest more and stay warm." {
		t.Errorf("unexpected Low tips: %q", low.Tips)
	}
	normal := RecommendationsFor("Normal")
	if normal.Diet != "Balanced diet with fruits, vegetables, protein, and water." {
		t.Errorf("unexpected Normal diet: %q", normal.Diet)
	}
	high := RecommendationsFor("High")
	if high.Exercise != "Rest is important; avoid strenuous activity." {
		t.Errorf("unexpected High exercise: %q", high.Exercise)
	}
}

func TestRecommendations_UnknownCategoryIsEmpty(t *testing.T) {
	r := RecommendationsFor("Critical")
	if r != (Recommendations{}) { t.Errorf("expected empty triple, got %+v", r) }
}
