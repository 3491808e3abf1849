package client

import (
	"errors"
	"math"
)

var ErrInvalidMeasurement = errors.New("height and weight must be positive")

// BMIResult is a body-mass index rounded to one decimal and its category.
type BMIResult struct {
	Value    float64
	Category string
}

// BMI computes the body-mass index from weight in kilograms and height in
// centimetres.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return BMIResult{}, ErrInvalidMeasurement
	}
	h := heightCm / 100
	raw := weightKg / (h * h)
	return BMIResult{Value: math.Round(raw*10) / 10, Category: bmiCategory(raw)}, nil
}

func bmiCategory(v float64) string {
	switch {
	case v < 18.5:
		return "Underweight"
	case v < 25:
		return "Normal weight"
	case v < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
