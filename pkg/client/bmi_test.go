package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		weight, height float64
		value          float64
		category       string
	}{
		{50, 180, 15.4, "Underweight"},
		{70, 175, 22.9, "Normal weight"},
		{85, 175, 27.8, "Overweight"},
		{110, 175, 35.9, "Obese"},
	}
	for _, tt := range tests {
		got, err := BMI(tt.weight, tt.height)
		require.NoError(t, err)
		assert.Equal(t, tt.value, got.Value)
		assert.Equal(t, tt.category, got.Category)
	}

	_, err := BMI(70, 0)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
}

func TestCreatorUnmarshal(t *testing.T) {
	var p DietPlan
	require.NoError(t, json.Unmarshal([]byte(`{"title":"a","createdBy":"abc"}`), &p))
	assert.Equal(t, &Creator{ID: "abc"}, p.CreatedBy)

	p = DietPlan{}
	require.NoError(t, json.Unmarshal([]byte(`{"createdBy":{"id":"abc","name":"A","email":"a@b.c"}}`), &p))
	assert.Equal(t, &Creator{ID: "abc", Name: "A", Email: "a@b.c"}, p.CreatedBy)

	p = DietPlan{}
	require.NoError(t, json.Unmarshal([]byte(`{"createdBy":null}`), &p))
	assert.Nil(t, p.CreatedBy)
}
