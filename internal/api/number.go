package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON number that also accepts numeric strings such as "150",
// the way form inputs tend to send them.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("cast to number failed for value %s", data)
	}
	*n = Number(v)
	return nil
}

func (n *Number) float() *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}

func (n *Number) integer(path string) (*int, error) {
	if n == nil {
		return nil, nil
	}
	if *n != Number(math.Trunc(float64(*n))) {
		return nil, fmt.Errorf("%s must be a whole number, got %v", path, float64(*n))
	}
	v := int(*n)
	return &v, nil
}

type MealRequest struct {
	Name     string  `json:"name"`
	Calories *Number `json:"calories"`
	Protein  *Number `json:"protein"`
	Carbs    *Number `json:"carbs"`
	Fats     *Number `json:"fats"`
}

type ExerciseRequest struct {
	Name     string  `json:"name"`
	Sets     *Number `json:"sets"`
	Reps     *Number `json:"reps"`
	Duration *Number `json:"duration"`
	VideoURL string  `json:"videoUrl"`
}

// toMeals keeps nil as nil so an omitted array can be told apart from [].
func toMeals(reqs []MealRequest) []domain.Meal {
	if reqs == nil {
		return nil
	}
	meals := make([]domain.Meal, len(reqs))
	for i, r := range reqs {
		meals[i] = domain.Meal{
			Name:     r.Name,
			Calories: r.Calories.float(),
			Protein:  r.Protein.float(),
			Carbs:    r.Carbs.float(),
			Fats:     r.Fats.float(),
		}
	}
	return meals
}

func toExercises(reqs []ExerciseRequest) ([]domain.Exercise, error) {
	if reqs == nil {
		return nil, nil
	}
	exercises := make([]domain.Exercise, len(reqs))
	for i, r := range reqs {
		e := domain.Exercise{Name: r.Name, VideoURL: r.VideoURL}
		var err error
		if e.Sets, err = r.Sets.integer(fmt.Sprintf("exercises.%d.sets", i)); err != nil {
			return nil, err
		}
		if e.Reps, err = r.Reps.integer(fmt.Sprintf("exercises.%d.reps", i)); err != nil {
			return nil, err
		}
		if e.Duration, err = r.Duration.integer(fmt.Sprintf("exercises.%d.duration", i)); err != nil {
			return nil, err
		}
		exercises[i] = e
	}
	return exercises, nil
}
