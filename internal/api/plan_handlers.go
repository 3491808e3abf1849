package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DietPlanRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Meals       []MealRequest `json:"meals"`
}

type WorkoutPlanRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Exercises   []ExerciseRequest `json:"exercises"`
}

// DietPlanResponse is a diet plan with its author resolved. CreatedBy is
// null when the author no longer exists.
type DietPlanResponse struct {
	*domain.DietPlan
	CreatedBy *domain.Creator `json:"createdBy"`
}

type WorkoutPlanResponse struct {
	*domain.WorkoutPlan
	CreatedBy *domain.Creator `json:"createdBy"`
}

func NewDietPlanHandler(svc service.DietPlanService, creators service.CreatorService) *ResourceHandler[domain.DietPlan, DietPlanRequest] {
	return &ResourceHandler[domain.DietPlan, DietPlanRequest]{
		svc: svc,
		build: func(req *DietPlanRequest) (*domain.DietPlan, error) {
			return &domain.DietPlan{
				Title:       req.Title,
				Description: req.Description,
				Meals:       toMeals(req.Meals),
			}, nil
		},
		patch: func(req *DietPlanRequest) (func(*domain.DietPlan), error) {
			meals := toMeals(req.Meals)
			return func(p *domain.DietPlan) {
				if req.Title != "" {
					p.Title = req.Title
				}
				if req.Description != "" {
					p.Description = req.Description
				}
				if meals != nil {
					p.Meals = meals
				}
			}, nil
		},
		present: func(ctx context.Context, plans []domain.DietPlan) ([]any, error) {
			return withCreators(ctx, creators, plans, func(p *domain.DietPlan, creator *domain.Creator) any {
				return DietPlanResponse{DietPlan: p, CreatedBy: creator}
			})
		},
	}
}

func NewWorkoutPlanHandler(svc service.WorkoutPlanService, creators service.CreatorService) *ResourceHandler[domain.WorkoutPlan, WorkoutPlanRequest] {
	return &ResourceHandler[domain.WorkoutPlan, WorkoutPlanRequest]{
		svc: svc,
		build: func(req *WorkoutPlanRequest) (*domain.WorkoutPlan, error) {
			exercises, err := toExercises(req.Exercises)
			if err != nil {
				return nil, err
			}
			return &domain.WorkoutPlan{
				Title:       req.Title,
				Description: req.Description,
				Exercises:   exercises,
			}, nil
		},
		patch: func(req *WorkoutPlanRequest) (func(*domain.WorkoutPlan), error) {
			exercises, err := toExercises(req.Exercises)
			if err != nil {
				return nil, err
			}
			return func(p *domain.WorkoutPlan) {
				if req.Title != "" {
					p.Title = req.Title
				}
				if req.Description != "" {
					p.Description = req.Description
				}
				if exercises != nil {
					p.Exercises = exercises
				}
			}, nil
		},
		present: func(ctx context.Context, plans []domain.WorkoutPlan) ([]any, error) {
			return withCreators(ctx, creators, plans, func(p *domain.WorkoutPlan, creator *domain.Creator) any {
				return WorkoutPlanResponse{WorkoutPlan: p, CreatedBy: creator}
			})
		},
	}
}

// withCreators resolves every plan author in one lookup and wraps each plan
// with view.
func withCreators[T any, PT interface {
	*T
	OwnerID() primitive.ObjectID
}](ctx context.Context, creators service.CreatorService, plans []T, view func(PT, *domain.Creator) any) ([]any, error) {
	ids := make([]primitive.ObjectID, len(plans))
	for i := range plans {
		ids[i] = PT(&plans[i]).OwnerID()
	}

	found, err := creators.Resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]any, len(plans))
	for i := range plans {
		p := PT(&plans[i])
		views[i] = view(p, found[p.OwnerID()])
	}
	return views, nil
}
