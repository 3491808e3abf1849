package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
)

// The four resource kinds exposed by the API.
var (
	DietPlanKind = ResourceKind{
		Name:       "Diet plan",
		OwnerField: "createdBy",
	}
	WorkoutPlanKind = ResourceKind{
		Name:       "Workout plan",
		OwnerField: "createdBy",
	}
	ProgressKind = ResourceKind{
		Name:         "Progress entry",
		OwnerField:   "user",
		PrivateReads: true,
		SortField:    "date",
		Descending:   true,
	}
	ReminderKind = ResourceKind{
		Name:         "Reminder",
		OwnerField:   "user",
		PrivateReads: true,
		SortField:    "date",
	}
)

type (
	DietPlanService    = ResourceService[domain.DietPlan]
	WorkoutPlanService = ResourceService[domain.WorkoutPlan]
	ProgressService    = ResourceService[domain.Progress]
	ReminderService    = ResourceService[domain.Reminder]
)

func NewDietPlanService(repo repository.DocumentRepository[domain.DietPlan], enforceOwnership bool) DietPlanService {
	return NewResourceService[domain.DietPlan](repo, DietPlanKind, enforceOwnership)
}

func NewWorkoutPlanService(repo repository.DocumentRepository[domain.WorkoutPlan], enforceOwnership bool) WorkoutPlanService {
	return NewResourceService[domain.WorkoutPlan](repo, WorkoutPlanKind, enforceOwnership)
}

func NewProgressService(repo repository.DocumentRepository[domain.Progress], enforceOwnership bool) ProgressService {
	return NewResourceService[domain.Progress](repo, ProgressKind, enforceOwnership)
}

func NewReminderService(repo repository.DocumentRepository[domain.Reminder], enforceOwnership bool) ReminderService {
	return NewResourceService[domain.Reminder](repo, ReminderKind, enforceOwnership)
}
