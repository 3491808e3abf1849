package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one entry of a workout plan. Duration is in minutes.
type Exercise struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Sets     *int   `bson:"sets" json:"sets" validate:"required"`
	Reps     *int   `bson:"reps,omitempty" json:"reps,omitempty"`
	Duration *int   `bson:"duration,omitempty" json:"duration,omitempty"`
	VideoURL string `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
}

// WorkoutPlan is a public plan; CreatedBy records who wrote it.
type WorkoutPlan struct {
	Base        `bson:",inline"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Exercises   []Exercise         `bson:"exercises" json:"exercises" validate:"dive"`
	CreatedBy   primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy"`
}

func (p *WorkoutPlan) OwnerID() primitive.ObjectID {
	return p.CreatedBy
}

func (p *WorkoutPlan) SetOwnerID(id primitive.ObjectID) {
	p.CreatedBy = id
}

func (p *WorkoutPlan) Validate() error {
	if p.Exercises == nil {
		p.Exercises = []Exercise{}
	}
	return validateDocument("WorkoutPlan", p)
}
