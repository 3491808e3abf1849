package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal is one entry of a diet plan. Calories is a pointer so that an
// explicit 0 can be told apart from a missing value.
type Meal struct {
	Name     string   `bson:"name" json:"name" validate:"required"`
	Calories *float64 `bson:"calories" json:"calories" validate:"required"`
	Protein  *float64 `bson:"protein,omitempty" json:"protein,omitempty"`
	Carbs    *float64 `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fats     *float64 `bson:"fats,omitempty" json:"fats,omitempty"`
}

// DietPlan is a public plan; CreatedBy records who wrote it.
type DietPlan struct {
	Base        `bson:",inline"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Meals       []Meal             `bson:"meals" json:"meals" validate:"dive"`
	CreatedBy   primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy"`
}

func (p *DietPlan) OwnerID() primitive.ObjectID {
	return p.CreatedBy
}

func (p *DietPlan) SetOwnerID(id primitive.ObjectID) {
	p.CreatedBy = id
}

func (p *DietPlan) Validate() error {
	if p.Meals == nil {
		p.Meals = []Meal{}
	}
	return validateDocument("DietPlan", p)
}
