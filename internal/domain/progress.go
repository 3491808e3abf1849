package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Progress is one body-measurement entry owned by User.
// All measurements are optional and omitted when never recorded.
type Progress struct {
	Base    `bson:",inline"`
	User    primitive.ObjectID `bson:"user" json:"user" validate:"required"`
	Date    time.Time          `bson:"date" json:"date"`
	Weight  *float64           `bson:"weight,omitempty" json:"weight,omitempty"`
	BodyFat *float64           `bson:"bodyFat,omitempty" json:"bodyFat,omitempty"`
	Chest   *float64           `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist   *float64           `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips    *float64           `bson:"hips,omitempty" json:"hips,omitempty"`
	Notes   string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

func (p *Progress) OwnerID() primitive.ObjectID {
	return p.User
}

func (p *Progress) SetOwnerID(id primitive.ObjectID) {
	p.User = id
}

func (p *Progress) Validate() error {
	return validateDocument("Progress", p)
}
