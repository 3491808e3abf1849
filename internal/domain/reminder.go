package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reminder is a dated to-do owned by User. Completed starts out false.
type Reminder struct {
	Base        `bson:",inline"`
	User        primitive.ObjectID `bson:"user" json:"user" validate:"required"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time          `bson:"date" json:"date" validate:"required"`
	Completed   bool               `bson:"completed" json:"completed"`
}

func (r *Reminder) OwnerID() primitive.ObjectID {
	return r.User
}

func (r *Reminder) SetOwnerID(id primitive.ObjectID) {
	r.User = id
}

func (r *Reminder) Validate() error {
	return validateDocument("Reminder", r)
}
