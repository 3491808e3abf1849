package client

import (
	"bytes"
	"encoding/json"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Creator is a plan's author. List and get resolve it to a full object;
// create and update return the bare id, which lands in ID.
type Creator struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (c *Creator) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		return json.Unmarshal(data, &c.ID)
	}
	type plain Creator
	return json.Unmarshal(data, (*plain)(c))
}

type Meal struct {
	Name     string   `json:"name"`
	Calories float64  `json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fats     *float64 `json:"fats,omitempty"`
}

type DietPlan struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Meals       []Meal    `json:"meals"`
	CreatedBy   *Creator  `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	Reps     *int   `json:"reps,omitempty"`
	Duration *int   `json:"duration,omitempty"` // minutes
	VideoURL string `json:"videoUrl,omitempty"`
}

type WorkoutPlan struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Exercises   []Exercise `json:"exercises"`
	CreatedBy   *Creator   `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Progress is a measurement entry. A nil Date on create means "now".
type Progress struct {
	ID        string     `json:"id,omitempty"`
	User      string     `json:"user,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	Weight    *float64   `json:"weight,omitempty"`
	BodyFat   *float64   `json:"bodyFat,omitempty"`
	Chest     *float64   `json:"chest,omitempty"`
	Waist     *float64   `json:"waist,omitempty"`
	Hips      *float64   `json:"hips,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Reminder struct {
	ID          string    `json:"id,omitempty"`
	User        string    `json:"user,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReminderPatch changes only what is set. Completed is applied even when false.
type ReminderPatch struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
