package model

import "time"

// PainterProfile belongs to exactly one identity (UserID). Read-only from
// the matcher's point of view.
type PainterProfile struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID      string    `json:"user_id" bson:"user_id" validate:"required"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	Experience  int       `json:"experience" bson:"experience" validate:"min=0"`
	Rating      float64   `json:"rating" bson:"rating" validate:"min=0,max=5"`
	Specialties []string  `json:"specialties" bson:"specialties" validate:"omitempty,specialties"`
	Bio         string    `json:"bio,omitempty" bson:"bio,omitempty" validate:"omitempty,max=1000"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type CustomerProfile struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID    string    `json:"user_id" bson:"user_id" validate:"required"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=200"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// PainterSummary is the denormalized painter view attached to match results
// and ranked alternatives for immediate display.
type PainterSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	Experience  int      `json:"experience"`
	Specialties []string `json:"specialties"`
}

func (p *PainterProfile) Summary() PainterSummary {
	return PainterSummary{
		ID:          p.ID,
		Name:        p.Name,
		Rating:      p.Rating,
		Experience:  p.Experience,
		Specialties: p.Specialties,
	}
}
