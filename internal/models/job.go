package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a single listing on the board.
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Type        string             `bson:"type" json:"type"`
	Description string             `bson:"description" json:"description"`
	Company     Company            `bson:"company" json:"company"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Salary      float64            `bson:"salary,omitempty" json:"salary,omitempty"`
	PostedBy    primitive.ObjectID `bson:"posted_by,omitempty" json:"posted_by,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Company holds the employer contact details embedded in a job listing.
type Company struct {
	Name         string `bson:"name" json:"name"`
	ContactEmail string `bson:"contactEmail" json:"contactEmail"`
	ContactPhone string `bson:"contactPhone" json:"contactPhone"`
}
