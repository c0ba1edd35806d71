package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a persisted account record. The bson keys mirror the users
// collection layout, so the bcrypt hash lives under "password"; it is never
// serialized to JSON.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Username         string             `bson:"username,omitempty" json:"username,omitempty"`
	PasswordHash     string             `bson:"password" json:"-"`
	PhoneNumber      string             `bson:"phone_number" json:"phone_number"`
	Gender           string             `bson:"gender" json:"gender"`
	DateOfBirth      time.Time          `bson:"date_of_birth" json:"date_of_birth"`
	MembershipStatus string             `bson:"membership_status" json:"membership_status"`
	Bio              string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`
	ProfilePicture   string             `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Sanitize returns a copy of the user without sensitive fields populated.
func (u User) Sanitize() User {
	u.PasswordHash = ""
	return u
}
