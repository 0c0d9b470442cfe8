// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account that can post food listings and vote.
//
// Points holds the IDs of the users who have upvoted this account. The
// vote toggle maintains it as a set, so an ID appears at most once.
type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name     string               `bson:"name" json:"name"`
	Email    string               `bson:"email" json:"email"`
	Password string               `bson:"password" json:"password,omitempty"` // bcrypt hash
	Points   []primitive.ObjectID `bson:"points" json:"points"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Redacted returns a copy safe for API responses: the password hash is
// cleared and Points is never nil.
func (u User) Redacted() User {
	u.Password = ""
	if u.Points == nil {
		u.Points = []primitive.ObjectID{}
	}
	return u
}
