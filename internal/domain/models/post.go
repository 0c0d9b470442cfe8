// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a food listing created by a user.
//
// PostedBy must reference an existing user at creation time; it is not
// re-validated afterward. Points is the set of user IDs that have upvoted
// the post.
type Post struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string               `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Location    string               `bson:"location,omitempty" json:"location,omitempty"`
	Quantity    string               `bson:"quantity,omitempty" json:"quantity,omitempty"`
	PostedBy    primitive.ObjectID   `bson:"posted_by" json:"posted_by"`
	Points      []primitive.ObjectID `bson:"points" json:"points"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PostWithAuthor is a post with its author expanded for responses. The
// author is always redacted before encoding.
type PostWithAuthor struct {
	Post   `bson:",inline"`
	Author User `bson:"author" json:"author"`
}
