// Package voting implements the membership toggle shared by the user and
// post stores.
//
// A toggle flips whether voterID is present in the target document's
// points set. It runs as a single pipeline update so the membership test
// and the write are one atomic operation; two concurrent toggles by the
// same voter can never double-add.
package voting

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Result reports which way a toggle went.
type Result int

const (
	Upvoted Result = iota + 1
	Downvoted
)

// String returns the lower-case name used in API messages.
func (r Result) String() string {
	switch r {
	case Upvoted:
		return "upvoted"
	case Downvoted:
		return "downvoted"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// ErrNotFound is returned when the target document does not exist.
var ErrNotFound = errors.New("vote target not found")

// Toggle atomically adds voterID to the points set of the document with
// the given id, or removes it if already present. The returned Result is
// derived from the document state immediately before the update.
func Toggle(ctx context.Context, c *mongo.Collection, id, voterID primitive.ObjectID) (Result, error) {
	// $ifNull guards documents created before points was initialized.
	points := bson.M{"$ifNull": bson.A{"$points", bson.A{}}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"points": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{voterID, points}},
				bson.M{"$setDifference": bson.A{points, bson.A{voterID}}},
				bson.M{"$concatArrays": bson.A{points, bson.A{voterID}}},
			}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var before struct {
		Points []primitive.ObjectID `bson:"points"`
	}
	err := c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	for _, p := range before.Points {
		if p == voterID {
			return Downvoted, nil
		}
	}
	return Upvoted, nil
}
