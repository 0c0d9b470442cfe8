package poststore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/foodhub/internal/app/store/voting"
	"github.com/dalemusser/foodhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAuthorNotFound is returned by Create when the posting user does not
// exist. Authorship is validated at creation time only.
var ErrAuthorNotFound = errors.New("posting user not found")

type Store struct {
	c     *mongo.Collection
	users *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:     db.Collection("posts"),
		users: db.Collection("users"),
	}
}

// Create inserts a new post after verifying the author exists.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	n, err := s.users.CountDocuments(ctx, bson.M{"_id": p.PostedBy})
	if err != nil {
		return models.Post{}, err
	}
	if n == 0 {
		return models.Post{}, ErrAuthorNotFound
	}

	p.ID = primitive.NewObjectID()
	p.Title = strings.TrimSpace(p.Title)
	if p.Points == nil {
		p.Points = []primitive.ObjectID{}
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// authorPipeline expands the author document onto each post and drops its
// password hash before it ever leaves the database.
func authorPipeline(match bson.M, sortNewestFirst bool) mongo.Pipeline {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
	}
	if sortNewestFirst {
		pipe = append(pipe, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}}})
	}
	pipe = append(pipe,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "posted_by",
			"foreignField": "_id",
			"as":           "author",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{"author.password": 0}}},
	)
	return pipe
}

// GetByID loads a post with its author expanded. Returns
// mongo.ErrNoDocuments if the post does not exist.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PostWithAuthor, error) {
	cur, err := s.c.Aggregate(ctx, authorPipeline(bson.M{"_id": id}, false))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PostWithAuthor
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &out[0], nil
}

// All returns every post, newest first, with authors expanded.
func (s *Store) All(ctx context.Context) ([]models.PostWithAuthor, error) {
	cur, err := s.c.Aggregate(ctx, authorPipeline(bson.M{}, true))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.PostWithAuthor{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds the optional content fields a post update may carry. Nil
// fields are left untouched.
type Update struct {
	Title       *string
	Description *string
	ImageURL    *string
	Location    *string
	Quantity    *string
}

// Apply updates a post's content fields and returns the updated document
// with its author expanded. Returns mongo.ErrNoDocuments if absent.
func (s *Store) Apply(ctx context.Context, id primitive.ObjectID, upd Update) (*models.PostWithAuthor, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Quantity != nil {
		set["quantity"] = *upd.Quantity
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return s.GetByID(ctx, id)
}

// Delete removes a post and returns the removed document. Returns
// mongo.ErrNoDocuments if the post does not exist, including on repeat
// deletes.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ToggleVote flips voterID's membership in the post's points set.
// Returns voting.ErrNotFound if the post does not exist.
func (s *Store) ToggleVote(ctx context.Context, id, voterID primitive.ObjectID) (voting.Result, error) {
	return voting.Toggle(ctx, s.c, id, voterID)
}

// EnsureIndexes creates the listing and author indexes. Called once at
// startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "posted_by", Value: 1}}},
	})
	return err
}
