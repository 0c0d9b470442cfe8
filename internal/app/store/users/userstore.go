package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/foodhub/internal/app/store/voting"
	"github.com/dalemusser/foodhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned when attempting to create or update a user
// with an email that already exists.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by exact email (stored case-sensitively).
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The password must already be hashed by the
// caller. Returns ErrDuplicateEmail when the unique email index rejects
// the insert.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Name = strings.TrimSpace(u.Name)
	if u.Points == nil {
		u.Points = []primitive.ObjectID{}
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// Update holds the optional profile fields a user may change. Nil fields
// are left untouched.
type Update struct {
	Name     *string
	Email    *string
	Password *string // already hashed
}

// Apply updates the user's profile fields and returns the updated document.
// Returns mongo.ErrNoDocuments if the user does not exist and
// ErrDuplicateEmail if the new email is taken.
func (s *Store) Apply(ctx context.Context, id primitive.ObjectID, upd Update) (*models.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Password != nil {
		set["password"] = *upd.Password
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}

// ToggleVote flips voterID's membership in the user's points set.
// Returns voting.ErrNotFound if the user does not exist.
func (s *Store) ToggleVote(ctx context.Context, id, voterID primitive.ObjectID) (voting.Result, error) {
	return voting.Toggle(ctx, s.c, id, voterID)
}

// EnsureIndexes creates the unique email index. Called once at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
