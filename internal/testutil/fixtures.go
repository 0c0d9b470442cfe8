package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/foodhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given name and email. The stored
// password is a fixed fake bcrypt-shaped value; use the password package in
// tests that need a verifiable hash.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  "$2a$10$fixturefixturefixturefixturefixturefixturefixturefu",
		Points:    []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreatePost inserts a post for the given author with the given title and
// creation time. The explicit timestamp lets listing tests control order.
func (f *Fixtures) CreatePost(ctx context.Context, author primitive.ObjectID, title string, createdAt time.Time) models.Post {
	f.t.Helper()

	p := models.Post{
		ID:        primitive.NewObjectID(),
		Title:     title,
		PostedBy:  author,
		Points:    []primitive.ObjectID{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if _, err := f.db.Collection("posts").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}
	return p
}
