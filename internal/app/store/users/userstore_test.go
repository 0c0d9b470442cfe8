package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/dalemusser/foodhub/internal/app/store/users"
	"github.com/dalemusser/foodhub/internal/app/store/voting"
	"github.com/dalemusser/foodhub/internal/domain/models"
	"github.com/dalemusser/foodhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name:     "  Ada Lovelace ",
		Email:    "ada@example.com",
		Password: "$2a$10$hashhashhashhashhashhashhashhashhashhashhashhashhashha",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Ada Lovelace" {
		t.Errorf("name: got %q, want trimmed %q", created.Name, "Ada Lovelace")
	}
	if created.Points == nil || len(created.Points) != 0 {
		t.Error("expected Points to be initialized empty")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	u := models.User{Name: "First", Email: "dup@example.com", Password: "x"}
	if _, err := store.Create(ctx, u); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	u.Name = "Second"
	_, err := store.Create(ctx, u)
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_GetByEmail_CaseSensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Casey", "Casey@Example.com")

	if _, err := store.GetByEmail(ctx, "Casey@Example.com"); err != nil {
		t.Errorf("expected exact-case lookup to succeed, got %v", err)
	}
	if _, err := store.GetByEmail(ctx, "casey@example.com"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected lower-cased lookup to miss (emails are stored case-sensitively), got %v", err)
	}
}

func TestStore_Apply_PartialUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "Before", "before@example.com")

	newName := "After"
	updated, err := store.Apply(ctx, u.ID, userstore.Update{Name: &newName})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if updated.Name != "After" {
		t.Errorf("name: got %q, want %q", updated.Name, "After")
	}
	if updated.Email != "before@example.com" {
		t.Errorf("email changed unexpectedly: got %q", updated.Email)
	}
	if updated.Password == "" {
		t.Error("stored password hash must survive a partial update")
	}
}

func TestStore_Apply_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	name := "ghost"
	_, err := store.Apply(ctx, primitive.NewObjectID(), userstore.Update{Name: &name})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_ToggleVote_Involution(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	target := fixtures.CreateUser(ctx, "Target", "target@example.com")
	voter := primitive.NewObjectID()

	res, err := store.ToggleVote(ctx, target.ID, voter)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if res != voting.Upvoted {
		t.Errorf("first toggle: got %v, want Upvoted", res)
	}

	res, err = store.ToggleVote(ctx, target.ID, voter)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if res != voting.Downvoted {
		t.Errorf("second toggle: got %v, want Downvoted", res)
	}

	after, err := store.GetByID(ctx, target.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(after.Points) != 0 {
		t.Errorf("expected points unchanged after double toggle, got %v", after.Points)
	}
}

func TestStore_ToggleVote_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.ToggleVote(ctx, primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, voting.ErrNotFound) {
		t.Errorf("expected voting.ErrNotFound, got %v", err)
	}
}
