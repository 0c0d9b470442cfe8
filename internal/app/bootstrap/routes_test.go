package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/foodhub/internal/app/system/auth"
	"github.com/dalemusser/foodhub/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)

	deps := DBDeps{
		FoodHubMongoClient:   db.Client(),
		FoodHubMongoDatabase: db,
	}
	appCfg := AppConfig{
		TokenSecret: "bootstrap-test-secret",
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := EnsureSchema(ctx, &config.CoreConfig{}, appCfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	h, err := BuildHandler(&config.CoreConfig{}, appCfg, deps, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler failed: %v", err)
	}
	return h
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.Header, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_EndToEnd(t *testing.T) {
	h := testHandler(t)

	// Register
	rec := doJSON(t, h, "POST", "/api/auth/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "s3cret",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: got %d, body %s", rec.Code, rec.Body.String())
	}
	var reg struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &reg); err != nil {
		t.Fatalf("parse register response: %v", err)
	}

	// Protected route without a token is rejected before the handler runs.
	rec = doJSON(t, h, "POST", "/api/post/addpost", "", map[string]string{"title": "nope"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("addpost without token: got %d, want 401", rec.Code)
	}

	// Create a post with the registration token.
	rec = doJSON(t, h, "POST", "/api/post/addpost", reg.Token, map[string]string{
		"title": "Soup for six", "location": "Main St",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("addpost: got %d, body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("parse addpost response: %v", err)
	}

	// Listing is public and includes the new post.
	rec = doJSON(t, h, "GET", "/api/post/allposts", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("allposts: got %d", rec.Code)
	}
	var posts []struct {
		Title  string `json:"title"`
		Author struct {
			Password string `json:"password"`
		} `json:"author"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("parse allposts response: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Soup for six" {
		t.Fatalf("unexpected post list: %+v", posts)
	}
	if posts[0].Author.Password != "" {
		t.Error("listed author must not carry a password")
	}

	// Vote, then vote again.
	rec = doJSON(t, h, "POST", "/api/post/switchvote", reg.Token, map[string]string{"id": created.ID})
	if rec.Code != http.StatusOK {
		t.Fatalf("switchvote: got %d, body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, h, "POST", "/api/post/switchvote", reg.Token, map[string]string{"id": created.ID})
	if rec.Code != http.StatusOK {
		t.Fatalf("second switchvote: got %d", rec.Code)
	}

	// Delete, then delete again: the second is a 404.
	rec = doJSON(t, h, "DELETE", "/api/post/"+created.ID, reg.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d, body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, h, "DELETE", "/api/post/"+created.ID, reg.Token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: got %d, want 404", rec.Code)
	}
}

func TestRouter_BadTokenRejected(t *testing.T) {
	h := testHandler(t)

	rec := doJSON(t, h, "GET", "/api/auth/getuser", "not-a-real-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}
