package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"speechdown-backend/internal/models"
	"speechdown-backend/internal/repository"
)

type fakeUserRepo struct {
	users map[primitive.ObjectID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]models.User)}
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, &repository.NotFoundError{Message: "user not found"}
	}
	return &user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) error {
	user, ok := f.users[id]
	if !ok {
		return &repository.NotFoundError{Message: "user not found"}
	}
	if raw, ok := data["role"]; ok {
		role, isString := raw.(string)
		if !isString || !models.ValidRole(role) {
			return &repository.ValidationError{Message: `role must be "parent" or "therapist"`}
		}
		user.Role = role
	}
	if name, ok := data["name"].(string); ok {
		user.Name = name
	}
	if email, ok := data["email"].(string); ok {
		user.Email = email
	}
	f.users[id] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.users[id]; !ok {
		return &repository.NotFoundError{Message: "user not found"}
	}
	delete(f.users, id)
	return nil
}

func newUserRouter(f *fakeUserRepo) http.Handler {
	h := NewUserHandler(f)
	r := chi.NewRouter()
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCreateUser_InvalidRole(t *testing.T) {
	repo := newFakeUserRepo()
	router := newUserRouter(repo)

	rr := doJSON(t, router, http.MethodPost, "/api/users/", map[string]string{
		"name":  "Ana",
		"email": "a@x.com",
		"role":  "admin",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
	if len(repo.users) != 0 {
		t.Error("Expected no record persisted for invalid role")
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error envelope: %v", err)
	}
	if resp["error"] == "" {
		t.Error("Expected error envelope with a message")
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"email": "a@x.com", "role": "parent"}},
		{"missing email", map[string]string{"name": "Ana", "role": "parent"}},
		{"missing role", map[string]string{"name": "Ana", "email": "a@x.com"}},
		{"empty body", map[string]string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			rr := doJSON(t, newUserRouter(repo), http.MethodPost, "/api/users/", tc.body)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rr.Code)
			}
			if len(repo.users) != 0 {
				t.Error("Expected no record persisted")
			}
		})
	}
}

func TestCreateUser_ThenGet_RoundTrip(t *testing.T) {
	router := newUserRouter(newFakeUserRepo())

	rr := doJSON(t, router, http.MethodPost, "/api/users/", map[string]string{
		"name":  "Ana",
		"email": "a@x.com",
		"role":  "therapist",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var created map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode create response: %v", err)
	}
	id := created["_id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		t.Fatalf("Expected a valid hex _id, got %q", id)
	}

	get1 := doJSON(t, router, http.MethodGet, "/api/users/"+id, nil)
	if get1.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", get1.Code)
	}

	var user map[string]interface{}
	if err := json.NewDecoder(bytes.NewReader(get1.Body.Bytes())).Decode(&user); err != nil {
		t.Fatalf("Failed to decode user: %v", err)
	}
	if user["name"] != "Ana" || user["email"] != "a@x.com" || user["role"] != "therapist" {
		t.Errorf("Round trip mismatch: %v", user)
	}
	if user["_id"] != id {
		t.Errorf("Expected _id %q rendered as string, got %v", id, user["_id"])
	}

	// Repeated reads of an unchanged record are byte-identical.
	get2 := doJSON(t, router, http.MethodGet, "/api/users/"+id, nil)
	if !bytes.Equal(get1.Body.Bytes(), get2.Body.Bytes()) {
		t.Error("Expected repeated GETs to return identical JSON")
	}
}

func TestGetUser_InvalidID(t *testing.T) {
	rr := doJSON(t, newUserRouter(newFakeUserRepo()), http.MethodGet, "/api/users/not-a-valid-id", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed ID, got %d", rr.Code)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	rr := doJSON(t, newUserRouter(newFakeUserRepo()), http.MethodGet, "/api/users/"+id, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown ID, got %d", rr.Code)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	rr := doJSON(t, newUserRouter(newFakeUserRepo()), http.MethodPut, "/api/users/"+id, map[string]string{"name": "Eva"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rr.Code)
	}
}

func TestUpdateUser_NonStringRole(t *testing.T) {
	repo := newFakeUserRepo()
	router := newUserRouter(repo)

	rr := doJSON(t, router, http.MethodPost, "/api/users/", map[string]string{
		"name":  "Ana",
		"email": "a@x.com",
		"role":  "parent",
	})
	var created map[string]string
	json.NewDecoder(rr.Body).Decode(&created)
	id := created["_id"]

	put := doJSON(t, router, http.MethodPut, "/api/users/"+id, map[string]interface{}{
		"role": 123,
	})
	if put.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-string role, got %d", put.Code)
	}

	oid, _ := primitive.ObjectIDFromHex(id)
	if repo.users[oid].Role != "parent" {
		t.Errorf("Expected role unchanged, got %v", repo.users[oid].Role)
	}
}

func TestDeleteUser_InvalidID(t *testing.T) {
	rr := doJSON(t, newUserRouter(newFakeUserRepo()), http.MethodDelete, "/api/users/zzz", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	rr := doJSON(t, newUserRouter(newFakeUserRepo()), http.MethodGet, "/api/users/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if body := bytes.TrimSpace(rr.Body.Bytes()); string(body) != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}
