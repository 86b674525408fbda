package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"speechdown-backend/internal/models"
	"speechdown-backend/internal/repository"
	"speechdown-backend/internal/services"
)

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserHandler struct {
	users userRepository
}

func NewUserHandler(users userRepository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Role == "" {
		writeError(w, http.StatusBadRequest, "name, email and role are required")
		return
	}
	if !models.ValidRole(req.Role) {
		writeError(w, http.StatusBadRequest, `role must be "parent" or "therapist"`)
		return
	}

	user := &models.User{Name: req.Name, Email: req.Email, Role: req.Role}
	if err := h.users.Create(r.Context(), user); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"_id": user.ID.Hex()})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	var data map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.users.Update(r.Context(), id, data); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user updated"})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// parseObjectID validates the {id} route parameter up front; a malformed
// identifier is always a 400, never a store round-trip.
func parseObjectID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

func handleError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *repository.InvalidIDError:
		writeError(w, http.StatusBadRequest, e.Message)
	case *repository.ValidationError:
		writeError(w, http.StatusBadRequest, e.Message)
	case *repository.NotFoundError:
		writeError(w, http.StatusNotFound, e.Message)
	case *services.MissingParamsError:
		writeError(w, http.StatusBadRequest, e.Message)
	case *services.AssociationError:
		writeError(w, http.StatusBadRequest, e.Message)
	case *services.UpstreamError:
		writeError(w, http.StatusInternalServerError, e.Error())
	default:
		log.Printf("unhandled error: %v", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
	}
}
