package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"speechdown-backend/internal/models"
)

type childRepository interface {
	List(ctx context.Context) ([]models.Child, error)
	Create(ctx context.Context, child *models.Child) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Child, error)
	Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ChildHandler struct {
	children childRepository
}

func NewChildHandler(children childRepository) *ChildHandler {
	return &ChildHandler{children: children}
}

func (h *ChildHandler) List(w http.ResponseWriter, r *http.Request) {
	children, err := h.children.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, children)
}

func (h *ChildHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.ParentID == "" || req.TherapistID == "" {
		writeError(w, http.StatusBadRequest, "name, parent_id and therapist_id are required")
		return
	}

	parentID, err := primitive.ObjectIDFromHex(req.ParentID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid parent_id")
		return
	}
	therapistID, err := primitive.ObjectIDFromHex(req.TherapistID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid therapist_id")
		return
	}

	child := &models.Child{
		Name:        req.Name,
		Age:         req.Age,
		Diagnosis:   req.Diagnosis,
		ParentID:    parentID,
		TherapistID: therapistID,
		Notes:       req.Notes,
	}
	if err := h.children.Create(r.Context(), child); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"_id": child.ID.Hex()})
}

func (h *ChildHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	child, err := h.children.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, child)
}

func (h *ChildHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	var data map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.children.Update(r.Context(), id, data); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "child updated"})
}

func (h *ChildHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	if err := h.children.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "child deleted"})
}
