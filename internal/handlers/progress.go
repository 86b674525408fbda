package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"speechdown-backend/internal/models"
	"speechdown-backend/internal/repository"
	"speechdown-backend/internal/services"
)

type progressRepository interface {
	List(ctx context.Context) ([]models.Progress, error)
	Create(ctx context.Context, progress *models.Progress) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Progress, error)
	Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type childFinder interface {
	GetByIDAndTherapist(ctx context.Context, id, therapistID primitive.ObjectID) (*models.Child, error)
}

type ProgressHandler struct {
	progress progressRepository
	children childFinder
}

func NewProgressHandler(progress progressRepository, children childFinder) *ProgressHandler {
	return &ProgressHandler{progress: progress, children: children}
}

func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.progress.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ProgressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ChildID == "" || req.ActivityID == "" || req.TherapistID == "" {
		writeError(w, http.StatusBadRequest, "child_id, activity_id and therapist_id are required")
		return
	}

	childID, err := primitive.ObjectIDFromHex(req.ChildID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid child_id")
		return
	}
	activityID, err := primitive.ObjectIDFromHex(req.ActivityID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activity_id")
		return
	}
	therapistID, err := primitive.ObjectIDFromHex(req.TherapistID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid therapist_id")
		return
	}

	// The only cross-collection check in the API: the child must be assigned
	// to the therapist recording the progress.
	if _, err := h.children.GetByIDAndTherapist(r.Context(), childID, therapistID); err != nil {
		var notFound *repository.NotFoundError
		if errors.As(err, &notFound) {
			err = &services.AssociationError{Message: "child is not assigned to that therapist"}
		}
		handleError(w, err)
		return
	}

	progress := &models.Progress{
		ChildID:     childID,
		ActivityID:  activityID,
		TherapistID: therapistID,
		Score:       req.Score,
		Notes:       req.Notes,
	}
	if err := h.progress.Create(r.Context(), progress); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"_id": progress.ID.Hex()})
}

func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	item, err := h.progress.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	var data map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.progress.Update(r.Context(), id, data); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "progress record updated"})
}

func (h *ProgressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	if err := h.progress.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "progress record deleted"})
}
