package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"speechdown-backend/internal/models"
)

type activityRepository interface {
	List(ctx context.Context) ([]models.Activity, error)
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Activity, error)
	Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type activityProgressStore interface {
	Create(ctx context.Context, progress *models.ActivityProgress) error
}

type activityGenerator interface {
	GenerateReading(ctx context.Context, req models.GenerateReadingRequest) (*models.Activity, error)
	GeneratePronunciation(ctx context.Context, req models.GeneratePronunciationRequest) (*models.Activity, error)
	GenerateComprehension(ctx context.Context, req models.GenerateComprehensionRequest) (*models.Activity, error)
	Generate(ctx context.Context, req models.GenerateActivityRequest) (*models.Activity, error)
}

type ActivityHandler struct {
	activities activityRepository
	notes      activityProgressStore
	generator  activityGenerator
}

func NewActivityHandler(activities activityRepository, notes activityProgressStore, generator activityGenerator) *ActivityHandler {
	return &ActivityHandler{activities: activities, notes: notes, generator: generator}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" || req.CreatedBy == "" {
		writeError(w, http.StatusBadRequest, "title, content and created_by are required")
		return
	}

	createdBy, err := primitive.ObjectIDFromHex(req.CreatedBy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid created_by")
		return
	}

	activity := &models.Activity{
		Title:         req.Title,
		Content:       req.Content,
		CreatedBy:     createdBy,
		IsAIGenerated: req.IsAIGenerated,
		Prompt:        req.Prompt,
	}
	if err := h.activities.Create(r.Context(), activity); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"_id": activity.ID.Hex()})
}

func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	activity, err := h.activities.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	var data map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.activities.Update(r.Context(), id, data); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "activity updated"})
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	if err := h.activities.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "activity deleted"})
}

// SaveProgress records a lightweight completion note scoped to one activity.
// It is unrelated to the main progress collection and enforces nothing.
func (h *ActivityHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r)
	if !ok {
		return
	}
	var req struct {
		Notes     string `json:"notes"`
		Completed bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note := &models.ActivityProgress{
		ActivityID: id,
		Notes:      req.Notes,
		Completed:  req.Completed,
	}
	if err := h.notes.Create(r.Context(), note); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "progress saved"})
}

func (h *ActivityHandler) GenerateReading(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	activity, err := h.generator.GenerateReading(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

func (h *ActivityHandler) GeneratePronunciation(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePronunciationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	activity, err := h.generator.GeneratePronunciation(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

func (h *ActivityHandler) GenerateComprehension(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateComprehensionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	activity, err := h.generator.GenerateComprehension(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

func (h *ActivityHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	activity, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}
