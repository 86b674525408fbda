package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"speechdown-backend/internal/models"
	"speechdown-backend/internal/repository"
)

const (
	TaskReading       = "lectura"
	TaskPronunciation = "pronunciacion"
	TaskComprehension = "comprension"
)

type textCompleter interface {
	Complete(ctx context.Context, system, prompt string, temperature float32, maxTokens int32) (string, error)
}

type activityStore interface {
	Create(ctx context.Context, activity *models.Activity) error
}

// ActivityGenerator renders a prompt template from the request parameters,
// performs one completion call and persists the result as an AI-authored
// activity. A failed call is a failed request: no retry, no fallback content.
type ActivityGenerator struct {
	llm        textCompleter
	activities activityStore
}

func NewActivityGenerator(llm textCompleter, activities activityStore) *ActivityGenerator {
	return &ActivityGenerator{llm: llm, activities: activities}
}

func (g *ActivityGenerator) GenerateReading(ctx context.Context, req models.GenerateReadingRequest) (*models.Activity, error) {
	therapistID, err := requireParams(req.Age, req.TherapistID)
	if err != nil {
		return nil, err
	}

	length := req.Length
	if length == 0 {
		length = 5
	}
	theme := req.Theme
	if theme == "" {
		theme = "animales"
	}

	prompt := buildReadingPrompt(req.Age, length, theme)
	title := fmt.Sprintf("Cuento terapéutico (%s)", theme)
	return g.generate(ctx, readingSystemRole, prompt, 0.7, 300, title, TaskReading, therapistID)
}

func (g *ActivityGenerator) GeneratePronunciation(ctx context.Context, req models.GeneratePronunciationRequest) (*models.Activity, error) {
	therapistID, err := requireParams(req.Age, req.TherapistID)
	if err != nil {
		return nil, err
	}

	count := req.Count
	if count == 0 {
		count = 10
	}
	syllableType := req.SyllableType
	if syllableType == "" {
		syllableType = "fáciles"
	}

	prompt := buildPronunciationPrompt(req.Age, count, syllableType)
	title := fmt.Sprintf("Ejercicio de pronunciación (%s)", syllableType)
	return g.generate(ctx, pronunciationSystemRole, prompt, 0.5, 150, title, TaskPronunciation, therapistID)
}

func (g *ActivityGenerator) GenerateComprehension(ctx context.Context, req models.GenerateComprehensionRequest) (*models.Activity, error) {
	therapistID, err := requireParams(req.Age, req.TherapistID)
	if err != nil {
		return nil, err
	}

	questionCount := req.QuestionCount
	if questionCount == 0 {
		questionCount = 3
	}
	theme := req.Theme
	if theme == "" {
		theme = "cotidiana"
	}

	prompt := buildComprehensionPrompt(req.Age, questionCount, theme)
	title := fmt.Sprintf("Comprensión lectora (%s)", theme)
	return g.generate(ctx, comprehensionSystemRole, prompt, 0.7, 400, title, TaskComprehension, therapistID)
}

// Generate is the combined variant: task_type selects the template, the word
// list keeps its lower creativity setting and everything is capped uniformly.
func (g *ActivityGenerator) Generate(ctx context.Context, req models.GenerateActivityRequest) (*models.Activity, error) {
	age := req.Age
	if age == 0 {
		age = req.ChildAge
	}
	therapistID, err := requireParams(age, req.TherapistID)
	if err != nil {
		return nil, err
	}

	taskType := req.TaskType
	if taskType == "" {
		taskType = TaskReading
	}

	var (
		system      string
		prompt      string
		title       string
		temperature float32 = 0.7
	)

	switch taskType {
	case TaskReading:
		length := req.SentenceCount
		if length == 0 {
			length = 5
		}
		theme := req.Theme
		if theme == "" {
			theme = "animales"
		}
		system = readingSystemRole
		prompt = buildReadingPrompt(age, length, theme)
		title = fmt.Sprintf("Cuento terapéutico (%s)", theme)
	case TaskPronunciation:
		count := req.WordCount
		if count == 0 {
			count = 10
		}
		syllableType := req.SyllableType
		if syllableType == "" {
			syllableType = "fáciles"
		}
		system = pronunciationSystemRole
		prompt = buildPronunciationPrompt(age, count, syllableType)
		title = fmt.Sprintf("Ejercicio de pronunciación (%s)", syllableType)
		temperature = 0.5
	case TaskComprehension:
		questionCount := req.QuestionCount
		if questionCount == 0 {
			questionCount = 3
		}
		theme := req.Theme
		if theme == "" {
			theme = "cotidiana"
		}
		system = comprehensionSystemRole
		prompt = buildComprehensionPrompt(age, questionCount, theme)
		title = fmt.Sprintf("Comprensión lectora (%s)", theme)
	default:
		return nil, &repository.ValidationError{
			Message: `task_type must be "lectura", "pronunciacion" or "comprension"`,
		}
	}

	return g.generate(ctx, system, prompt, temperature, 400, title, taskType, therapistID)
}

func (g *ActivityGenerator) generate(ctx context.Context, system, prompt string, temperature float32, maxTokens int32, title, taskType string, therapistID primitive.ObjectID) (*models.Activity, error) {
	content, err := g.llm.Complete(ctx, system, prompt, temperature, maxTokens)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	activity := &models.Activity{
		Title:         title,
		Content:       content,
		Type:          taskType,
		CreatedBy:     therapistID,
		IsAIGenerated: true,
		Prompt:        prompt,
	}
	if err := g.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func requireParams(age int, therapistID string) (primitive.ObjectID, error) {
	if age == 0 || therapistID == "" {
		return primitive.NilObjectID, &MissingParamsError{Message: "age and therapist_id are required"}
	}
	oid, err := primitive.ObjectIDFromHex(therapistID)
	if err != nil {
		return primitive.NilObjectID, &repository.InvalidIDError{Message: "invalid therapist_id"}
	}
	return oid, nil
}
