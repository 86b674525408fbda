package services

import "fmt"

// System roles and templates are rendered in Spanish: the application serves
// Spanish-speaking therapists and the generated material is read to children.
const (
	readingSystemRole       = "Eres un generador de cuentos terapéuticos para niños."
	pronunciationSystemRole = "Eres un generador de palabras para ejercicios de pronunciación."
	comprehensionSystemRole = "Eres un generador de ejercicios de comprensión lectora para niños."
)

func buildReadingPrompt(age, length int, theme string) string {
	return fmt.Sprintf(
		"Genera un cuento corto de %d oraciones para un niño de %d años, "+
			"con lenguaje sencillo y temática de %s, adecuado para terapia de lectura.",
		length, age, theme)
}

func buildPronunciationPrompt(age, count int, syllableType string) string {
	return fmt.Sprintf(
		"Genera una lista de %d palabras con sílabas %s para un niño de %d años "+
			"que practica pronunciación.",
		count, syllableType, age)
}

func buildComprehensionPrompt(age, questionCount int, theme string) string {
	return fmt.Sprintf(
		"Genera un texto corto de 3-4 oraciones sobre una situación %s para un niño de %d años, "+
			"seguido de %d preguntas de comprensión con respuestas.",
		theme, age, questionCount)
}
