package advice

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxFieldLength bounds each free-text input, in runes.
const MaxFieldLength = 4000

const (
	recommendPreamble = "You are an advisor who helps the user grow from their retrospectives."
	painPointsLabel   = "Recent pain points: "
	moodNoteLabel     = "Recent emotional note: "
	recommendClosing  = "Based on the notes above, suggest exactly two concrete, positive and actionable things the user can do next. " +
		"Answer as a numbered list in the form \"1. ...\" and \"2. ...\", one suggestion per item."

	summaryPreamble = "You are an assistant who summarizes personal retrospective notes."
	summaryClosing  = "Summarize the note above in two or three plain sentences. Keep the user's own perspective and do not add advice."
)

// RetrospectiveInput carries the optional free-text fields a recommendation is built from.
type RetrospectiveInput struct {
	PainPoints string `json:"painPoints"`
	MoodNote   string `json:"moodNote"`
}

// Build composes the recommendation prompt. Fields that are blank contribute no line.
func Build(input RetrospectiveInput) (string, error) {
	painPoints := strings.TrimSpace(input.PainPoints)
	moodNote := strings.TrimSpace(input.MoodNote)
	if painPoints == "" && moodNote == "" {
		return "", &InvalidInputError{Reason: "painPoints or moodNote is required"}
	}
	if err := checkLength("painPoints", painPoints); err != nil {
		return "", err
	}
	if err := checkLength("moodNote", moodNote); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(recommendPreamble)
	b.WriteString("\n\n")
	if painPoints != "" {
		b.WriteString(painPointsLabel)
		b.WriteString(painPoints)
		b.WriteString("\n")
	}
	if moodNote != "" {
		b.WriteString(moodNoteLabel)
		b.WriteString(moodNote)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(recommendClosing)
	return b.String(), nil
}

// BuildSummary composes the prompt that asks for a short summary of one note.
func BuildSummary(note string) (string, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return "", &InvalidInputError{Field: "text", Reason: "is required"}
	}
	if err := checkLength("text", note); err != nil {
		return "", err
	}
	return summaryPreamble + "\n\nNote:\n" + note + "\n\n" + summaryClosing, nil
}

func checkLength(field, value string) error {
	if utf8.RuneCountInString(value) > MaxFieldLength {
		return &InvalidInputError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", MaxFieldLength)}
	}
	return nil
}
