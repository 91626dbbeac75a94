package service

import (
	"context"
	"errors"
	"strings"

	"morafo/entities"
)

var (
	ErrImageRequired = errors.New("an image is required for diagnosis")
	ErrBadImage      = errors.New("image is not a valid data url")
)

// DefaultAnimal is preselected in the form.
const DefaultAnimal = "Broiler Chicken"

type Request struct {
	Image  string `json:"image"` // data URL
	Notes  string `json:"notes"`
	Animal string `json:"animal"`
}

type Result struct {
	Animal     string `json:"animal"`
	Markdown   string `json:"markdown"`
	HTML       string `json:"html"`
	Disclaimer string `json:"disclaimer"`
}

// AnimalChoice is one button of the animal picker: Label is shown, Value is sent back.
type AnimalChoice struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BackendError carries the bilingual message shown when the inference call fails.
type BackendError struct {
	Message string
	Err     error
}

func (e *BackendError) Error() string { return "diagnosis: " + e.Err.Error() }
func (e *BackendError) Unwrap() error { return e.Err }

type DiagnosisService interface {
	Animals(lang entities.Language) []AnimalChoice
	Diagnose(ctx context.Context, lang entities.Language, req Request) (*Result, error)
}

func Animals(lang entities.Language) []AnimalChoice {
	labels := []string{"Broiler Chicken", "Layer Chicken", "Free-range (Sesotho)", "Rabbit"}
	if lang == entities.Sesotho {
		labels = []string{"Likhoho tsa Broiler", "Likhoho tsa Mahe", "Khoho ea Sesotho", "Mmutla"}
	}
	out := make([]AnimalChoice, len(labels))
	for i, l := range labels {
		out[i] = AnimalChoice{Label: l, Value: NormalizeAnimal(l)}
	}
	return out
}

// NormalizeAnimal maps a picker label in either language to the term sent to the model.
func NormalizeAnimal(selected string) string {
	switch {
	case strings.Contains(selected, "Broiler"):
		return "Broiler Chicken"
	case strings.Contains(selected, "Mahe"), strings.Contains(selected, "Layer"):
		return "Layer Chicken"
	case strings.Contains(selected, "Sesotho"):
		return "Free-range Chicken"
	case strings.Contains(selected, "Mmutla"), strings.Contains(selected, "Rabbit"):
		return "Rabbit"
	}
	return selected
}

func FailureMessage(lang entities.Language) string {
	return lang.Pick("Error analyzing the image. Please try again.", "Phoso e hlahile ha ho hlahlojoa. Ke kopa u leke hape.")
}

func CannotAnalyze(lang entities.Language) string {
	return lang.Pick("I cannot analyze this image right now.", "Ha ke khone ho hlahloba setšoantšo sena hajoale.")
}

func Disclaimer(lang entities.Language) string {
	return lang.Pick("Always consult a vet if mortality is high.", "Kamehla bona ngaka ea liphoofolo haeba lefu le le kotsi.")
}
