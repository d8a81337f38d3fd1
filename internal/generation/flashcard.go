package generation

// Flashcard is a single question/answer pair.
type Flashcard struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"   validate:"required"`
}
