package models

// LLMQuizQuestion is the shape the model is asked to produce for one question.
// The four options are discrete fields so the output schema can require each one.
type LLMQuizQuestion struct {
	Question      string `json:"question"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// Validate checks if the generated question is usable
func (q *LLMQuizQuestion) Validate() error {
	if q.Question == "" {
		return &ValidationError{Field: "question", Message: "question text is required"}
	}
	if q.Option1 == "" || q.Option2 == "" || q.Option3 == "" || q.Option4 == "" {
		return &ValidationError{Field: "options", Message: "all four options are required"}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
		return &ValidationError{Field: "correct_answer", Message: "correct answer index must be between 0 and 3"}
	}
	return nil
}

// QuizQuestion is the public shape of one generated multiple-choice question
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuizResponseSchema is the JSON schema the gateway asks the model to conform to:
// an array of questions with four required options and a bounded answer index.
func QuizResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"question":       map[string]interface{}{"type": "string"},
				"option1":        map[string]interface{}{"type": "string"},
				"option2":        map[string]interface{}{"type": "string"},
				"option3":        map[string]interface{}{"type": "string"},
				"option4":        map[string]interface{}{"type": "string"},
				"correct_answer": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 3},
				"explanation":    map[string]interface{}{"type": "string"},
			},
			"required": []string{
				"question", "option1", "option2", "option3", "option4",
				"correct_answer", "explanation",
			},
		},
	}
}
