package entity

// Quiz is the summary row returned by the quiz list.
type Quiz struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Question struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Order  int    `json:"order"`
	QuizID int64  `json:"quiz_id"`
}

type QuizOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type NewQuestion struct {
	Text     string       `json:"text"`
	Order    int          `json:"order"`
	Options  []QuizOption `json:"options"`
	Feedback string       `json:"feedback,omitempty"`
}

// NewQuiz is the create payload for the admin quiz endpoint.
type NewQuiz struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Questions   []NewQuestion `json:"questions"`
}
