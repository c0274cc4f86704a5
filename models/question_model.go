package models

// Question.Category holds the owning category id and may be null; it is not
// checked against the categories table on insert.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text" json:"question"`
	Answer     string `gorm:"type:text" json:"answer"`
	Category   *uint  `gorm:"index" json:"category"`
	Difficulty *int   `json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}

type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   *uint  `json:"category"`
	Difficulty *int   `json:"difficulty"`
}

func (q Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []FormattedQuestion {
	formatted := make([]FormattedQuestion, len(questions))
	for i, q := range questions {
		formatted[i] = q.Format()
	}
	return formatted
}
