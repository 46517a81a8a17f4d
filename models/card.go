package models

const DefaultDifficulty = "medium"

// Card is a single question/answer flashcard belonging to a topic.
// Collection name: "card"
type Card struct {
	TopicID    string `json:"topic_id" validate:"required"`
	Question   string `json:"question" validate:"required,min=1,max=1000"`
	Answer     string `json:"answer" validate:"required,min=1,max=2000"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

func (Card) Collection() string { return "card" }

// ApplyDefaults fills optional fields that were left empty by the caller.
func (c *Card) ApplyDefaults() {
	if c.Difficulty == "" {
		c.Difficulty = DefaultDifficulty
	}
}

func (c Card) Fields() map[string]any {
	return map[string]any{
		"topic_id":   c.TopicID,
		"question":   c.Question,
		"answer":     c.Answer,
		"difficulty": c.Difficulty,
	}
}
