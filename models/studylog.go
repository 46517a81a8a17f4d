package models

// StudyLog records one answer attempt for a card.
// Collection name: "studylog"
//
// TopicID is taken from the caller as-is and is not checked against the
// card's own topic.
type StudyLog struct {
	CardID  string `json:"card_id" validate:"required"`
	TopicID string `json:"topic_id" validate:"required"`
	Correct *bool  `json:"correct" validate:"required"`
}

func (StudyLog) Collection() string { return "studylog" }

func (l StudyLog) Fields() map[string]any {
	return map[string]any{
		"card_id":  l.CardID,
		"topic_id": l.TopicID,
		"correct":  *l.Correct,
	}
}
