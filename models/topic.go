package models

// Topic groups cards under a subject.
// Collection name: "topic"
type Topic struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=300"`
}

func (Topic) Collection() string { return "topic" }

func (t Topic) Fields() map[string]any {
	var description any
	if t.Description != nil {
		description = *t.Description
	}
	return map[string]any{
		"name":        t.Name,
		"description": description,
	}
}
