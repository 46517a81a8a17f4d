package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/andrewpaige1/studyapp-api/store"
)

func TestSerializeDoc(t *testing.T) {
	id := uuid.MustParse("0190f3b4-7c1a-7d2e-8f00-123456789abc")
	nested := uuid.MustParse("0190f3b4-7c1a-7d2e-8f00-cba987654321")

	tests := []struct {
		name string
		doc  store.Record
		want map[string]any
	}{
		{
			name: "nil passes through",
			doc:  nil,
			want: nil,
		},
		{
			name: "identifier becomes a string",
			doc:  store.Record{"_id": id, "name": "Algebra"},
			want: map[string]any{"_id": "0190f3b4-7c1a-7d2e-8f00-123456789abc", "name": "Algebra"},
		},
		{
			name: "record without identifier is unchanged",
			doc:  store.Record{"name": "Algebra"},
			want: map[string]any{"name": "Algebra"},
		},
		{
			name: "identifier of another type is unchanged",
			doc:  store.Record{"_id": "already-a-string"},
			want: map[string]any{"_id": "already-a-string"},
		},
		{
			name: "nested identifiers are not converted",
			doc:  store.Record{"_id": id, "card": map[string]any{"_id": nested}},
			want: map[string]any{"_id": id.String(), "card": map[string]any{"_id": nested}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SerializeDoc(tt.doc))
		})
	}
}

func TestSerializeDoc_DoesNotMutateInput(t *testing.T) {
	id := uuid.New()
	doc := store.Record{"_id": id}

	_ = SerializeDoc(doc)

	assert.Equal(t, id, doc["_id"])
}

func TestSerializeDocs(t *testing.T) {
	assert.Equal(t, []map[string]any{}, SerializeDocs(nil))

	id := uuid.New()
	got := SerializeDocs([]store.Record{{"_id": id}})
	assert.Equal(t, []map[string]any{{"_id": id.String()}}, got)
}
