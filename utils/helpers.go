package utils

import (
	"github.com/google/uuid"

	"github.com/andrewpaige1/studyapp-api/store"
)

// SerializeDoc returns a copy of doc that is safe to encode for transport.
// Only the top level is inspected: an identifier held as a uuid.UUID under
// store.IDField becomes its string form, everything else (nested maps and
// slices included) is passed through untouched. A nil doc yields nil.
func SerializeDoc(doc store.Record) map[string]any {
	if doc == nil {
		return nil
	}

	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	if id, ok := out[store.IDField].(uuid.UUID); ok {
		out[store.IDField] = id.String()
	}
	return out
}

// SerializeDocs applies SerializeDoc to each record. The result is never nil.
func SerializeDocs(docs []store.Record) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, SerializeDoc(d))
	}
	return out
}
