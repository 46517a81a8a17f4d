package models

import (
	"fmt"
	"reflect"
	"sort"
)

// Schema is a record kind that can be stored as a document.
type Schema interface {
	Collection() string
	Fields() map[string]any
}

var schemas = []Schema{Topic{}, Card{}, StudyLog{}}

// Schemas returns the declared record kinds.
func Schemas() []Schema {
	out := make([]Schema, len(schemas))
	copy(out, schemas)
	return out
}

// SchemaNames returns the sorted type names of the declared record kinds.
func SchemaNames() ([]string, error) {
	return schemaNames(schemas)
}

func schemaNames(list []Schema) ([]string, error) {
	names := make([]string, 0, len(list))
	for _, s := range list {
		t := reflect.TypeOf(s)
		if t == nil || t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("schema %v is not a struct type", t)
		}
		names = append(names, t.Name())
	}
	sort.Strings(names)
	return names, nil
}
