package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/andrewpaige1/studyapp-api/models"
	"github.com/andrewpaige1/studyapp-api/utils"
)

// POST /api/topics
func (db *DBHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	if !db.requireStore(w, r) {
		return
	}

	var topic models.Topic
	if !decodeRecord(w, r, &topic) {
		return
	}

	id, err := db.Store.CreateDocument(r.Context(), topic.Collection(), topic.Fields())
	if err != nil {
		storeFailed(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Str("topic_id", id).Msg("created topic")
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

// GET /api/topics
func (db *DBHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	if !db.requireStore(w, r) {
		return
	}

	docs, err := db.Store.GetDocuments(r.Context(), models.Topic{}.Collection(), map[string]any{})
	if err != nil {
		storeFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, utils.SerializeDocs(docs))
}
