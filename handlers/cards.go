package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/andrewpaige1/studyapp-api/models"
	"github.com/andrewpaige1/studyapp-api/store"
	"github.com/andrewpaige1/studyapp-api/utils"
)

// POST /api/cards
func (db *DBHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	if !db.requireStore(w, r) {
		return
	}

	var card models.Card
	if !decodeRecord(w, r, &card) {
		return
	}
	card.ApplyDefaults()

	// The topic must exist now; it is not re-checked later.
	_, err := db.Store.GetDocument(r.Context(), models.Topic{}.Collection(), card.TopicID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Topic not found")
		return
	}
	if err != nil {
		storeFailed(w, r, err)
		return
	}

	id, err := db.Store.CreateDocument(r.Context(), card.Collection(), card.Fields())
	if err != nil {
		storeFailed(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Str("card_id", id).Str("topic_id", card.TopicID).Msg("created card")
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

// GET /api/cards?topic_id=
func (db *DBHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	if !db.requireStore(w, r) {
		return
	}

	docs, err := db.Store.GetDocuments(r.Context(), models.Card{}.Collection(), topicFilter(r))
	if err != nil {
		storeFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, utils.SerializeDocs(docs))
}

// topicFilter matches on topic_id when the query parameter is given and non-empty.
func topicFilter(r *http.Request) map[string]any {
	if topicID := r.URL.Query().Get("topic_id"); topicID != "" {
		return map[string]any{"topic_id": topicID}
	}
	return map[string]any{}
}
