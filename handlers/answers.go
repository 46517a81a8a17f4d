package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/andrewpaige1/studyapp-api/models"
)

// POST /api/answer
func (db *DBHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	if !db.requireStore(w, r) {
		return
	}

	var studyLog models.StudyLog
	if !decodeRecord(w, r, &studyLog) {
		return
	}

	// Any failure to look the card up counts as the card not existing.
	if _, err := db.Store.GetDocument(r.Context(), models.Card{}.Collection(), studyLog.CardID); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Str("card_id", studyLog.CardID).Msg("card lookup failed")
		writeError(w, http.StatusNotFound, "Card not found")
		return
	}

	id, err := db.Store.CreateDocument(r.Context(), studyLog.Collection(), studyLog.Fields())
	if err != nil {
		storeFailed(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Str("studylog_id", id).
		Str("card_id", studyLog.CardID).
		Bool("correct", *studyLog.Correct).
		Msg("recorded answer")
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}
