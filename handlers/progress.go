package handlers

import (
	"net/http"

	"github.com/andrewpaige1/studyapp-api/models"
	"github.com/andrewpaige1/studyapp-api/store"
)

type Progress struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// ComputeProgress counts logs and the ones whose correct field is true.
// Accuracy is 0 when there are no logs.
func ComputeProgress(logs []store.Record) Progress {
	p := Progress{Total: len(logs)}
	for _, l := range logs {
		if correct, ok := l["correct"].(bool); ok && correct {
			p.Correct++
		}
	}
	if p.Total > 0 {
		p.Accuracy = float64(p.Correct) / float64(p.Total)
	}
	return p
}

// GET /api/progress?topic_id=
func (db *DBHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	if !db.requireStore(w, r) {
		return
	}

	logs, err := db.Store.GetDocuments(r.Context(), models.StudyLog{}.Collection(), topicFilter(r))
	if err != nil {
		storeFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ComputeProgress(logs))
}
