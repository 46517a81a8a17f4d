package handlers

import "net/http"

// Routes registers every endpoint on a new mux.
func (db *DBHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", db.Root)
	mux.HandleFunc("GET /schema", db.GetSchema)
	mux.HandleFunc("GET /test", db.TestDatabase)

	// Topics
	mux.HandleFunc("POST /api/topics", db.CreateTopic)
	mux.HandleFunc("GET /api/topics", db.ListTopics)

	// Cards
	mux.HandleFunc("POST /api/cards", db.CreateCard)
	mux.HandleFunc("GET /api/cards", db.ListCards)

	// Study sessions
	mux.HandleFunc("POST /api/answer", db.SubmitAnswer)
	mux.HandleFunc("GET /api/progress", db.GetProgress)

	return mux
}
