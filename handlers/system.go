package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/andrewpaige1/studyapp-api/config"
	"github.com/andrewpaige1/studyapp-api/models"
)

const (
	maxCollections   = 10
	maxStatusMessage = 50
	diagnosticsWait  = 5 * time.Second
)

// GET /
func (db *DBHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Study App Backend Running"})
}

// GET /schema
func (db *DBHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	names, err := models.SchemaNames()
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"models": names})
}

type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// GET /test
//
// Always answers 200: every failure is reported in the body.
func (db *DBHandler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), diagnosticsWait)
	defer cancel()

	writeJSON(w, http.StatusOK, db.diagnose(ctx))
}

func (db *DBHandler) diagnose(ctx context.Context) (d Diagnostics) {
	d = Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	defer func() {
		if rec := recover(); rec != nil {
			zerolog.Ctx(ctx).Error().Interface("panic", rec).Msg("database diagnostics failed")
			d.Database = "❌ Error: " + truncate(fmt.Sprint(rec), maxStatusMessage)
		}
		d.DatabaseURL = setStatus(db.getenv(config.EnvDatabaseURL))
		d.DatabaseName = setStatus(db.getenv(config.EnvDatabaseName))
	}()

	if db.Store == nil || db.Store.Err() != nil {
		d.Database = "⚠️  Available but not initialized"
		return d
	}

	d.Database = "✅ Available"
	d.ConnectionStatus = "Connected"
	zerolog.Ctx(ctx).Debug().Str("database", db.Store.Name()).Msg("checking database")

	if err := db.Store.Ping(ctx); err != nil {
		d.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxStatusMessage)
		return d
	}
	collections, err := db.Store.Collections(ctx, maxCollections)
	if err != nil {
		d.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxStatusMessage)
		return d
	}
	if collections != nil {
		d.Collections = collections
	}
	d.Database = "✅ Connected & Working"
	return d
}

func (db *DBHandler) getenv(key string) string {
	if db.Getenv == nil {
		return ""
	}
	return db.Getenv(key)
}

func setStatus(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
