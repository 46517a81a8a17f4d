package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/andrewpaige1/studyapp-api/handlers"
	mock_store "github.com/andrewpaige1/studyapp-api/mocks/store"
	"github.com/andrewpaige1/studyapp-api/store"
)

func TestSubmitAnswer_LookupFailureIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock_store.NewMockDocumentStore(ctrl)

	s.EXPECT().Err().Return(nil)
	s.EXPECT().GetDocument(gomock.Any(), "card", "c1").Return(nil, errors.New("connection reset"))
	s.EXPECT().CreateDocument(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rec := do(t, newServer(t, s), http.MethodPost, "/api/answer", map[string]any{
		"card_id": "c1", "topic_id": "t1", "correct": true,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Card not found"}`, rec.Body.String())
}

func TestCreateCard_StoreFailures(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(s *mock_store.MockDocumentStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "topic lookup fails",
			setup: func(s *mock_store.MockDocumentStore) {
				s.EXPECT().GetDocument(gomock.Any(), "topic", "t1").Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal server error"}`,
		},
		{
			name: "insert fails",
			setup: func(s *mock_store.MockDocumentStore) {
				s.EXPECT().GetDocument(gomock.Any(), "topic", "t1").Return(store.Record{"name": "Algebra"}, nil)
				s.EXPECT().CreateDocument(gomock.Any(), "card", gomock.Any()).Return("", errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal server error"}`,
		},
		{
			name: "store went away",
			setup: func(s *mock_store.MockDocumentStore) {
				s.EXPECT().GetDocument(gomock.Any(), "topic", "t1").Return(nil, store.ErrUnavailable)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Database not configured"}`,
		},
		{
			name: "stores defaulted difficulty",
			setup: func(s *mock_store.MockDocumentStore) {
				s.EXPECT().GetDocument(gomock.Any(), "topic", "t1").Return(store.Record{"name": "Algebra"}, nil)
				s.EXPECT().CreateDocument(gomock.Any(), "card", map[string]any{
					"topic_id":   "t1",
					"question":   "2+2?",
					"answer":     "4",
					"difficulty": "medium",
				}).Return("card-1", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"card-1"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mock_store.NewMockDocumentStore(ctrl)
			s.EXPECT().Err().Return(nil)
			tt.setup(s)

			rec := do(t, newServer(t, s), http.MethodPost, "/api/cards", map[string]any{
				"topic_id": "t1", "question": "2+2?", "answer": "4",
			})
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestListTopics_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock_store.NewMockDocumentStore(ctrl)
	s.EXPECT().Err().Return(nil)
	s.EXPECT().GetDocuments(gomock.Any(), "topic", gomock.Any()).Return(nil, errors.New("timeout"))

	rec := do(t, newServer(t, s), http.MethodGet, "/api/topics", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())
}

func TestTestDatabase(t *testing.T) {
	env := map[string]string{"DATABASE_URL": "postgres://db", "DATABASE_NAME": ""}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name  string
		setup func(s *mock_store.MockDocumentStore)
		want  handlers.Diagnostics
	}{
		{
			name: "working",
			setup: func(s *mock_store.MockDocumentStore) {
				s.EXPECT().Err().Return(nil)
				s.EXPECT().Name().Return("study")
				s.EXPECT().Ping(gomock.Any()).Return(nil)
				s.EXPECT().Collections(gomock.Any(), 10).Return([]string{"card", "topic"}, nil)
			},
			want: handlers.Diagnostics{
				Backend:          "✅ Running",
				Database:         "✅ Connected & Working",
				DatabaseURL:      "✅ Set",
				DatabaseName:     "❌ Not Set",
				ConnectionStatus: "Connected",
				Collections:      []string{"card", "topic"},
			},
		},
		{
			name: "not initialized",
			setup: func(s *mock_store.MockDocumentStore) {
				s.EXPECT().Err().Return(store.ErrUnavailable)
			},
			want: handlers.Diagnostics{
				Backend:          "✅ Running",
				Database:         "⚠️  Available but not initialized",
				DatabaseURL:      "✅ Set",
				DatabaseName:     "❌ Not Set",
				ConnectionStatus: "Not Connected",
				Collections:      []string{},
			},
		},
		{
			name: "listing fails",
			setup: func(s *mock_store.MockDocumentStore) {
				s.EXPECT().Err().Return(nil)
				s.EXPECT().Name().Return("study")
				s.EXPECT().Ping(gomock.Any()).Return(nil)
				s.EXPECT().Collections(gomock.Any(), 10).
					Return(nil, errors.New("failed to list collections: permission denied for table documents"))
			},
			want: handlers.Diagnostics{
				Backend:          "✅ Running",
				Database:         "⚠️  Connected but Error: failed to list collections: permission denied for ",
				DatabaseURL:      "✅ Set",
				DatabaseName:     "❌ Not Set",
				ConnectionStatus: "Connected",
				Collections:      []string{},
			},
		},
		{
			name: "ping fails",
			setup: func(s *mock_store.MockDocumentStore) {
				s.EXPECT().Err().Return(nil)
				s.EXPECT().Name().Return("study")
				s.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp: refused"))
			},
			want: handlers.Diagnostics{
				Backend:          "✅ Running",
				Database:         "⚠️  Connected but Error: dial tcp: refused",
				DatabaseURL:      "✅ Set",
				DatabaseName:     "❌ Not Set",
				ConnectionStatus: "Connected",
				Collections:      []string{},
			},
		},
		{
			name: "panicking store",
			setup: func(s *mock_store.MockDocumentStore) {
				s.EXPECT().Err().Return(nil)
				s.EXPECT().Name().Return("study")
				s.EXPECT().Ping(gomock.Any()).DoAndReturn(func(any) error { panic("driver bug") })
			},
			want: handlers.Diagnostics{
				Backend:          "✅ Running",
				Database:         "❌ Error: driver bug",
				DatabaseURL:      "✅ Set",
				DatabaseName:     "❌ Not Set",
				ConnectionStatus: "Connected",
				Collections:      []string{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mock_store.NewMockDocumentStore(ctrl)
			tt.setup(s)

			h := (&handlers.DBHandler{Store: s, Getenv: getenv}).Routes()
			rec := do(t, h, http.MethodGet, "/test", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, decode[handlers.Diagnostics](t, rec))
		})
	}
}
