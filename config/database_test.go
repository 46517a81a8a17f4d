package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DatabaseConfig
		wantName string
		wantErr  error
	}{
		{
			name:    "missing url",
			cfg:     DatabaseConfig{Name: "study"},
			wantErr: ErrNotConfigured,
		},
		{
			name:    "missing name",
			cfg:     DatabaseConfig{URL: "sqlite://study.db"},
			wantErr: ErrNotConfigured,
		},
		{
			name:     "postgres",
			cfg:      DatabaseConfig{URL: "postgres://u:p@localhost:5432/postgres?sslmode=disable", Name: "study"},
			wantName: "postgres",
		},
		{
			name:     "postgresql scheme",
			cfg:      DatabaseConfig{URL: "postgresql://localhost", Name: "study"},
			wantName: "postgres",
		},
		{
			name:     "sqlite",
			cfg:      DatabaseConfig{URL: "sqlite://study.db", Name: "study"},
			wantName: "sqlite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dialector(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name())
		})
	}
}

func TestDialector_Invalid(t *testing.T) {
	for _, url := range []string{"mongodb://localhost", "sqlite://"} {
		_, err := Dialector(DatabaseConfig{URL: url, Name: "study"})
		assert.Error(t, err, url)
		assert.NotErrorIs(t, err, ErrNotConfigured, url)
	}
}

func TestConnect_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.db")

	g, err := Connect(DatabaseConfig{URL: "sqlite://" + path, Name: "study"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })

	require.NoError(t, g.Err())
	assert.Equal(t, "study", g.Name())

	ctx := context.Background()
	id, err := g.CreateDocument(ctx, "topic", map[string]any{"name": "Algebra"})
	require.NoError(t, err)

	rec, err := g.GetDocument(ctx, "topic", id)
	require.NoError(t, err)
	assert.Equal(t, "Algebra", rec["name"])
}

func TestConnect_NotConfigured(t *testing.T) {
	_, err := Connect(DatabaseConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
