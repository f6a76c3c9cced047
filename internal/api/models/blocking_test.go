package models_test

import (
	"testing"

	"github.com/jroosing/blockproxy/internal/api/models"
	"github.com/jroosing/blockproxy/internal/blocking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlockingRequest(t *testing.T) {
	state, err := models.ParseBlockingRequest([]byte(`{"state":"Disabled"}`))
	require.NoError(t, err)
	assert.Equal(t, blocking.Disabled, state)

	state, err = models.ParseBlockingRequest([]byte(" {\"state\":\"Enabled\"}\n"))
	require.NoError(t, err)
	assert.Equal(t, blocking.Enabled, state)
}

func TestParseBlockingRequest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"empty", ``, models.ErrInvalidJSON},
		{"trailing data", `{"state":"Disabled"} x`, models.ErrInvalidJSON},
		{"two values", `{"state":"Disabled"}{"state":"Enabled"}`, models.ErrInvalidJSON},
		{"truncated", `{"state":"Disabled"`, models.ErrInvalidJSON},
		{"capitalized key", `{"State":"Disabled"}`, models.ErrMissingState},
		{"upper-case key", `{"STATE":"Disabled"}`, models.ErrMissingState},
		{"null state", `{"state":null}`, models.ErrMissingState},
		{"null body", `null`, models.ErrMissingState},
		{"empty object", `{}`, models.ErrMissingState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.ParseBlockingRequest([]byte(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseBlockingRequest_InvalidValues(t *testing.T) {
	for _, body := range []string{`"Disabled"`, `[]`, `{"state":"enabled"}`, `{"state":1}`, `{"state":true}`} {
		t.Run(body, func(t *testing.T) {
			_, err := models.ParseBlockingRequest([]byte(body))
			assert.Error(t, err)
		})
	}
}
