package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"Cairo"}`, false},
		{"empty", ``, true},
		{"unknown field", `{"name":"Cairo","extra":1}`, true},
		{"two objects", `{"name":"a"}{"name":"b"}`, true},
		{"malformed", `{"name":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload

			err := DecodeJSON(r, &dst)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Cairo", dst.Name)
		})
	}
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondGone(w, "предложение устарело")

	assert.Equal(t, http.StatusGone, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusGone, body.Code)
	assert.Equal(t, "предложение устарело", body.Message)
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	w := httptest.NewRecorder()

	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), msgInternalError)
}

func TestTrimSentinel(t *testing.T) {
	sentinel := errors.New("reservations: invalid input data")

	assert.Equal(t, "startDate must be before endDate",
		TrimSentinel(fmt.Errorf("%w: startDate must be before endDate", sentinel), sentinel))
	assert.Equal(t, "other", TrimSentinel(errors.New("other"), sentinel))
}
