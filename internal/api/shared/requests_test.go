package shared

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name *string `json:"name" validate:"required"`
	Age  int     `json:"age"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "test", "age": 30}`,
		},
		{
			name:        "trailing whitespace is fine",
			requestBody: "{\"name\": \"test\"}\n  ",
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "test", "age": 30,}`,
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
			errContains: "EOF",
		},
		{
			name:        "unknown field",
			requestBody: `{"name": "test", "extra": true}`,
			wantErr:     true,
			errContains: "unknown field",
		},
		{
			name:        "wrong type",
			requestBody: `{"name": 42}`,
			wantErr:     true,
			errContains: "cannot unmarshal",
		},
		{
			name:        "two objects",
			requestBody: `{"name": "a"}{"name": "b"}`,
			wantErr:     true,
			errContains: "single JSON object",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))
			w := httptest.NewRecorder()

			var target sampleRequest
			err := DecodeJSON(w, req, &target)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, target.Name)
			assert.Equal(t, "test", *target.Name)
		})
	}
}

func TestDecodeJSONBodyTooLarge(t *testing.T) {
	payload := `{"name": "` + strings.Repeat("x", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(payload))
	w := httptest.NewRecorder()

	var target sampleRequest
	err := DecodeJSON(w, req, &target)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, err, &maxErr)
}

// errorReader is a body that fails on read
type errorReader struct{}

func (er errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONWithReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})

	var target sampleRequest
	err := DecodeJSON(nil, req, &target)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestValidateRequest(t *testing.T) {
	name := "test"

	tests := []struct {
		name          string
		req           interface{}
		wantErr       bool
		expectedField string
	}{
		{name: "required pointer present", req: sampleRequest{Name: &name}},
		{name: "required pointer missing", req: sampleRequest{}, wantErr: true, expectedField: "name"},
		{name: "empty string satisfies required", req: sampleRequest{Name: new(string)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.expectedField, validationErr.Field)
			assert.Equal(t, "required field", validationErr.Message)
		})
	}
}

func TestValidateRequestNonStruct(t *testing.T) {
	err := ValidateRequest("not a struct")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request validation failed")
	assert.NotErrorIs(t, err, domain.ErrValidation)
}
