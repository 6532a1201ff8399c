package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"todosvc/shared/failure"
	"todosvc/shared/validator"
)

type testRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description" validate:"omitempty,max=10"`
}

func TestValidateStruct(t *testing.T) {
	long := "this description is too long"

	tests := []struct {
		name     string
		data     testRequest
		wantCode int
		wantMsg  string
	}{
		{
			name: "valid struct",
			data: testRequest{Title: "Buy milk"},
		},
		{
			name:     "missing required field",
			data:     testRequest{},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Title is required",
		},
		{
			name:     "max exceeded",
			data:     testRequest{Title: "Buy milk", Description: &long},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Description must be less than or equal to 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{
			name: "valid JSON",
			body: `{"title":"Buy milk"}`,
		},
		{
			name:     "empty object",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Title is required",
		},
		{
			name:     "empty title",
			body:     `{"title":""}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Title is required",
		},
		{
			name:     "absent body",
			body:     ``,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Title is required",
		},
		{
			name:     "null body",
			body:     `null`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Title is required",
		},
		{
			name:     "array body",
			body:     `[]`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Title is required",
		},
		{
			name:     "string body",
			body:     `"Buy milk"`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Title is required",
		},
		{
			name: "trailing whitespace",
			body: "{\"title\":\"Buy milk\"}\n\t ",
		},
		{
			name:     "trailing data",
			body:     `{"title":"Buy milk"} trailing-garbage`,
			wantCode: http.StatusInternalServerError,
			wantMsg:  failure.MessageInternalError,
		},
		{
			name:     "second document",
			body:     `{"title":"Buy milk"}{"title":"Buy eggs"}`,
			wantCode: http.StatusInternalServerError,
			wantMsg:  failure.MessageInternalError,
		},
		{
			name:     "malformed JSON",
			body:     `{"title":}`,
			wantCode: http.StatusInternalServerError,
			wantMsg:  failure.MessageInternalError,
		},
		{
			name:     "wrong type",
			body:     `{"title":42}`,
			wantCode: http.StatusInternalServerError,
			wantMsg:  failure.MessageInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data testRequest

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "Buy milk", data.Title)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidate_NilReader(t *testing.T) {
	var data testRequest

	err := validator.Validate(nil, &data)

	assert.EqualError(t, err, "Title is required")
}

func TestValidateObject(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{
			name: "valid object",
			body: `{"title":"Buy milk"}`,
		},
		{
			name:     "missing required field",
			body:     `{"description":"x"}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Title is required",
		},
		{
			name:     "absent body",
			body:     ``,
			wantCode: http.StatusInternalServerError,
			wantMsg:  failure.MessageInternalError,
		},
		{
			name:     "null body",
			body:     `null`,
			wantCode: http.StatusInternalServerError,
			wantMsg:  failure.MessageInternalError,
		},
		{
			name:     "array body",
			body:     `[]`,
			wantCode: http.StatusInternalServerError,
			wantMsg:  failure.MessageInternalError,
		},
		{
			name:     "trailing data",
			body:     `{"title":"Buy milk"} trailing-garbage`,
			wantCode: http.StatusInternalServerError,
			wantMsg:  failure.MessageInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data testRequest

			err := validator.ValidateObject(strings.NewReader(tt.body), &data)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "Buy milk", data.Title)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidateObject_NilReader(t *testing.T) {
	var data testRequest

	err := validator.ValidateObject(nil, &data)

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
