package serverutils

import (
	"errors"
	"testing"

	"qa-live-be/internal/dto"
	"qa-live-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequestUsesErrmsgTag(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{}
		wantMsg string
	}{
		{
			name:    "qa missing host",
			req:     &dto.CreateQARequest{StartTime: "x", EndTime: "y"},
			wantMsg: "Name of Host is Missing",
		},
		{
			name:    "qa missing start time",
			req:     &dto.CreateQARequest{HostName: "Hosty", EndTime: "y"},
			wantMsg: "Start Time is Missing",
		},
		{
			name:    "question missing asker",
			req:     &dto.CreateQuestionRequest{Text: "Why?"},
			wantMsg: "Name of Asking User is Missing",
		},
		{
			name:    "question missing text",
			req:     &dto.CreateQuestionRequest{AskedByName: "Asker"},
			wantMsg: "Question is Missing",
		},
		{
			name:    "answer missing answerer",
			req:     &dto.CreateAnswerRequest{},
			wantMsg: "Name of Answering User is Missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			var valErr *apperror.ValidationError
			assert.True(t, errors.As(err, &valErr))
			assert.Equal(t, tt.wantMsg, valErr.Message)
		})
	}
}

func TestValidateRequestPassesValidInput(t *testing.T) {
	err := ValidateRequest(&dto.CreateQARequest{
		HostName:  "Hosty",
		StartTime: "2026-03-01T10:00:00Z",
		EndTime:   "2026-03-01T11:00:00Z",
	})
	assert.NoError(t, err)
}

func TestValidateRequestFallbackMessage(t *testing.T) {
	type untagged struct {
		Field string `validate:"required"`
	}
	err := ValidateRequest(&untagged{})
	var valErr *apperror.ValidationError
	assert.True(t, errors.As(err, &valErr))
	assert.Equal(t, "Field is invalid", valErr.Message)
}

func TestResponseEnvelopes(t *testing.T) {
	ok := SuccessResponse("", map[string]string{"k": "v"})
	assert.Equal(t, "success", ok.Status)
	assert.Equal(t, "success", ok.Message)

	miss := EmptySuccessResponse("No Matching QA ID in Our Records")
	assert.Equal(t, "success", miss.Status)
	assert.Equal(t, "No Matching QA ID in Our Records", miss.Message)
	assert.Empty(t, miss.Data)

	failed := FailedResponse("Unable to Create QA")
	assert.Equal(t, "failed", failed.Status)
	assert.NotNil(t, failed.Data)
}
