package httpclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plantops/crane-dashboard/internal/httpclient"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		statusCode    int
		url           string
		message       string
		expectedError string
		retryable     bool
	}{
		{
			name:          "not_found",
			statusCode:    404,
			url:           "https://sheets.googleapis.com/v4/spreadsheets/abc/values/A:Z",
			message:       "Requested entity was not found.",
			expectedError: "HTTP 404 for URL https://sheets.googleapis.com/v4/spreadsheets/abc/values/A:Z: Requested entity was not found.",
		},
		{
			name:          "empty_message",
			statusCode:    400,
			url:           "http://example.com",
			expectedError: "HTTP 400 for URL http://example.com: ",
		},
		{
			name:          "server_error_is_retryable",
			statusCode:    503,
			url:           "http://example.com",
			message:       "Service Unavailable",
			expectedError: "HTTP 503 for URL http://example.com: Service Unavailable",
			retryable:     true,
		},
		{
			name:          "rate_limit_is_retryable",
			statusCode:    429,
			url:           "http://example.com",
			message:       "Quota exceeded",
			expectedError: "HTTP 429 for URL http://example.com: Quota exceeded",
			retryable:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := httpclient.NewHTTPError(tt.statusCode, tt.url, tt.message)
			assert.Equal(t, tt.expectedError, err.Error())
			assert.Equal(t, tt.retryable, err.Retryable())
		})
	}
}
