package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(name, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetAndValidateURLParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		paramValue string
		wantValue  string
		wantErrMsg string
	}{
		{name: "plain crane id", paramValue: "CR-001", wantValue: "CR-001"},
		{name: "url-encoded slash", paramValue: "CR%2F001", wantValue: "CR/001"},
		{name: "url-encoded hangul", paramValue: "%ED%81%AC%EB%A0%88%EC%9D%B8", wantValue: "크레인"},
		{name: "empty", paramValue: "", wantErrMsg: "craneId cannot be empty"},
		{name: "encoded spaces only", paramValue: "%20%20", wantErrMsg: "craneId cannot be empty"},
		{name: "space in middle", paramValue: "CR%20001", wantErrMsg: "craneId cannot contain whitespace"},
		{name: "tab at end", paramValue: "CR-001%09", wantErrMsg: "craneId cannot contain whitespace"},
		{name: "invalid hex", paramValue: "CR%ZZ", wantErrMsg: "invalid URL encoding in craneId"},
		{name: "incomplete percent", paramValue: "CR%", wantErrMsg: "invalid URL encoding in craneId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := GetAndValidateURLParam(requestWithParam("craneId", tt.paramValue), "craneId")
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestGetIDURLParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		paramValue string
		wantID     int
		wantErrMsg string
	}{
		{name: "positive", paramValue: "42", wantID: 42},
		{name: "zero", paramValue: "0", wantErrMsg: "id must be a positive integer"},
		{name: "negative", paramValue: "-3", wantErrMsg: "id must be a positive integer"},
		{name: "not a number", paramValue: "abc", wantErrMsg: "id must be a positive integer"},
		{name: "empty", paramValue: "", wantErrMsg: "id cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := GetIDURLParam(requestWithParam("id", tt.paramValue), "id")
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
