// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openaiStub points the go-openai client at a local server, the same way
// the ollama adapter points it at localhost.
func openaiStub(t *testing.T, handler http.HandlerFunc) *OpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOllama(srv.URL)
}

func TestOpenAISubmit_Success(t *testing.T) {
	o := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"fix: close file handle"}}]}`))
	})

	text, err := o.Submit(context.Background(), "prompt", "llama2", 0.3, 500)
	require.NoError(t, err)
	assert.Equal(t, "fix: close file handle", text)
}

func TestOpenAISubmit_NoChoices(t *testing.T) {
	o := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := o.Submit(context.Background(), "p", "m", 0.3, 500)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestOpenAISubmit_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	o := NewOllama(url)
	_, err := o.Submit(context.Background(), "p", "m", 0.3, 500)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClassifyOpenAIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrAuth},
		{"forbidden", http.StatusForbidden, ErrAuth},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimit},
		{"model missing", http.StatusNotFound, ErrUnsupportedModel},
		{"server error", http.StatusInternalServerError, ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := &openai.APIError{HTTPStatusCode: tt.status, Message: "boom"}
			assert.ErrorIs(t, classifyOpenAIError(apiErr), tt.wantErr)
		})
	}
}

func TestNewOpenAI_RequiresKey(t *testing.T) {
	_, err := NewOpenAI("")
	assert.ErrorIs(t, err, ErrAuth)
}
