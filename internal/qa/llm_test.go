package qa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-agent-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMClientRequiresAPIKey(t *testing.T) {
	_, err := NewLLMClient(LLMClientConfig{})
	assert.Error(t, err)
}

func TestNewLLMClientDefaults(t *testing.T) {
	c, err := NewLLMClient(LLMClientConfig{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, defaultLLMModel, c.cfg.Model)
	assert.Equal(t, defaultLLMAPIURL, c.cfg.APIURL)
	assert.InDelta(t, 0.3, c.cfg.Temperature, 1e-9)
	assert.Equal(t, 200, c.cfg.MaxTokens)
}

func TestPrepareContextFlattensProfile(t *testing.T) {
	ctx := PrepareContext(fullProfile())

	assert.Contains(t, ctx, "Name: Jane Doe")
	assert.Contains(t, ctx, "Contact: Jane Doe | Email: jane.doe@example.com")
	assert.Contains(t, ctx, "Education: Bachelor of Technology in Computer Science from Indian Institute of Technology (2022)")
	assert.Contains(t, ctx, "total_years: 5 years")
	assert.Contains(t, ctx, "Skills: Go, Python, Docker")
	assert.Contains(t, ctx, "Certifications: AWS Certified Solutions Architect")
}

func TestPrepareContextSkipsEmptyFields(t *testing.T) {
	ctx := PrepareContext(types.EmptyProfile())
	assert.Empty(t, ctx)
}

func TestLLMClientAnswer(t *testing.T) {
	var gotAuth string
	var gotReq chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		content := "The candidate has 5 years of experience."
		resp := chatCompletionResponse{
			Model: gotReq.Model,
			Choices: []chatChoice{
				{Index: 0, FinishReason: "stop"},
			},
		}
		resp.Choices[0].Message.Role = "assistant"
		resp.Choices[0].Message.Content = &content
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client, err := NewLLMClient(LLMClientConfig{APIKey: "test-key", APIURL: server.URL})
	require.NoError(t, err)

	answer, err := client.Answer(context.Background(), "How experienced are they?", fullProfile())
	require.NoError(t, err)
	assert.Equal(t, "The candidate has 5 years of experience.", answer)

	assert.Equal(t, "Bearer test-key", gotAuth)
	// system + user 两条消息，画像上下文拼进user消息
	require.Len(t, gotReq.Messages, 2)
	assert.Contains(t, gotReq.Messages[1].Content, "Jane Doe")
	assert.Contains(t, gotReq.Messages[1].Content, "How experienced are they?")
}

func TestLLMClientAnswerServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewLLMClient(LLMClientConfig{APIKey: "test-key", APIURL: server.URL})
	require.NoError(t, err)

	_, err = client.Answer(context.Background(), "anything", fullProfile())
	assert.Error(t, err)
}
