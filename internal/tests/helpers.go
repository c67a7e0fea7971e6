package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal"
	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/models"
	"github.com/stretchr/testify/require"
)

const TestToken = "test-token"

// MemoryResultStore keeps results in memory. Err is returned by all methods when set.
type MemoryResultStore struct {
	mu      sync.Mutex
	Results []models.GameResult
	Err     error
}

// Save appends the result.
func (s *MemoryResultStore) Save(_ context.Context, result models.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	s.Results = append(s.Results, result)
	return nil
}

// Stats counts the saved results per outcome.
func (s *MemoryResultStore) Stats(_ context.Context) (models.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return models.Stats{}, s.Err
	}

	var stats models.Stats
	for _, result := range s.Results {
		switch result.Outcome {
		case "black":
			stats.Black++
		case "white":
			stats.White++
		case "tie":
			stats.Tie++
		}
	}
	return stats, nil
}

// NewTestApp creates an app backed by a MemoryResultStore.
func NewTestApp(t *testing.T) (*fiber.App, *MemoryResultStore) {
	t.Helper()

	cfg := &config.ServerConfig{
		Token:             TestToken,
		MaxInvalidChoices: config.DefaultMaxInvalidChoices,
	}

	store := &MemoryResultStore{}
	return internal.NewApp(cfg, store), store
}

// DoJSON sends a request with an optional JSON body and returns the status code and the raw response body.
func DoJSON(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBody
}
