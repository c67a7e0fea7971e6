package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	testCases := []struct {
		name           string
		token          string
		payload        any
		wantStatusCode int
		wantOutcome    string
	}{
		{
			name:           "no auth",
			token:          "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "wrong token",
			token:          "wrong",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "no opening",
			token:          tests.TestToken,
			wantStatusCode: http.StatusCreated,
			wantOutcome:    "white",
		},
		{
			name:           "opening to black win",
			token:          tests.TestToken,
			payload:        map[string][]int{"opening": {44, 29, 20, 45, 38, 43, 52, 37, 34}},
			wantStatusCode: http.StatusCreated,
			wantOutcome:    "black",
		},
		{
			name:           "opening to tie",
			token:          tests.TestToken,
			payload:        map[string][]int{"opening": {37, 29, 18, 45, 54, 53, 21, 55, 61, 9, 47, 52, 63, 20, 51, 22, 13, 5, 0, 34}},
			wantStatusCode: http.StatusCreated,
			wantOutcome:    "tie",
		},
		{
			name:           "illegal opening",
			token:          tests.TestToken,
			payload:        map[string][]int{"opening": {19, 0}},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "opening past game end",
			token:          tests.TestToken,
			payload:        map[string][]int{"opening": {44, 29, 20, 45, 38, 43, 52, 37, 34, 1}},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			app, store := tests.NewTestApp(t)

			headers := map[string]string{}
			if tt.token != "" {
				headers["x-token"] = tt.token
			}

			status, body := tests.DoJSON(t, app, http.MethodPost, "/api/simulate", tt.payload, headers)
			require.Equal(t, tt.wantStatusCode, status)

			if tt.wantStatusCode != http.StatusCreated {
				require.Empty(t, store.Results)
				return
			}

			var result models.GameResult
			require.NoError(t, json.Unmarshal(body, &result))
			require.Equal(t, tt.wantOutcome, result.Outcome)

			require.Len(t, store.Results, 1)
			require.Equal(t, result.ID, store.Results[0].ID)
		})
	}
}

func TestSimulate_StoreError(t *testing.T) {
	app, store := tests.NewTestApp(t)
	store.Err = errors.New("database is down")

	headers := map[string]string{"x-token": tests.TestToken}
	status, _ := tests.DoJSON(t, app, http.MethodPost, "/api/simulate", nil, headers)
	require.Equal(t, http.StatusInternalServerError, status)
}

func TestGetStats(t *testing.T) {
	app, store := tests.NewTestApp(t)
	headers := map[string]string{"x-token": tests.TestToken}

	for i := 0; i < 2; i++ {
		status, _ := tests.DoJSON(t, app, http.MethodPost, "/api/simulate", nil, headers)
		require.Equal(t, http.StatusCreated, status)
	}

	opening := map[string][]int{"opening": {44, 29, 20, 45, 38, 43, 52, 37, 34}}
	status, _ := tests.DoJSON(t, app, http.MethodPost, "/api/simulate", opening, headers)
	require.Equal(t, http.StatusCreated, status)

	status, body := tests.DoJSON(t, app, http.MethodGet, "/api/stats", nil, nil)
	require.Equal(t, http.StatusOK, status)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	require.Equal(t, models.Stats{Black: 1, White: 2, Tie: 0}, stats)
	require.Len(t, store.Results, 3)

	store.Err = errors.New("redis is down")
	status, _ = tests.DoJSON(t, app, http.MethodGet, "/api/stats", nil, nil)
	require.Equal(t, http.StatusInternalServerError, status)
}
