package integration

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReservation hammers a single tested-safe unit with parallel
// reservation requests through the real HTTP stack. The conditional update in
// the unit repository must let exactly one caller win; everyone else gets a
// transition conflict.
func TestConcurrentReservation(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-2001")
	hospitalToken := app.registerHospital(t, "Trauma Center")

	resp := app.registerUnit(t, bankToken, "U-RACE", "O", "negative")
	require.Equal(t, http.StatusCreated, resp.status)
	resp = app.do(t, http.MethodPost, "/api/v1/units/U-RACE/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)

	const callers = 20
	statuses := make([]int, callers)
	codes := make([]string, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := app.do(t, http.MethodPost, "/api/v1/units/U-RACE/reserve", nil, hospitalToken)
			statuses[i] = r.status
			codes[i] = r.code
		}(i)
	}
	wg.Wait()

	won := 0
	for i, status := range statuses {
		switch status {
		case http.StatusOK:
			won++
		case http.StatusConflict:
			assert.Equal(t, "UNIT_003", codes[i])
		default:
			t.Fatalf("unexpected status %d from caller %d", status, i)
		}
	}
	assert.Equal(t, 1, won, "exactly one reservation must win")

	// The winner's state sticks.
	resp = app.do(t, http.MethodGet, "/api/v1/units/U-RACE", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "RESERVED", resp.data["status"])
}

// TestConcurrentTestSubmission races duplicate panel submissions for one unit.
// Artifact storage is content addressed, so the panel blob is stored once no
// matter how many submissions land, and only one submission transitions the
// unit.
func TestConcurrentTestSubmission(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-2002")

	resp := app.registerUnit(t, bankToken, "U-PANEL", "A", "positive")
	require.Equal(t, http.StatusCreated, resp.status)

	const callers = 10
	statuses := make([]int, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := app.do(t, http.MethodPost, "/api/v1/units/U-PANEL/test-results", cleanPanelBody(), bankToken)
			statuses[i] = r.status
		}(i)
	}
	wg.Wait()

	won := 0
	for _, status := range statuses {
		if status == http.StatusOK {
			won++
		}
	}
	assert.Equal(t, 1, won, "exactly one panel submission must transition the unit")
	assert.Equal(t, 1, app.contentStore.len())

	resp = app.do(t, http.MethodGet, "/api/v1/units/U-PANEL", nil, bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "TESTED_SAFE", resp.data["status"])
}
