package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	httpHandler "bloodlink/internal/adapter/http/handler"
	redisStorage "bloodlink/internal/adapter/storage/redis"
	"bloodlink/internal/metrics"
	"bloodlink/internal/service"
	"bloodlink/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testShelfLife = 42 * 24 * time.Hour
	testBatchSize = 100
)

// testClock is a controllable clock shared by the registry and the sweeper.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testApp builds the full application stack on in-memory storage: real HTTP
// layer, middleware, services, and a real Redis-backed sweep cursor via
// miniredis. Only the SQL layer is substituted.
type testApp struct {
	server       *httptest.Server
	redis        *miniredis.Miniredis
	client       *goredis.Client
	clock        *testClock
	contentStore *inMemoryContentStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	log := logger.NewWithWriter("error", io.Discard)
	clock := newTestClock()
	m := metrics.NewWith(prometheus.NewRegistry())

	bankRepo := newInMemoryBankRepo()
	hospitalRepo := newInMemoryHospitalRepo()
	unitRepo := newInMemoryUnitRepo()
	contentStore := newInMemoryContentStore()
	cursorStore := redisStorage.NewSweepCursorStore(client)

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("integration-test-secret-0123456789ab", time.Hour, "bloodlink-test")

	authSvc := service.NewAuthService(bankRepo, hospitalRepo, hashSvc, tokenSvc, log)
	registrySvc := service.NewRegistryService(unitRepo, bankRepo, contentStore,
		testShelfLife, 5*time.Second, m, log).WithClock(clock.Now)
	sweeperSvc := service.NewSweeperService(unitRepo, cursorStore,
		testShelfLife, m, log).WithClock(clock.Now)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		RegistrySvc:    registrySvc,
		SweeperSvc:     sweeperSvc,
		TokenSvc:       tokenSvc,
		SweepBatchSize: testBatchSize,
		Logger:         log,
	})

	app := &testApp{
		server:       httptest.NewServer(router),
		redis:        mr,
		client:       client,
		clock:        clock,
		contentStore: contentStore,
	}
	t.Cleanup(app.close)
	return app
}

func (app *testApp) close() {
	app.server.Close()
	app.client.Close()
}

type apiResponse struct {
	status int
	data   map[string]any
	code   string // error_code on failures
}

func (app *testApp) do(t *testing.T, method, path string, body any, token string) apiResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, app.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Data      map[string]any `json:"data"`
		ErrorCode string         `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)

	return apiResponse{status: resp.StatusCode, data: envelope.Data, code: envelope.ErrorCode}
}

// registerBank creates and logs in a bank account, returning its token.
func (app *testApp) registerBank(t *testing.T, license string) string {
	t.Helper()

	resp := app.do(t, http.MethodPost, "/api/v1/auth/banks/register", map[string]any{
		"name":           "Bank " + license,
		"license_number": license,
		"city":           "Da Nang",
		"password":       "StrongPass123!",
	}, "")
	require.Equal(t, http.StatusCreated, resp.status)

	resp = app.do(t, http.MethodPost, "/api/v1/auth/banks/login", map[string]any{
		"license_number": license,
		"password":       "StrongPass123!",
	}, "")
	require.Equal(t, http.StatusOK, resp.status)
	return resp.data["token"].(string)
}

// registerHospital creates and logs in a hospital account, returning its token.
func (app *testApp) registerHospital(t *testing.T, name string) string {
	t.Helper()

	resp := app.do(t, http.MethodPost, "/api/v1/auth/hospitals/register", map[string]any{
		"name":     name,
		"city":     "Da Nang",
		"type":     "government",
		"password": "StrongPass123!",
	}, "")
	require.Equal(t, http.StatusCreated, resp.status)

	resp = app.do(t, http.MethodPost, "/api/v1/auth/hospitals/login", map[string]any{
		"name":     name,
		"password": "StrongPass123!",
	}, "")
	require.Equal(t, http.StatusOK, resp.status)
	return resp.data["token"].(string)
}

func (app *testApp) registerUnit(t *testing.T, token, unitID, group, rh string) apiResponse {
	t.Helper()
	return app.do(t, http.MethodPost, "/api/v1/units", map[string]any{
		"unit_id":     unitID,
		"donor_id":    "D-" + unitID,
		"blood_group": group,
		"rh_factor":   rh,
	}, token)
}

func cleanPanelBody() map[string]any {
	return map[string]any{
		"hiv":             false,
		"hepatitis_b":     false,
		"hepatitis_c":     false,
		"syphilis":        false,
		"malaria":         false,
		"other_pathogens": false,
	}
}

func TestUnitLifecycle_CleanUnit(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-1001")
	hospitalToken := app.registerHospital(t, "General Hospital A")

	// Register a fresh O- unit.
	resp := app.registerUnit(t, bankToken, "U1", "O", "negative")
	require.Equal(t, http.StatusCreated, resp.status)
	assert.Equal(t, "NOT_VERIFIED", resp.data["status"])

	// A clean panel moves it to TESTED_SAFE and pins the artifact ref.
	resp = app.do(t, http.MethodPost, "/api/v1/units/U1/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "TESTED_SAFE", resp.data["status"])
	require.NotEmpty(t, resp.data["test_artifact_ref"])
	artifactRef := resp.data["test_artifact_ref"].(string)

	// The stored artifact is retrievable and carries the derived verdict.
	resp = app.do(t, http.MethodGet, "/api/v1/units/U1/artifact", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, true, resp.data["is_safe"])
	assert.Equal(t, artifactRef, resp.data["content_id"])

	// O- serves an A+ recipient.
	resp = app.do(t, http.MethodGet, "/api/v1/search/compatible?blood_group=A&rh_factor=positive", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, []any{"U1"}, resp.data["unit_ids"])

	// Reserve it; the unit leaves the search results.
	resp = app.do(t, http.MethodPost, "/api/v1/units/U1/reserve", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "RESERVED", resp.data["status"])

	resp = app.do(t, http.MethodGet, "/api/v1/search/compatible?blood_group=A&rh_factor=positive", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.EqualValues(t, 0, resp.data["count"])

	// Transfusion is terminal.
	resp = app.do(t, http.MethodPost, "/api/v1/units/U1/transfuse", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "TRANSFUSED", resp.data["status"])

	resp = app.do(t, http.MethodPost, "/api/v1/units/U1/reserve", nil, hospitalToken)
	assert.Equal(t, http.StatusConflict, resp.status)
	assert.Equal(t, "UNIT_003", resp.code)
}

func TestUnitLifecycle_InfectedUnitIsDiscarded(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-1002")
	hospitalToken := app.registerHospital(t, "General Hospital B")

	resp := app.registerUnit(t, bankToken, "U2", "A", "positive")
	require.Equal(t, http.StatusCreated, resp.status)

	panel := cleanPanelBody()
	panel["hiv"] = true
	resp = app.do(t, http.MethodPost, "/api/v1/units/U2/test-results", panel, bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "DISCARDED", resp.data["status"])

	// Discarded units never reach a recipient.
	resp = app.do(t, http.MethodGet, "/api/v1/search/compatible?blood_group=AB&rh_factor=positive", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.EqualValues(t, 0, resp.data["count"])

	resp = app.do(t, http.MethodPost, "/api/v1/units/U2/reserve", nil, hospitalToken)
	assert.Equal(t, http.StatusConflict, resp.status)
}

func TestUnitLifecycle_DuplicateUnitID(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-1003")

	resp := app.registerUnit(t, bankToken, "U1", "O", "negative")
	require.Equal(t, http.StatusCreated, resp.status)

	resp = app.registerUnit(t, bankToken, "U1", "B", "positive")
	assert.Equal(t, http.StatusConflict, resp.status)
	assert.Equal(t, "UNIT_001", resp.code)
}

func TestUnitLifecycle_RetestRejected(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-1004")

	app.registerUnit(t, bankToken, "U1", "O", "negative")
	resp := app.do(t, http.MethodPost, "/api/v1/units/U1/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)

	// The verdict is frozen; a second panel cannot flip it.
	panel := cleanPanelBody()
	panel["hiv"] = true
	resp = app.do(t, http.MethodPost, "/api/v1/units/U1/test-results", panel, bankToken)
	assert.Equal(t, http.StatusConflict, resp.status)
	assert.Equal(t, "UNIT_003", resp.code)
}

func TestExpirySweep(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-1005")
	hospitalToken := app.registerHospital(t, "General Hospital C")

	app.registerUnit(t, bankToken, "U3", "B", "negative")
	resp := app.do(t, http.MethodPost, "/api/v1/units/U3/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)

	// Outlive the shelf life, then sweep.
	app.clock.Advance(43 * 24 * time.Hour)

	resp = app.do(t, http.MethodPost, "/api/v1/sweep", nil, bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.EqualValues(t, 1, resp.data["examined"])
	assert.EqualValues(t, 1, resp.data["expired"])

	resp = app.do(t, http.MethodGet, "/api/v1/units/U3", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "EXPIRED", resp.data["status"])

	// Expired units cannot be reserved.
	resp = app.do(t, http.MethodPost, "/api/v1/units/U3/reserve", nil, hospitalToken)
	assert.Equal(t, http.StatusConflict, resp.status)

	// A repeat sweep finds nothing left to examine.
	resp = app.do(t, http.MethodPost, "/api/v1/sweep", nil, bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.EqualValues(t, 0, resp.data["examined"])
	assert.EqualValues(t, 0, resp.data["expired"])
}

func TestExpiry_EagerOnReserve(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-1006")
	hospitalToken := app.registerHospital(t, "General Hospital D")

	app.registerUnit(t, bankToken, "U4", "AB", "positive")
	resp := app.do(t, http.MethodPost, "/api/v1/units/U4/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)

	// No sweep has run, but the reservation itself notices the age.
	app.clock.Advance(43 * 24 * time.Hour)

	resp = app.do(t, http.MethodPost, "/api/v1/units/U4/reserve", nil, hospitalToken)
	assert.Equal(t, http.StatusConflict, resp.status)

	resp = app.do(t, http.MethodGet, "/api/v1/units/U4", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "EXPIRED", resp.data["status"])
}

func TestContentAddressing_IdenticalPanelsShareArtifact(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-1007")

	app.registerUnit(t, bankToken, "U5", "O", "positive")
	app.registerUnit(t, bankToken, "U6", "A", "negative")

	resp := app.do(t, http.MethodPost, "/api/v1/units/U5/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	refA := resp.data["test_artifact_ref"].(string)

	app.clock.Advance(time.Hour)

	resp = app.do(t, http.MethodPost, "/api/v1/units/U6/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	refB := resp.data["test_artifact_ref"].(string)

	// Same panel content, same content id, one stored blob.
	assert.Equal(t, refA, refB)
	assert.Equal(t, 1, app.contentStore.len())
}

func TestSearch_OrderingAndFreshness(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-1008")
	hospitalToken := app.registerHospital(t, "General Hospital E")

	// Older unit first.
	app.registerUnit(t, bankToken, "U-OLD", "O", "negative")
	resp := app.do(t, http.MethodPost, "/api/v1/units/U-OLD/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)

	app.clock.Advance(24 * time.Hour)

	app.registerUnit(t, bankToken, "U-NEW", "O", "negative")
	resp = app.do(t, http.MethodPost, "/api/v1/units/U-NEW/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)

	// Freshest collection first.
	resp = app.do(t, http.MethodGet, "/api/v1/search/compatible?blood_group=O&rh_factor=negative", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, []any{"U-NEW", "U-OLD"}, resp.data["unit_ids"])

	// Rh+ units never serve an Rh- recipient.
	app.registerUnit(t, bankToken, "U-POS", "O", "positive")
	resp = app.do(t, http.MethodPost, "/api/v1/units/U-POS/test-results", cleanPanelBody(), bankToken)
	require.Equal(t, http.StatusOK, resp.status)

	resp = app.do(t, http.MethodGet, "/api/v1/search/compatible?blood_group=O&rh_factor=negative", nil, hospitalToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.NotContains(t, resp.data["unit_ids"], "U-POS")
}

func TestSweep_ResumableCursor(t *testing.T) {
	app := newTestApp(t)
	bankToken := app.registerBank(t, "BB-2026-1009")

	for i := 1; i <= 5; i++ {
		resp := app.registerUnit(t, bankToken, fmt.Sprintf("U-%02d", i), "O", "negative")
		require.Equal(t, http.StatusCreated, resp.status)
	}

	app.clock.Advance(43 * 24 * time.Hour)

	// Two small batches cover the whole registry.
	resp := app.do(t, http.MethodPost, "/api/v1/sweep?batch_size=3", nil, bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.EqualValues(t, 3, resp.data["examined"])
	assert.EqualValues(t, 3, resp.data["expired"])

	resp = app.do(t, http.MethodPost, "/api/v1/sweep?batch_size=3", nil, bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.EqualValues(t, 2, resp.data["examined"])
	assert.EqualValues(t, 2, resp.data["expired"])

	// batch_size=0 is an explicit no-op.
	resp = app.do(t, http.MethodPost, "/api/v1/sweep?batch_size=0", nil, bankToken)
	require.Equal(t, http.StatusOK, resp.status)
	assert.EqualValues(t, 0, resp.data["examined"])
}
