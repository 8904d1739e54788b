package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ArmaRealms/ToolStats/internal/scenario"
)

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDeathTracker struct {
	mock.Mock
}

func (m *MockDeathTracker) Attributed(id uuid.UUID) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockDeathTracker) Forget(id uuid.UUID) {
	m.Called(id)
}

type MockScenarioRunner struct {
	mock.Mock
}

func (m *MockScenarioRunner) RunScenario(ctx context.Context, doc []byte) (*scenario.ExecutionResult, error) {
	args := m.Called(ctx, string(doc))
	result, _ := args.Get(0).(*scenario.ExecutionResult)
	return result, args.Error(1)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		checker := &MockHealthChecker{}
		checker.On("CheckHealth", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		checker.AssertExpectations(t)
	})

	t.Run("not ready", func(t *testing.T) {
		checker := &MockHealthChecker{}
		checker.On("CheckHealth", mock.Anything).Return(errors.New("scheduler stopped"))

		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, StatusUnavailable, resp.Status)
		assert.Equal(t, "scheduler stopped", resp.Message)
	})
}

func deathRouter(tracker DeathTracker) http.Handler {
	r := chi.NewRouter()
	r.Get("/deaths/{"+ParamEntityID+"}", HandleGetDeath(tracker))
	r.Delete("/deaths/{"+ParamEntityID+"}", HandleForgetDeath(tracker))
	return r
}

func TestHandleGetDeath(t *testing.T) {
	id := uuid.New()
	tracker := &MockDeathTracker{}
	tracker.On("Attributed", id).Return(true)

	w := httptest.NewRecorder()
	deathRouter(tracker).ServeHTTP(w, httptest.NewRequest("GET", "/deaths/"+id.String(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp DeathResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, DeathResponse{EntityID: id.String(), Attributed: true}, resp)
}

func TestHandleForgetDeath(t *testing.T) {
	id := uuid.New()
	tracker := &MockDeathTracker{}
	tracker.On("Forget", id).Return()

	w := httptest.NewRecorder()
	deathRouter(tracker).ServeHTTP(w, httptest.NewRequest("DELETE", "/deaths/"+id.String(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	tracker.AssertExpectations(t)
}

func TestDeathHandlers_InvalidID(t *testing.T) {
	tracker := &MockDeathTracker{}

	for _, method := range []string{"GET", "DELETE"} {
		w := httptest.NewRecorder()
		deathRouter(tracker).ServeHTTP(w, httptest.NewRequest(method, "/deaths/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
	}
	tracker.AssertNotCalled(t, "Attributed", mock.Anything)
	tracker.AssertNotCalled(t, "Forget", mock.Anything)
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	var info VersionInfo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&info))
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestResponseBuffers(t *testing.T) {
	buf := getBuffer()
	buf.WriteString("stale")
	putBuffer(buf)

	reused := getBuffer()
	assert.Zero(t, reused.Len())
	putBuffer(reused)

	big := getBuffer()
	big.Grow(2 * maxPooledBufferSize)
	putBuffer(big)
	assert.NotSame(t, big, getBuffer())
}

func TestHandleRunScenario(t *testing.T) {
	const doc = "name: demo\nsteps:\n  - tick: 1\n"

	post := func(h http.Handler, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("POST", "/scenarios", strings.NewReader(body)))
		return w
	}

	t.Run("replays and returns the result", func(t *testing.T) {
		result := scenario.NewExecutionResult("demo")
		result.Ticks = 2
		runner := &MockScenarioRunner{}
		runner.On("RunScenario", mock.Anything, doc).Return(result, nil)

		w := post(HandleRunScenario(runner), doc)

		require.Equal(t, http.StatusOK, w.Code)
		var got scenario.ExecutionResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "demo", got.ScenarioName)
		assert.Equal(t, 2, got.Ticks)
		runner.AssertExpectations(t)
	})

	t.Run("rejected documents are a client error", func(t *testing.T) {
		for _, cause := range []error{
			fmt.Errorf("%w: bad yaml", scenario.ErrInvalidScenario),
			scenario.NewParameterError("slot", "out of range"),
			fmt.Errorf("%w: ghost", scenario.ErrUnknownEntity),
		} {
			runner := &MockScenarioRunner{}
			runner.On("RunScenario", mock.Anything, doc).Return(nil, cause)

			w := post(HandleRunScenario(runner), doc)
			assert.Equal(t, http.StatusBadRequest, w.Code, cause.Error())
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, cause.Error(), resp.Error)
		}
	})

	t.Run("other failures are a server error", func(t *testing.T) {
		runner := &MockScenarioRunner{}
		runner.On("RunScenario", mock.Anything, doc).Return(nil, context.Canceled)

		w := post(HandleRunScenario(runner), doc)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "canceled")
	})

	t.Run("empty body", func(t *testing.T) {
		runner := &MockScenarioRunner{}
		w := post(HandleRunScenario(runner), "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		runner.AssertNotCalled(t, "RunScenario", mock.Anything, mock.Anything)
	})

	t.Run("oversized body", func(t *testing.T) {
		runner := &MockScenarioRunner{}
		limited := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 8)
			HandleRunScenario(runner).ServeHTTP(w, r)
		})

		w := post(limited, doc)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		runner.AssertNotCalled(t, "RunScenario", mock.Anything, mock.Anything)
	})
}
