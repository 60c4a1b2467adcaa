package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"rentorbuy/internal/logger"
	"rentorbuy/internal/models"
	"rentorbuy/internal/pagination"
	"rentorbuy/internal/services"
	"rentorbuy/internal/simulation"
	"rentorbuy/internal/validator"
)

// --- mock services ---

type mockSimulationService struct {
	simulateFn func(ctx context.Context, input simulation.Input) (*simulation.Output, error)
	scheduleFn func(ctx context.Context, loan simulation.LoanInput) (*simulation.Schedule, error)
}

func (m *mockSimulationService) Simulate(ctx context.Context, input simulation.Input) (*simulation.Output, error) {
	if m.simulateFn != nil {
		return m.simulateFn(ctx, input)
	}
	return &simulation.Output{}, nil
}

func (m *mockSimulationService) Schedule(ctx context.Context, loan simulation.LoanInput) (*simulation.Schedule, error) {
	if m.scheduleFn != nil {
		return m.scheduleFn(ctx, loan)
	}
	return &simulation.Schedule{}, nil
}

type mockAuditService struct {
	mu      sync.Mutex
	entries []services.AuditEntry
	listFn  func(action models.AuditAction, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(entry services.AuditEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
}

func (m *mockAuditService) List(action models.AuditAction, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(action, page)
	}
	resp := pagination.NewPageResponse([]models.AuditLog{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAuditService) last(t *testing.T) services.AuditEntry {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		t.Fatal("expected an audit entry")
	}
	return m.entries[len(m.entries)-1]
}

// verify interface compliance
var (
	_ services.SimulationServicer = (*mockSimulationService)(nil)
	_ services.AuditServicer      = (*mockAuditService)(nil)
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
	logger.Init("test")
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// detailFields returns the field names listed in an error response's details.
func detailFields(t *testing.T, result map[string]interface{}) []string {
	t.Helper()
	errObj, _ := result["error"].(map[string]interface{})
	details, ok := errObj["details"].([]interface{})
	if !ok {
		t.Fatalf("expected details array, got: %v", errObj)
	}
	var fields []string
	for _, d := range details {
		fields = append(fields, d.(map[string]interface{})["field"].(string))
	}
	return fields
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
