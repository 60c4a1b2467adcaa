package services

import (
	"net/http"
	"testing"

	"rentorbuy/internal/models"
	"rentorbuy/internal/pagination"
	"rentorbuy/internal/testutil"
)

func TestAuditService_Log(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log(AuditEntry{
		RequestID:  "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
		Action:     models.AuditActionSimulate,
		ClientIP:   "198.51.100.7",
		StatusCode: http.StatusBadRequest,
		ErrorCode:  "INVALID_INPUT",
		Horizon:    30,
		LatencyMS:  3,
	})

	var logs []models.AuditLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("failed to read audit logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 audit log, got %d", len(logs))
	}
	got := logs[0]
	if got.ID == "" {
		t.Error("expected generated ID")
	}
	if got.Action != models.AuditActionSimulate || got.ErrorCode != "INVALID_INPUT" || got.Horizon != 30 {
		t.Errorf("unexpected audit row: %+v", got)
	}
}

func TestAuditService_Log_SwallowsErrors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAuditService(db)
	testutil.TeardownTestDB(t, db)

	// Must not panic or propagate once the database is gone.
	svc.Log(AuditEntry{RequestID: "r", Action: models.AuditActionSimulate, StatusCode: http.StatusOK})
}

func TestAuditService_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	for i := 0; i < 3; i++ {
		testutil.CreateTestAuditLog(t, db, models.AuditActionSimulate, http.StatusOK)
	}
	testutil.CreateTestAuditLog(t, db, models.AuditActionSchedule, http.StatusOK)

	t.Run("all actions", func(t *testing.T) {
		resp, err := svc.List("", pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)
		if resp.TotalItems != 4 || resp.TotalPages != 2 || len(resp.Data) != 2 {
			t.Errorf("unexpected page: total=%d pages=%d len=%d", resp.TotalItems, resp.TotalPages, len(resp.Data))
		}
	})

	t.Run("filtered by action", func(t *testing.T) {
		resp, err := svc.List(models.AuditActionSchedule, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if resp.TotalItems != 1 || resp.Data[0].Action != models.AuditActionSchedule {
			t.Errorf("unexpected filtered page: %+v", resp)
		}
		if resp.PageSize != pagination.DefaultPageSize {
			t.Errorf("expected default page size, got %d", resp.PageSize)
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		resp, err := svc.List("", pagination.PageRequest{Page: 9, PageSize: 10})
		testutil.AssertNoError(t, err)
		if len(resp.Data) != 0 {
			t.Errorf("expected empty page, got %d rows", len(resp.Data))
		}
	})
}

func TestNopAuditService(t *testing.T) {
	svc := NewNopAuditService()
	svc.Log(AuditEntry{Action: models.AuditActionSimulate})

	_, err := svc.List("", pagination.PageRequest{})
	testutil.AssertAppError(t, err, "AUDIT_UNAVAILABLE")
}
