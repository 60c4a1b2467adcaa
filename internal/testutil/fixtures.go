package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"rentorbuy/internal/models"
	"rentorbuy/internal/simulation"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CashPurchaseInput is a one-year scenario where the home is bought outright
// with no running costs. Renting costs $12,000 and buying nets $0.
func CashPurchaseInput() simulation.Input {
	return simulation.Input{
		YearsToSimulate:    1,
		MonthlyRent:        1000,
		HomePrice:          100000,
		DownPaymentPercent: 100,
		LoanTermYears:      1,
	}
}

// TypicalInput is the default scenario with a shorter horizon.
func TypicalInput(years int) simulation.Input {
	in := simulation.DefaultInput()
	in.YearsToSimulate = years
	return in
}

// CreateTestAuditLog inserts an audit row for action with a unique request ID.
func CreateTestAuditLog(t *testing.T, db *gorm.DB, action models.AuditAction, status int) *models.AuditLog {
	t.Helper()
	entry := &models.AuditLog{
		RequestID:  fmt.Sprintf("req-%d", nextID()),
		Action:     action,
		ClientIP:   "192.0.2.1",
		StatusCode: status,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test audit log: %v", err)
	}
	return entry
}
