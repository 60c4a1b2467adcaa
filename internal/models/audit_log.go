package models

// AuditAction identifies which API operation produced an audit entry.
type AuditAction string

const (
	AuditActionSimulate AuditAction = "SIMULATE"
	AuditActionSchedule AuditAction = "SCHEDULE"
)

// AuditLog records one simulator request. Only request metadata is kept;
// scenario inputs and results are never stored.
type AuditLog struct {
	Base
	RequestID  string      `gorm:"not null;index" json:"request_id"`
	Action     AuditAction `gorm:"not null;index" json:"action"`
	ClientIP   string      `json:"client_ip"`
	StatusCode int         `gorm:"not null" json:"status_code"`
	ErrorCode  string      `json:"error_code,omitempty"`
	Horizon    int         `json:"horizon_years,omitempty"`
	LatencyMS  int64       `json:"latency_ms"`
}
