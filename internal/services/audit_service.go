package services

import (
	apperrors "rentorbuy/internal/errors"
	"rentorbuy/internal/logger"
	"rentorbuy/internal/models"
	"rentorbuy/internal/pagination"

	"gorm.io/gorm"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(entry AuditEntry) {
	row := &models.AuditLog{
		RequestID:  entry.RequestID,
		Action:     entry.Action,
		ClientIP:   entry.ClientIP,
		StatusCode: entry.StatusCode,
		ErrorCode:  entry.ErrorCode,
		Horizon:    entry.Horizon,
		LatencyMS:  entry.LatencyMS,
	}

	if err := s.db.Create(row).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"request_id", entry.RequestID,
			"action", entry.Action,
			"status", entry.StatusCode,
		)
	}
}

// List returns audit entries newest first, optionally filtered by action.
func (s *auditService) List(action models.AuditAction, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()

	query := s.db.Model(&models.AuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var logs []models.AuditLog
	if err := query.Order("created_at DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(logs, page.Page, page.PageSize, total)
	return &resp, nil
}

// nopAuditService is used when the audit trail is disabled.
type nopAuditService struct{}

// NewNopAuditService returns an AuditServicer that records nothing.
func NewNopAuditService() AuditServicer {
	return nopAuditService{}
}

func (nopAuditService) Log(AuditEntry) {}

func (nopAuditService) List(models.AuditAction, pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	return nil, apperrors.ErrAuditTrailUnavailable
}
