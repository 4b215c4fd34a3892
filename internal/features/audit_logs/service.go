package audit_logs

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteAuditLog records a lifecycle event. Messages must never contain
// secrets (API key plaintext, full share tokens); callers pass display
// prefixes instead.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	snippetID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:    userID,
		SnippetID: snippetID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditLogRepository.Create(auditLog); err != nil {
		s.logger.Error("failed to create audit log", "error", err)
	}
}

func (s *AuditLogService) GetUserAuditLogs(
	userID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	auditLogs, err := s.auditLogRepository.GetByUser(userID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
