package audit_logs

import (
	"time"
)

type GetAuditLogsRequest struct {
	Limit      int        `form:"limit"      json:"limit"`
	Offset     int        `form:"offset"     json:"offset"`
	BeforeDate *time.Time `form:"beforeDate" json:"beforeDate"`
}

type GetAuditLogsResponse struct {
	AuditLogs []*AuditLog `json:"auditLogs"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
}
