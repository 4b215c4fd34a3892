package shares

import (
	"github.com/ssqlone/ByteStash/internal/features/audit_logs"
	"github.com/ssqlone/ByteStash/internal/features/snippets"
	clock_utils "github.com/ssqlone/ByteStash/internal/util/clock"
)

var shareRepository = &ShareRepository{}

var shareService = &ShareService{
	shareRepository,
	snippets.GetSnippetService(),
	audit_logs.GetAuditLogService(),
	clock_utils.System(),
}

var shareController = &ShareController{
	shareService,
}

func GetShareService() *ShareService {
	return shareService
}

func GetShareController() *ShareController {
	return shareController
}
