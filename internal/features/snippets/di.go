package snippets

import (
	"github.com/ssqlone/ByteStash/internal/features/audit_logs"
)

var snippetRepository = &SnippetRepository{}

var snippetService = &SnippetService{
	snippetRepository,
	audit_logs.GetAuditLogService(),
}

var snippetController = &SnippetController{
	snippetService,
}

var machineController = &MachineController{
	snippetService,
}

func GetSnippetService() *SnippetService {
	return snippetService
}

func GetSnippetController() *SnippetController {
	return snippetController
}

func GetMachineController() *MachineController {
	return machineController
}
