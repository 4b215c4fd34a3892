package api_keys

import (
	"github.com/ssqlone/ByteStash/internal/cache"
	"github.com/ssqlone/ByteStash/internal/features/audit_logs"
	cache_utils "github.com/ssqlone/ByteStash/internal/util/cache"
	"github.com/ssqlone/ByteStash/internal/util/logger"

	"golang.org/x/sync/singleflight"
)

var apiKeyRepository = &ApiKeyRepository{}

var apiKeyService = &ApiKeyService{
	apiKeyRepository,
	audit_logs.GetAuditLogService(),
	logger.GetLogger(),
	cache_utils.NewCacheUtil[CachedApiKey](cache.GetCache(), "bs_apikey:"),
	singleflight.Group{},
}

var apiKeyController = &ApiKeyController{
	apiKeyService,
}

func GetApiKeyService() *ApiKeyService {
	return apiKeyService
}

func GetApiKeyController() *ApiKeyController {
	return apiKeyController
}
