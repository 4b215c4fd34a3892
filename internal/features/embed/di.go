package embed

import (
	"github.com/ssqlone/ByteStash/internal/features/shares"
)

var embedController = &EmbedController{
	shares.GetShareService(),
}

func GetEmbedController() *EmbedController {
	return embedController
}
