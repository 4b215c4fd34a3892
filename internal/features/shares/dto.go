package shares

type CreateShareRequestDTO struct {
	RequiresAuth bool   `json:"requiresAuth"`
	ExpiresIn    string `json:"expiresIn" binding:"omitempty,max=32"` // e.g. "30m", "1h", "2d"
}

// ShareDTO is a Share plus its derived expired flag, computed against the
// clock at the moment the listing is produced.
type ShareDTO struct {
	Share
	Expired bool `json:"expired"`
}

type GetSharesResponseDTO struct {
	Shares []*ShareDTO `json:"shares"`
}
