package shares

import (
	"errors"
	"fmt"
	"time"

	"github.com/ssqlone/ByteStash/internal/features/audit_logs"
	"github.com/ssqlone/ByteStash/internal/features/snippets"
	users_models "github.com/ssqlone/ByteStash/internal/features/users/models"
	clock_utils "github.com/ssqlone/ByteStash/internal/util/clock"
	duration_utils "github.com/ssqlone/ByteStash/internal/util/duration"
	token_utils "github.com/ssqlone/ByteStash/internal/util/token"

	"github.com/google/uuid"
)

type ShareService struct {
	shareRepository *ShareRepository
	snippetService  *snippets.SnippetService
	auditLogService *audit_logs.AuditLogService
	clock           clock_utils.Clock
}

var (
	// ErrShareNotFound covers unknown ids and expired shares alike: an
	// expired capability must reveal nothing beyond "no such share".
	ErrShareNotFound = errors.New("share link not found")

	// ErrShareAuthRequired is deliberately distinguishable from not-found.
	// Possession of the link already proves knowledge of a secret
	// identifier, so disclosing that it exists but needs a login is fine.
	ErrShareAuthRequired = errors.New("authentication required")
)

// CreateShare mints a capability token for a snippet owned by the caller.
// When expiresIn is given, it is resolved to an absolute expiry instant
// now, at creation time; later clock or parsing-rule changes never move an
// existing link's expiry.
func (s *ShareService) CreateShare(
	snippetID uuid.UUID,
	request *CreateShareRequestDTO,
	creator *users_models.User,
) (*Share, error) {
	// Ownership check: creating a share for someone else's snippet is
	// indistinguishable from creating one for a missing snippet.
	if _, err := s.snippetService.GetSnippet(snippetID, creator); err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if request.ExpiresIn != "" {
		seconds, err := duration_utils.ParseSeconds(request.ExpiresIn)
		if err != nil {
			// A bad duration must block creation; defaulting to "never
			// expires" would silently mint a permanent link.
			return nil, err
		}

		expiry := s.clock.Now().Add(time.Duration(seconds) * time.Second)
		expiresAt = &expiry
	}

	shareID, err := token_utils.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate share id: %w", err)
	}

	share := &Share{
		ID:           shareID,
		SnippetID:    snippetID,
		UserID:       creator.ID,
		RequiresAuth: request.RequiresAuth,
		ExpiresAt:    expiresAt,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.shareRepository.CreateShare(share); err != nil {
		return nil, fmt.Errorf("failed to create share: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Share link created (%s...)", shareID[:8]),
		&creator.ID,
		&snippetID,
	)

	return share, nil
}

// GetSnippetShares lists a snippet's share links with the expired flag
// computed per item at call time. Expired links stay visible in listings;
// they are only hidden from resolution.
func (s *ShareService) GetSnippetShares(
	snippetID uuid.UUID,
	user *users_models.User,
) (*GetSharesResponseDTO, error) {
	if _, err := s.snippetService.GetSnippet(snippetID, user); err != nil {
		return nil, err
	}

	snippetShares, err := s.shareRepository.GetSharesBySnippetID(snippetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shares: %w", err)
	}

	now := s.clock.Now()
	shareDTOs := make([]*ShareDTO, 0, len(snippetShares))
	for _, share := range snippetShares {
		shareDTOs = append(shareDTOs, &ShareDTO{
			Share:   *share,
			Expired: share.ExpiredAt(now),
		})
	}

	return &GetSharesResponseDTO{Shares: shareDTOs}, nil
}

func (s *ShareService) DeleteShare(shareID string, user *users_models.User) error {
	deleted, err := s.shareRepository.DeleteShare(shareID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to delete share: %w", err)
	}

	if !deleted {
		return ErrShareNotFound
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Share link deleted (%s...)", shareID[:min(8, len(shareID))]),
		&user.ID,
		nil,
	)

	return nil
}

// ResolveShareAccess is the authorization decision for a presented share
// token. The checks run in a fixed order: existence, then expiry, then the
// auth requirement. An expired requires-auth link yields not-found, never
// a login prompt.
func (s *ShareService) ResolveShareAccess(
	shareID string,
	callerIsAuthenticated bool,
	options snippets.ProjectionOptions,
) (*snippets.SnippetProjection, error) {
	share, err := s.shareRepository.GetShareByID(shareID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up share: %w", err)
	}

	if share == nil {
		return nil, ErrShareNotFound
	}

	if share.ExpiredAt(s.clock.Now()) {
		return nil, ErrShareNotFound
	}

	if share.RequiresAuth && !callerIsAuthenticated {
		return nil, ErrShareAuthRequired
	}

	snippet, err := s.snippetService.GetSnippetByID(share.SnippetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shared snippet: %w", err)
	}

	if snippet == nil {
		return nil, ErrShareNotFound
	}

	return snippet.Project(options)
}
