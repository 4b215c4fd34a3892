package snippets

import (
	"errors"
	"fmt"

	"github.com/ssqlone/ByteStash/internal/features/audit_logs"
	users_models "github.com/ssqlone/ByteStash/internal/features/users/models"

	"github.com/google/uuid"
)

type SnippetService struct {
	snippetRepository *SnippetRepository
	auditLogService   *audit_logs.AuditLogService
}

var ErrSnippetNotFound = errors.New("snippet not found")

func (s *SnippetService) CreateSnippet(
	request *CreateSnippetRequestDTO,
	creator *users_models.User,
) (*Snippet, error) {
	if len(request.Fragments) == 0 {
		return nil, errors.New("at least one fragment is required")
	}

	title := request.Title
	if title == "" {
		title = "Untitled Snippet"
	}

	snippet := &Snippet{
		ID:          uuid.New(),
		UserID:      creator.ID,
		Title:       title,
		Description: request.Description,
		Fragments:   make([]Fragment, 0, len(request.Fragments)),
	}

	for i, fragment := range request.Fragments {
		fileName := fragment.FileName
		if fileName == "" {
			fileName = fmt.Sprintf("fragment%d", i+1)
		}

		language := fragment.Language
		if language == "" {
			language = "plaintext"
		}

		snippet.Fragments = append(snippet.Fragments, Fragment{
			FileName: fileName,
			Code:     fragment.Code,
			Language: language,
			Position: i,
		})
	}

	if err := s.snippetRepository.CreateSnippet(snippet); err != nil {
		return nil, fmt.Errorf("failed to create snippet: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Snippet created: %s", snippet.Title),
		&creator.ID,
		&snippet.ID,
	)

	return snippet, nil
}

// GetSnippetByID returns a snippet regardless of ownership, or nil when it
// does not exist. Share resolution uses it: possession of a valid share
// token is the authorization.
func (s *SnippetService) GetSnippetByID(snippetID uuid.UUID) (*Snippet, error) {
	return s.snippetRepository.GetSnippetByID(snippetID)
}

// GetSnippet returns the snippet iff it belongs to the user. Someone else's
// snippet is reported as not found, same as an absent one.
func (s *SnippetService) GetSnippet(snippetID uuid.UUID, user *users_models.User) (*Snippet, error) {
	snippet, err := s.snippetRepository.GetSnippetByID(snippetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snippet: %w", err)
	}

	if snippet == nil || snippet.UserID != user.ID {
		return nil, ErrSnippetNotFound
	}

	return snippet, nil
}

func (s *SnippetService) GetUserSnippets(user *users_models.User) (*GetSnippetsResponseDTO, error) {
	userSnippets, err := s.snippetRepository.GetSnippetsByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snippets: %w", err)
	}

	return &GetSnippetsResponseDTO{Snippets: userSnippets}, nil
}

func (s *SnippetService) DeleteSnippet(snippetID uuid.UUID, user *users_models.User) error {
	deleted, err := s.snippetRepository.DeleteSnippet(snippetID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
	}

	if !deleted {
		return ErrSnippetNotFound
	}

	s.auditLogService.WriteAuditLog(
		"Snippet deleted",
		&user.ID,
		&snippetID,
	)

	return nil
}
