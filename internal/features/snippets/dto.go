package snippets

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type FragmentDTO struct {
	FileName string `json:"fileName"`
	Code     string `json:"code"`
	Language string `json:"language"`
	Position int    `json:"position"`
}

type CreateSnippetRequestDTO struct {
	Title       string        `json:"title"       binding:"omitempty,max=255"`
	Description string        `json:"description" binding:"omitempty,max=5000"`
	Fragments   []FragmentDTO `json:"fragments"`
}

type GetSnippetsResponseDTO struct {
	Snippets []*Snippet `json:"snippets"`
}

// ProjectionOptions control which fields of a shared snippet are disclosed
// to an anonymous or embedding caller.
type ProjectionOptions struct {
	ShowTitle       bool
	ShowDescription bool
	FragmentIndex   *int
}

// SnippetProjection is the reduced view served on public share and embed
// endpoints. Title and description are omitted from the payload entirely
// (not blanked) when the caller did not ask for them.
type SnippetProjection struct {
	ID          uuid.UUID     `json:"id"`
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Fragments   []FragmentDTO `json:"fragments"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

var ErrFragmentIndexOutOfRange = errors.New("fragment index is out of range")

// Project builds the reduced view of a snippet. A fragment index narrows the
// payload to a single fragment; an index outside the snippet's fragments is
// a caller error, not an empty result.
func (s *Snippet) Project(options ProjectionOptions) (*SnippetProjection, error) {
	projection := &SnippetProjection{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if options.ShowTitle {
		projection.Title = &s.Title
	}
	if options.ShowDescription {
		projection.Description = &s.Description
	}

	fragments := s.Fragments
	if options.FragmentIndex != nil {
		index := *options.FragmentIndex
		if index < 0 || index >= len(fragments) {
			return nil, ErrFragmentIndexOutOfRange
		}
		fragments = fragments[index : index+1]
	}

	projection.Fragments = make([]FragmentDTO, 0, len(fragments))
	for _, fragment := range fragments {
		projection.Fragments = append(projection.Fragments, FragmentDTO{
			FileName: fragment.FileName,
			Code:     fragment.Code,
			Language: fragment.Language,
			Position: fragment.Position,
		})
	}

	return projection, nil
}
