package snippets

import (
	"time"

	"github.com/google/uuid"
)

type Snippet struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id"`
	UserID      uuid.UUID  `json:"userId"      gorm:"column:user_id"`
	Title       string     `json:"title"       gorm:"column:title"`
	Description string     `json:"description" gorm:"column:description"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updatedAt"   gorm:"column:updated_at"`
	Fragments   []Fragment `json:"fragments"   gorm:"foreignKey:SnippetID"`
}

func (Snippet) TableName() string {
	return "snippets"
}

type Fragment struct {
	ID        uuid.UUID `json:"-"        gorm:"column:id"`
	SnippetID uuid.UUID `json:"-"        gorm:"column:snippet_id"`
	FileName  string    `json:"fileName" gorm:"column:file_name"`
	Code      string    `json:"code"     gorm:"column:code"`
	Language  string    `json:"language" gorm:"column:language"`
	Position  int       `json:"position" gorm:"column:position"`
}

func (Fragment) TableName() string {
	return "fragments"
}
