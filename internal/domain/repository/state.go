package repository

import (
	"context"

	"github.com/lite-lake/boardkit/internal/domain/entity"
)

// DocumentRepository persists the board document between editor sessions.
type DocumentRepository interface {
	Load(ctx context.Context) (*entity.Document, error)
	Save(ctx context.Context, doc *entity.Document) error
}
