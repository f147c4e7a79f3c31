package interfaces

import (
	"context"

	"projestimate/internal/domain/entities"
)

// IProjectRepository abstracts persistence of project documents.
//
// GetByID returns a zero-value document (empty project id) when the
// project does not exist; callers translate that into their own not-found
// error. Documents are stored whole, including blocks this core treats as
// opaque (versions), and must round-trip unchanged.

type IProjectRepository interface {
	Create(ctx context.Context, doc entities.ProjectDocument) (entities.ProjectDocument, error)
	GetByID(ctx context.Context, id string) (entities.ProjectDocument, error)
	Save(ctx context.Context, doc entities.ProjectDocument) (entities.ProjectDocument, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.ProjectInfo, error)
}
