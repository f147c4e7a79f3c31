package interfaces

import (
	"context"

	"projestimate/internal/domain/entities"
)

// ICatalogRepository abstracts persistence of the global configuration
// document.
//
// Load returns found=false on first run; the catalog store then seeds the
// default catalog and saves it. Save replaces the whole document: the
// catalog is a single-writer, UI-driven structure and is always persisted
// as one unit.

type ICatalogRepository interface {
	Load(ctx context.Context) (entities.GlobalConfig, bool, error)
	Save(ctx context.Context, cfg entities.GlobalConfig) error
}
