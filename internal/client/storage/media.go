package storage

import (
	"context"

	"github.com/yorutsuke/ledgersync/internal/models"
)

//go:generate moq -out media_mock.go . MediaStorage

// MediaStorage defines interface for local media metadata persistence.
// Media bytes themselves are out of band: locally on disk, remotely in
// the location the server reports.
type MediaStorage interface {
	// GetMeta retrieves media metadata by ref
	// Returns ErrMediaNotFound if no metadata exists
	GetMeta(ctx context.Context, ref string) (*models.MediaMeta, error)

	// SaveMeta stores or replaces media metadata
	SaveMeta(ctx context.Context, meta *models.MediaMeta) error

	// HasLocalBytes reports whether the bytes referenced by the metadata
	// are actually present locally. Presence is verified, never assumed.
	HasLocalBytes(ctx context.Context, ref string) (bool, error)
}
