package entries

import (
	"context"

	"github.com/dmitrijs2005/monju/internal/models"
)

// Repository loads and saves the full entry collection.
type Repository interface {
	// Load returns all entries in stored order.
	Load(ctx context.Context) ([]models.Entry, error)

	// Save replaces the stored collection with entries.
	Save(ctx context.Context, entries []models.Entry) error
}
