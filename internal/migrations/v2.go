package migrations

import (
	"context"
	"fmt"

	"github.com/Go4ItSports/go4it/config"
	"github.com/Go4ItSports/go4it/internal/database/schema"
)

// V2Migration adds the StarPath leaderboard and social scheduling indexes,
// plus the lookups behind the recruiting and payment list filters.
type V2Migration struct{}

func (m *V2Migration) GetMajorVersion() float64 {
	return 2.0
}

func (m *V2Migration) ShouldRestartServer() bool {
	return false
}

func (m *V2Migration) Up(ctx context.Context, cfg *config.Config, db DBExecutor) error {
	for _, stmt := range schema.V2Indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

func init() {
	Register(&V2Migration{})
}
