package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/teamload/internal/db"
)

// Reset deletes every stored row, children first. Run it inside a unit of
// work so a failed import leaves the previous data intact.
func Reset(ctx context.Context, conn db.DBTX) error {
	for i := len(db.Tables) - 1; i >= 0; i-- {
		table := db.Tables[i]
		if _, err := conn.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}
