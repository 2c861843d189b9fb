package db

import (
	"context"

	"storefront/internal/models"
)

// IncrementIntentCount upserts the classification count for an intent.
func (d *DB) IncrementIntentCount(ctx context.Context, intent string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO intent_counts (intent, count, last_seen_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (intent) DO UPDATE
		SET count = intent_counts.count + 1, last_seen_at = NOW()
	`, intent)
	return err
}

// GetAllIntentCounts returns all intent count rows for metrics export.
func (d *DB) GetAllIntentCounts(ctx context.Context) ([]models.IntentCount, error) {
	rows, err := d.Pool.Query(ctx, `SELECT intent, count, last_seen_at FROM intent_counts ORDER BY intent`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.IntentCount
	for rows.Next() {
		var c models.IntentCount
		if err := rows.Scan(&c.Intent, &c.Count, &c.LastSeenAt); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
