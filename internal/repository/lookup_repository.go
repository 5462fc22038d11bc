package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gov-comms/activity-tracker/internal/domain"
	"github.com/gov-comms/activity-tracker/pkg/database"
	"github.com/gov-comms/activity-tracker/pkg/redis"
)

// LookupRepository batch-fetches human-readable values for activity
// foreign keys. Resolution is best-effort enrichment: an activity with
// no data, or data pointing at inactive rows, is simply absent from the
// returned maps.
type LookupRepository struct {
	db    *database.PostgresDB
	cache *redis.Client // nil when Redis is not configured
}

func NewLookupRepository(db *database.PostgresDB, cache *redis.Client) *LookupRepository {
	return &LookupRepository{db: db, cache: cache}
}

// ResolveCategories returns active category names per activity. A
// relation counts only when both the junction row and the category row
// are active. Row order within each group follows the join result.
func (r *LookupRepository) ResolveCategories(ctx context.Context, ids []int64) (map[int64][]string, error) {
	result := make(map[int64][]string)
	if len(ids) == 0 {
		return result, nil
	}

	query := `
		SELECT ac.activity_id, c.name
		FROM activity_categories ac
		JOIN categories c ON c.id = ac.category_id
		WHERE ac.is_active = true AND c.is_active = true AND ac.activity_id = ANY($1)
		ORDER BY ac.id
	`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var activityID int64
		var name string
		if err := rows.Scan(&activityID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		result[activityID] = append(result[activityID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category rows: %w", err)
	}
	return result, nil
}

// ResolveTags returns active tag references per activity. Tag text is
// the display name when present, else the key.
func (r *LookupRepository) ResolveTags(ctx context.Context, ids []int64) (map[int64][]domain.TagRef, error) {
	result := make(map[int64][]domain.TagRef)
	if len(ids) == 0 {
		return result, nil
	}

	query := `
		SELECT at.activity_id, t.id, t.key, t.display_name
		FROM activity_tags at
		JOIN tags t ON t.id = at.tag_id
		WHERE at.is_active = true AND t.is_active = true AND at.activity_id = ANY($1)
		ORDER BY at.id
	`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var activityID, tagID int64
		var key string
		var displayName *string
		if err := rows.Scan(&activityID, &tagID, &key, &displayName); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		result[activityID] = append(result[activityID], domain.TagRef{
			ID:   tagID,
			Text: tagText(displayName, key),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tag rows: %w", err)
	}
	return result, nil
}

// ResolvePitchStatuses maps activity ids to their pitch status name.
// Two-phase: fetch the foreign key per activity, then the active lookup
// rows, then join in memory.
func (r *LookupRepository) ResolvePitchStatuses(ctx context.Context, ids []int64) (map[int64]string, error) {
	return r.resolveStatuses(ctx, ids, "pitch_status_id", "pitch_statuses", redis.KeyPitchStatuses)
}

// ResolveSchedulingStatuses maps activity ids to their scheduling
// status name, with the same two-phase shape as pitch statuses
func (r *LookupRepository) ResolveSchedulingStatuses(ctx context.Context, ids []int64) (map[int64]string, error) {
	return r.resolveStatuses(ctx, ids, "scheduling_status_id", "scheduling_statuses", redis.KeySchedStatuses)
}

func (r *LookupRepository) resolveStatuses(ctx context.Context, ids []int64, fkColumn, lookupTable, cacheKey string) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	// Phase 1: foreign key per activity
	query := fmt.Sprintf(`SELECT id, %s FROM activities WHERE id = ANY($1)`, fkColumn)
	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s keys: %w", fkColumn, err)
	}

	fks := make(map[int64]int64)
	for rows.Next() {
		var activityID int64
		var fk *int64
		if err := rows.Scan(&activityID, &fk); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan %s key: %w", fkColumn, err)
		}
		if fk != nil {
			fks[activityID] = *fk
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s keys: %w", fkColumn, err)
	}

	if len(fks) == 0 {
		return map[int64]string{}, nil
	}

	// Phase 2: active lookup rows, cached since lookup tables change rarely
	names, err := r.statusNames(ctx, lookupTable, cacheKey)
	if err != nil {
		return nil, err
	}

	return joinStatusNames(fks, names), nil
}

// statusNames returns the active id-to-name map for a lookup table,
// reading through the Redis cache when one is configured
func (r *LookupRepository) statusNames(ctx context.Context, lookupTable, cacheKey string) (map[int64]string, error) {
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, r.cache.KeyBuilder.BuildKey(cacheKey)); err == nil {
			var names map[int64]string
			if err := json.Unmarshal([]byte(raw), &names); err == nil {
				return names, nil
			}
		}
	}

	query := fmt.Sprintf(`SELECT id, name FROM %s WHERE is_active = true`, lookupTable)
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s rows: %w", lookupTable, err)
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", lookupTable, err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", lookupTable, err)
	}

	if r.cache != nil {
		if raw, err := json.Marshal(names); err == nil {
			_ = r.cache.Set(ctx, r.cache.KeyBuilder.BuildKey(cacheKey), raw, redis.TTLLookup)
		}
	}
	return names, nil
}

// tagText picks the surfaced text for a tag: display name, else key,
// else empty string
func tagText(displayName *string, key string) string {
	if displayName != nil && *displayName != "" {
		return *displayName
	}
	return key
}

// joinStatusNames joins the per-activity fk map with the fk name map.
// Activities whose fk has no active lookup row drop out; the caller
// defaults on map miss.
func joinStatusNames(fks map[int64]int64, names map[int64]string) map[int64]string {
	result := make(map[int64]string, len(fks))
	for activityID, fk := range fks {
		if name, ok := names[fk]; ok {
			result[activityID] = name
		}
	}
	return result
}
