package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/Masterminds/squirrel"
)

// WishlistRepository stores saved recommendations. Tags are kept as a
// comma-separated column.
type WishlistRepository struct {
	DB *sql.DB
}

func (r WishlistRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r WishlistRepository) ListByUser(userID int64) ([]models.WishlistItem, error) {
	query, args, err := sq.Select("id", "user_id", "title", "COALESCE(city,'')", "COALESCE(country,'')",
		"COALESCE(image_url,'')", "COALESCE(tags,'')", "COALESCE(rating,0)", "last_rated", "created_at").
		From("wishlist_items").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()

	out := []models.WishlistItem{}
	for rows.Next() {
		var w models.WishlistItem
		var tags string
		var rated sql.NullTime
		if err := rows.Scan(&w.ID, &w.UserID, &w.Title, &w.City, &w.Country, &w.ImageURL,
			&tags, &w.Rating, &rated, &w.CreatedAt); err != nil {
			return nil, err
		}
		w.Tags = utils.SplitList(tags)
		w.LastRated = timePtr(rated)
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r WishlistRepository) Create(w models.WishlistItem) (int64, error) {
	res, err := execBuilder(r.db(), sq.Insert("wishlist_items").
		Columns("user_id", "title", "city", "country", "image_url", "tags", "rating", "created_at").
		Values(w.UserID, w.Title, w.City, w.Country, w.ImageURL, strings.Join(w.Tags, ","), w.Rating, w.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert wishlist item: %w", err)
	}
	return res.LastInsertId()
}

// Rate stores a rating on an item owned by the user.
func (r WishlistRepository) Rate(userID, id int64, rating float64, at time.Time) error {
	res, err := execBuilder(r.db(), sq.Update("wishlist_items").
		Set("rating", rating).
		Set("last_rated", at).
		Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return fmt.Errorf("rate wishlist item %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "recommendation"}
	}
	return nil
}
