package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	"github.com/webcraft-academy/elearn-api/internal/domain/repository"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// AddItem relies on the UNIQUE (user_id, course_id) index: concurrent adds
// of the same course race on the index, not on an application-level check,
// so exactly one insert wins.
func (r *CartRepository) AddItem(ctx context.Context, userID, courseID string) (*entity.CartItem, error) {
	item := &entity.CartItem{UserID: userID, CourseID: courseID}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cart_items (user_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, course_id) DO NOTHING
		RETURNING id, added_at
	`, userID, courseID)

	if err := row.Scan(&item.ID, &item.AddedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return item, nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, courseID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items WHERE user_id = $1 AND course_id = $2
	`, userID, courseID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}

// Items expands each reference with a LEFT JOIN so a deleted course yields
// a bare item instead of dropping the row or failing.
func (r *CartRepository) Items(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ci.id, ci.user_id, ci.course_id, ci.added_at,
		       c.id, c.title, c.description, c.category, c.duration,
		       c.charges, c.image_url, c.status, c.created_at, c.updated_at
		FROM cart_items ci
		LEFT JOIN courses c ON c.id = ci.course_id
		WHERE ci.user_id = $1
		ORDER BY ci.added_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.CartItem
	for rows.Next() {
		item := &entity.CartItem{}
		var (
			cID, cTitle, cDesc, cCat, cDur, cImg, cStatus *string
			cCharges                                      *float64
			cCreated, cUpdated                            *time.Time
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.CourseID, &item.AddedAt,
			&cID, &cTitle, &cDesc, &cCat, &cDur, &cCharges, &cImg, &cStatus,
			&cCreated, &cUpdated); err != nil {
			return nil, err
		}
		if cID != nil {
			item.Course = &entity.Course{
				ID:          *cID,
				Title:       *cTitle,
				Description: *cDesc,
				Category:    *cCat,
				Duration:    *cDur,
				Charges:     *cCharges,
				ImageURL:    *cImg,
				Status:      *cStatus,
				CreatedAt:   *cCreated,
				UpdatedAt:   *cUpdated,
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Aggregate is a full scan over every cart. COALESCE covers dangling
// course references. Acceptable at current user counts; not cached.
func (r *CartRepository) Aggregate(ctx context.Context) (*entity.CartAggregate, error) {
	agg := &entity.CartAggregate{}
	row := r.pool.QueryRow(ctx, `
		SELECT COUNT(ci.id), COALESCE(SUM(COALESCE(c.charges, 0)), 0)
		FROM cart_items ci
		LEFT JOIN courses c ON c.id = ci.course_id
	`)
	if err := row.Scan(&agg.TotalCoursesSold, &agg.TotalEarnings); err != nil {
		return nil, err
	}
	return agg, nil
}

var _ repository.CartRepository = (*CartRepository)(nil)
