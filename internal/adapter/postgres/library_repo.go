package postgres

import (
	"context"

	"dashboard/internal/domain"
)

// AddLinkPaper inserts a link/paper.
func (d *DB) AddLinkPaper(ctx context.Context, lp domain.LinkPaper) (int64, error) {
	cats, err := marshalJSON(lp.Categories)
	if err != nil {
		return 0, err
	}
	var id int64
	err = d.sql.QueryRowContext(ctx,
		"INSERT INTO link_papers(title, url, attachment_url, description, categories, created_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id;",
		lp.Title, lp.URL, lp.AttachmentURL, lp.Description, cats, lp.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteLinkPaper removes a link/paper.
func (d *DB) DeleteLinkPaper(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM link_papers WHERE id=$1;", id)
	return err
}

// ListLinkPapers returns links/papers newest first, optionally filtered to
// those carrying the given category name.
func (d *DB) ListLinkPapers(ctx context.Context, category string) ([]domain.LinkPaper, error) {
	query := "SELECT id, title, url, attachment_url, description, categories, created_at FROM link_papers"
	args := []any{}
	if category != "" {
		query += " WHERE categories ? $1"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC;"

	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.LinkPaper, 0)
	for rows.Next() {
		var (
			lp   domain.LinkPaper
			cats []byte
		)
		if err := rows.Scan(&lp.ID, &lp.Title, &lp.URL, &lp.AttachmentURL, &lp.Description, &cats, &lp.CreatedAt); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(cats, &lp.Categories); err != nil {
			return nil, err
		}
		out = append(out, lp)
	}
	return out, rows.Err()
}

// AddCategory inserts a category; duplicate names map to
// domain.ErrDuplicateCategory.
func (d *DB) AddCategory(ctx context.Context, name string) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO categories(name) VALUES($1) RETURNING id;", name,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateCategory
		}
		return 0, err
	}
	return id, nil
}

// DeleteCategory removes a category.
func (d *DB) DeleteCategory(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM categories WHERE id=$1;", id)
	return err
}

// ListCategories returns all categories ordered by name.
func (d *DB) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY name ASC;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
