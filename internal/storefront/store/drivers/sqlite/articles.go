package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

type articlesRepo struct {
	db  dbtx
	now func() time.Time
}

const articleColumns = `id, nombre, descripcion, precio, stock, fecha_creacion`

func (r *articlesRepo) GetArticleByID(ctx context.Context, id int64) (domain.Article, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articulos WHERE id = ?`, id)
	a, err := scanArticle(row)
	if err != nil {
		return domain.Article{}, mapNotFound(err)
	}
	return a, nil
}

func (r *articlesRepo) ListArticles(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+articleColumns+` FROM articulos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *articlesRepo) CreateArticle(ctx context.Context, a domain.Article) (domain.Article, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.now()
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO articulos (nombre, descripcion, precio, stock, fecha_creacion)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+articleColumns,
		a.Name, mapOptionalString(a.Description), a.Price, a.Stock, formatTime(a.CreatedAt),
	)
	return scanArticle(row)
}

func (r *articlesRepo) UpdateArticle(ctx context.Context, a domain.Article) (domain.Article, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE articulos
		SET nombre = ?, descripcion = ?, precio = ?, stock = ?
		WHERE id = ?
		RETURNING `+articleColumns,
		a.Name, mapOptionalString(a.Description), a.Price, a.Stock, a.ID,
	)
	updated, err := scanArticle(row)
	if err != nil {
		return domain.Article{}, mapNotFound(err)
	}
	return updated, nil
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var (
		a       domain.Article
		desc    sql.NullString
		created string
	)
	if err := row.Scan(&a.ID, &a.Name, &desc, &a.Price, &a.Stock, &created); err != nil {
		return domain.Article{}, err
	}

	t, err := parseTime(created)
	if err != nil {
		return domain.Article{}, err
	}
	a.Description = mapNullString(desc)
	a.CreatedAt = t
	return a, nil
}
