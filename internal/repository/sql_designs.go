package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dreamhouse/internal/config"
	"dreamhouse/internal/domain"
)

// SQLDesignsRepo 设计存储（database/sql 实现，支持 sqlite 和 postgres）
type SQLDesignsRepo struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// NewSQLDesignsRepo 创建设计存储
func NewSQLDesignsRepo(db *sql.DB, driver string) *SQLDesignsRepo {
	return &SQLDesignsRepo{db: db, driver: driver, now: time.Now}
}

// 确保实现了接口
var _ DesignsRepository = (*SQLDesignsRepo)(nil)

// WithClock replaces the timestamp source.
func (r *SQLDesignsRepo) WithClock(now func() time.Time) *SQLDesignsRepo {
	r.now = now
	return r
}

func (r *SQLDesignsRepo) Save(ctx context.Context, name, prompt, data string) (int64, error) {
	query := r.rebind(`
		INSERT INTO designs (name, prompt, data, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := r.db.QueryRowContext(ctx, query, name, prompt, data, domain.FormatCreatedAt(r.now())).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert design: %w: %w", domain.ErrStorage, err)
	}
	return id, nil
}

func (r *SQLDesignsRepo) List(ctx context.Context) ([]domain.SavedDesign, error) {
	query := `
		SELECT id, name, prompt, data, created_at
		FROM designs
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	designs := []domain.SavedDesign{}
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan design: %w: %w", domain.ErrStorage, err)
		}
		designs = append(designs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate designs: %w: %w", domain.ErrStorage, err)
	}

	return designs, nil
}

func (r *SQLDesignsRepo) Get(ctx context.Context, id int64) (*domain.SavedDesign, error) {
	query := r.rebind(`
		SELECT id, name, prompt, data, created_at
		FROM designs
		WHERE id = ?
	`)

	d, err := scanDesign(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("design %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get design: %w: %w", domain.ErrStorage, err)
	}
	return d, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanDesign reads one row; NULL text columns come back as "".
func scanDesign(row rowScanner) (*domain.SavedDesign, error) {
	var (
		d                             domain.SavedDesign
		name, prompt, data, createdAt sql.NullString
	)
	if err := row.Scan(&d.ID, &name, &prompt, &data, &createdAt); err != nil {
		return nil, err
	}
	d.Name = name.String
	d.Prompt = prompt.String
	d.Data = data.String
	d.CreatedAt = createdAt.String
	return &d, nil
}

// rebind rewrites ? placeholders to $n for postgres.
func (r *SQLDesignsRepo) rebind(query string) string {
	if r.driver != config.DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
