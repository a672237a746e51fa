package repository

import (
	"context"
	"fmt"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
)

// ReferencePostgresRepository serves the marcas and locais tables, which
// share the (id, nome) layout.
type ReferencePostgresRepository struct {
	db   querier
	psql sq.StatementBuilderType
}

var _ interfaces.IReferenceStore = (*ReferencePostgresRepository)(nil)

func NewReferencePostgresRepository(db querier) *ReferencePostgresRepository {
	return &ReferencePostgresRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ReferencePostgresRepository) ListOptions(ctx context.Context, kind entities.ReferenceKind) ([]entities.ReferenceOption, error) {
	table, err := tableFor(kind, "marcas", "locais")
	if err != nil {
		return nil, err
	}
	query, args, err := r.psql.Select("id", "nome").From(table).OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	out := []entities.ReferenceOption{}
	for rows.Next() {
		var o entities.ReferenceOption
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ReferencePostgresRepository) InsertOption(ctx context.Context, kind entities.ReferenceKind, name string) (int64, error) {
	table, err := tableFor(kind, "marcas", "locais")
	if err != nil {
		return 0, err
	}
	query, args, err := r.psql.Insert(table).Columns("nome").Values(name).Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, interfaces.ErrStoreConflict
		}
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

func (r *ReferencePostgresRepository) DeleteOption(ctx context.Context, kind entities.ReferenceKind, id int64) error {
	table, err := tableFor(kind, "marcas", "locais")
	if err != nil {
		return err
	}
	query, args, err := r.psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete %s id=%d: %w", table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrStoreNotFound
	}
	return nil
}
