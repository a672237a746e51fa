package repository

import (
	"context"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

type ReferenceRestRepository struct {
	client *resty.Client
}

var _ interfaces.IReferenceStore = (*ReferenceRestRepository)(nil)

func NewReferenceRestRepository(client *resty.Client) *ReferenceRestRepository {
	return &ReferenceRestRepository{client: client}
}

func (r *ReferenceRestRepository) ListOptions(ctx context.Context, kind entities.ReferenceKind) ([]entities.ReferenceOption, error) {
	table, err := tableFor(kind, "marcas", "locais")
	if err != nil {
		return nil, err
	}

	out := []entities.ReferenceOption{}
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"select": "id,nome", "order": "id.asc"}).
		SetResult(&out).
		Get("/" + table)
	if err := restError("select", table, resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReferenceRestRepository) InsertOption(ctx context.Context, kind entities.ReferenceKind, name string) (int64, error) {
	table, err := tableFor(kind, "marcas", "locais")
	if err != nil {
		return 0, err
	}

	var created []idRow
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", preferRepresentation).
		SetQueryParam("select", "id").
		SetBody(map[string]string{"nome": name}).
		SetResult(&created).
		Post("/" + table)
	if err := restError("insert", table, resp, err); err != nil {
		return 0, err
	}
	if len(created) == 0 {
		return 0, restError("insert", table, resp, errEmptyRepresentation)
	}
	return created[0].ID, nil
}

func (r *ReferenceRestRepository) DeleteOption(ctx context.Context, kind entities.ReferenceKind, id int64) error {
	table, err := tableFor(kind, "marcas", "locais")
	if err != nil {
		return err
	}

	var deleted []idRow
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", preferRepresentation).
		SetQueryParams(map[string]string{"id": eqFilter(id), "select": "id"}).
		SetResult(&deleted).
		Delete("/" + table)
	if err := restError("delete", table, resp, err); err != nil {
		return err
	}
	if len(deleted) == 0 {
		return interfaces.ErrStoreNotFound
	}
	return nil
}
