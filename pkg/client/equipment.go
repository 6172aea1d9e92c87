package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const equipmentPath = "/api/equipment"

func (c *Client) ListEquipment(ctx context.Context, filter EquipmentFilter) ([]Equipment, error) {
	q := url.Values{}
	if filter.Category != nil {
		q.Set("category", *filter.Category)
	}
	if filter.Department != nil {
		q.Set("department", *filter.Department)
	}
	if filter.IsScrapped != nil {
		q.Set("is_scrapped", strconv.FormatBool(*filter.IsScrapped))
	}
	return list[Equipment](ctx, c, equipmentPath, q)
}

func (c *Client) GetEquipment(ctx context.Context, id uint64) (*EquipmentDetail, error) {
	var out EquipmentDetail
	if err := c.do(ctx, http.MethodGet, idPath(equipmentPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEquipment(ctx context.Context, in EquipmentInput) (uint64, error) {
	var out created
	if err := c.do(ctx, http.MethodPost, equipmentPath, nil, in, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateEquipment(ctx context.Context, id uint64, in EquipmentInput) error {
	return c.do(ctx, http.MethodPut, idPath(equipmentPath, id), nil, in, nil)
}

func (c *Client) DeleteEquipment(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, idPath(equipmentPath, id), nil, nil, nil)
}
