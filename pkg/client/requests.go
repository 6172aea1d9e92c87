package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const requestsPath = "/api/requests"

type created struct {
	ID uint64 `json:"id"`
}

// Query encodes the filter the way GET /api/requests expects it.
func (f RequestFilter) Query() url.Values {
	q := url.Values{}
	if f.Status != nil {
		q.Set("status", string(*f.Status))
	}
	if f.RequestType != nil {
		q.Set("request_type", string(*f.RequestType))
	}
	if f.EquipmentID != nil {
		q.Set("equipment_id", strconv.FormatUint(*f.EquipmentID, 10))
	}
	if f.TeamID != nil {
		q.Set("team_id", strconv.FormatUint(*f.TeamID, 10))
	}
	return q
}

func (c *Client) ListRequests(ctx context.Context, filter RequestFilter) ([]Request, error) {
	return list[Request](ctx, c, requestsPath, filter.Query())
}

func (c *Client) GetRequest(ctx context.Context, id uint64) (*RequestDetail, error) {
	var out RequestDetail
	if err := c.do(ctx, http.MethodGet, idPath(requestsPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRequest rejects an empty subject locally; everything else is checked
// by the server.
func (c *Client) CreateRequest(ctx context.Context, in CreateRequestInput) (uint64, error) {
	if strings.TrimSpace(in.Subject) == "" {
		return 0, &ValidationError{StatusCode: http.StatusBadRequest, Message: "subject is required",
			Fields: map[string]string{"Subject": "required"}}
	}
	var out created
	if err := c.do(ctx, http.MethodPost, requestsPath, nil, in, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateRequest(ctx context.Context, id uint64, in UpdateRequestInput) error {
	return c.do(ctx, http.MethodPut, idPath(requestsPath, id), nil, in, nil)
}

// UpdateStatus persists a status change; the caller owns any confirmation step.
func (c *Client) UpdateStatus(ctx context.Context, id uint64, status Status) (*StatusChange, error) {
	if !status.Valid() {
		return nil, &ValidationError{StatusCode: http.StatusBadRequest, Message: fmt.Sprintf("invalid status %q", status)}
	}
	q := url.Values{"status": {string(status)}}
	var out StatusChange
	if err := c.do(ctx, http.MethodPatch, idPath(requestsPath, id, "status"), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddComment(ctx context.Context, id uint64, text string) (uint64, error) {
	q := url.Values{"comment": {text}}
	var out created
	if err := c.do(ctx, http.MethodPost, idPath(requestsPath, id, "comments"), q, nil, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) DeleteRequest(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, idPath(requestsPath, id), nil, nil, nil)
}
