package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const teamsPath = "/api/teams"

func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	return list[Team](ctx, c, teamsPath, nil)
}

func (c *Client) GetTeam(ctx context.Context, id uint64) (*TeamDetail, error) {
	var out TeamDetail
	if err := c.do(ctx, http.MethodGet, idPath(teamsPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTeam(ctx context.Context, in TeamInput) (uint64, error) {
	var out created
	if err := c.do(ctx, http.MethodPost, teamsPath, nil, in, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateTeam(ctx context.Context, id uint64, in TeamInput) error {
	return c.do(ctx, http.MethodPut, idPath(teamsPath, id), nil, in, nil)
}

func (c *Client) DeleteTeam(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, idPath(teamsPath, id), nil, nil, nil)
}

func (c *Client) AddTeamMember(ctx context.Context, teamID, userID uint64) error {
	q := url.Values{"user_id": {strconv.FormatUint(userID, 10)}}
	return c.do(ctx, http.MethodPost, idPath(teamsPath, teamID, "members"), q, nil, nil)
}

func (c *Client) RemoveTeamMember(ctx context.Context, teamID, userID uint64) error {
	return c.do(ctx, http.MethodDelete, idPath(teamsPath, teamID, "members", strconv.FormatUint(userID, 10)), nil, nil, nil)
}
