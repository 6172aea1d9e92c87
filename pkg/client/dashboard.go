package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"gearguard/pkg/api"
	"gearguard/pkg/types"
)

const dateLayout = "2006-01-02"

func (c *Client) DashboardStats(ctx context.Context) (*types.DashboardStats, error) {
	var out types.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CalendarEvents lists scheduled requests; zero times leave that end open.
func (c *Client) CalendarEvents(ctx context.Context, start, end time.Time) ([]CalendarEvent, error) {
	q := url.Values{}
	if !start.IsZero() {
		q.Set("start_date", start.Format(dateLayout))
	}
	if !end.IsZero() {
		q.Set("end_date", end.Format(dateLayout))
	}
	return list[CalendarEvent](ctx, c, "/api/calendar/events", q)
}

func (c *Client) MaintenanceByTeam(ctx context.Context) ([]types.TeamMaintenanceRow, error) {
	return list[types.TeamMaintenanceRow](ctx, c, "/api/reports/maintenance-by-team", nil)
}

func (c *Client) EquipmentStatus(ctx context.Context) ([]types.EquipmentCategoryRow, error) {
	return list[types.EquipmentCategoryRow](ctx, c, "/api/reports/equipment-status", nil)
}

func (c *Client) TechnicianWorkload(ctx context.Context) ([]types.TechnicianWorkloadRow, error) {
	return list[types.TechnicianWorkloadRow](ctx, c, "/api/reports/technician-workload", nil)
}

// DownloadReport streams the xlsx export of the named report into w.
func (c *Client) DownloadReport(ctx context.Context, name string, w io.Writer) error {
	target := c.baseURL + "/api/reports/" + url.PathEscape(name) + "?format=xlsx"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: "GET report " + name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var env api.RawResponse
		_ = json.NewDecoder(resp.Body).Decode(&env)
		return errorFromStatus(resp.StatusCode, env.Message, nil)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return &NetworkError{Op: "read report " + name, Err: err}
	}
	return nil
}
