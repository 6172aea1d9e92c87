package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gearguard/internal/events"
	"gearguard/pkg/constants"
	"gearguard/pkg/mq"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Short:   "Show equipment and request counters",
		GroupID: "insight",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := a.workspace.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(stats)
			}
			byStatus := stats.Requests.ByStatus
			tw := newTable(a.out, "METRIC", "VALUE")
			row(tw, "equipment total", stats.Equipment.Total)
			row(tw, "equipment active", stats.Equipment.Active)
			row(tw, "equipment scrapped", stats.Equipment.Scrapped)
			row(tw, "requests total", stats.Requests.Total)
			row(tw, "  new", byStatus.New)
			row(tw, "  in progress", byStatus.InProgress)
			row(tw, "  repaired", byStatus.Repaired)
			row(tw, "  scrap", byStatus.Scrap)
			row(tw, "  corrective", stats.Requests.ByType.Corrective)
			row(tw, "  preventive", stats.Requests.ByType.Preventive)
			row(tw, "overdue", stats.Requests.Overdue)
			row(tw, "teams", stats.Teams.Total)
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(stats.RecentActivity) > 0 {
				fmt.Fprintln(a.out, "\nRecent activity:")
				for _, it := range stats.RecentActivity {
					fmt.Fprintf(a.out, "  #%d %s [%s] %s by %s\n", it.ID, it.Subject, it.Status, it.EquipmentName, it.CreatedByName)
				}
			}
			return nil
		},
	}
}

func newCalendarCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "calendar",
		Short:   "List scheduled maintenance",
		GroupID: "insight",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseDateFlag("from", from)
			if err != nil {
				return err
			}
			end, err := parseDateFlag("to", to)
			if err != nil {
				return err
			}
			evts, err := a.api.CalendarEvents(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(evts)
			}
			tw := newTable(a.out, "DATE", "ID", "TITLE", "TYPE", "STATUS", "EQUIPMENT", "TEAM", "TECHNICIAN")
			for _, e := range evts {
				row(tw, e.ScheduledDate.Format(dateLayout), e.ID, e.Title, e.RequestType, e.Status.Label(), e.EquipmentName, e.TeamName, orDash(e.TechnicianName))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day (YYYY-MM-DD)")
	return cmd
}

func parseDateFlag(name, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD", name, raw)
	}
	return t, nil
}

func newReportCmd(a *app) *cobra.Command {
	var xlsxPath string
	cmd := &cobra.Command{
		Use:       "report <name>",
		Short:     "Print a report or save it as xlsx",
		GroupID:   "insight",
		ValidArgs: constants.Reports,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if xlsxPath != "" {
				return a.saveReport(cmd, name, xlsxPath)
			}
			ctx := cmd.Context()
			switch name {
			case constants.ReportMaintenanceByTeam:
				rows, err := a.api.MaintenanceByTeam(ctx)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(rows)
				}
				tw := newTable(a.out, "TEAM", "TOTAL", "NEW", "IN PROGRESS", "COMPLETED", "SCRAPPED")
				for _, r := range rows {
					row(tw, r.Name, r.TotalRequests, r.NewRequests, r.InProgress, r.Completed, r.Scrapped)
				}
				return tw.Flush()
			case constants.ReportEquipmentStatus:
				rows, err := a.api.EquipmentStatus(ctx)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(rows)
				}
				tw := newTable(a.out, "CATEGORY", "TOTAL", "ACTIVE", "SCRAPPED", "WARRANTY EXPIRED")
				for _, r := range rows {
					row(tw, r.Category, r.Total, r.Active, r.Scrapped, r.WarrantyExpired)
				}
				return tw.Flush()
			default:
				rows, err := a.api.TechnicianWorkload(ctx)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(rows)
				}
				tw := newTable(a.out, "TECHNICIAN", "EMAIL", "ASSIGNED", "ACTIVE", "COMPLETED")
				for _, r := range rows {
					row(tw, r.Name, r.Email, r.TotalAssigned, r.ActiveTasks, r.CompletedTasks)
				}
				return tw.Flush()
			}
		},
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the report to this xlsx file")
	return cmd
}

func (a *app) saveReport(cmd *cobra.Command, name, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.api.DownloadReport(cmd.Context(), name, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "saved %s to %s\n", name, path)
	return nil
}

// requestEvent holds the fields shared by every relayed request event.
type requestEvent struct {
	RequestID  uint64    `json:"request_id"`
	Subject    string    `json:"subject"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ActorID    uint64    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func describeEvent(routingKey string, body []byte) string {
	var e requestEvent
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Sprintf("%s (unreadable payload)", routingKey)
	}
	stamp := e.OccurredAt.Local().Format(time.TimeOnly)
	switch routingKey {
	case events.RequestCreated:
		return fmt.Sprintf("%s request #%d created: %s", stamp, e.RequestID, e.Subject)
	case events.RequestStatusChanged:
		return fmt.Sprintf("%s request #%d moved %s -> %s", stamp, e.RequestID, e.OldStatus, e.NewStatus)
	case events.RequestUpdated:
		return fmt.Sprintf("%s request #%d updated", stamp, e.RequestID)
	case events.RequestCommented:
		return fmt.Sprintf("%s request #%d has a new comment", stamp, e.RequestID)
	case events.RequestDeleted:
		return fmt.Sprintf("%s request #%d deleted", stamp, e.RequestID)
	}
	return fmt.Sprintf("%s %s request #%d", stamp, routingKey, e.RequestID)
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   "Follow request events from the message broker",
		GroupID: "insight",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.Broker.Enabled() {
				return fmt.Errorf("RABBITMQ_URL is not set")
			}
			consumer, err := mq.NewRabbitConsumer(a.cfg.Broker.URL, a.cfg.Broker.Exchange, "request.*")
			if err != nil {
				return err
			}
			defer consumer.Close()

			a.logger.Debug("watching request events", zap.String("exchange", a.cfg.Broker.Exchange))
			return consumer.Consume(cmd.Context(), func(routingKey string, body []byte) {
				fmt.Fprintln(a.out, describeEvent(routingKey, body))
			})
		},
	}
}
