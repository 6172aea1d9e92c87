package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gearguard/pkg/board"
	"gearguard/pkg/client"
)

const dateLayout = "2006-01-02"

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(out io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

func orDash[T any](v *T) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateLayout)
}

func formatPriority(p *client.Priority) string {
	if p == nil {
		return "-"
	}
	return string(*p)
}

func overdueMark(overdue bool) string {
	if overdue {
		return "OVERDUE"
	}
	return ""
}

func renderBoard(out io.Writer, columns []board.Column) {
	for i, col := range columns {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "== %s (%d) ==\n", col.Status.Label(), len(col.Items))
		for _, it := range col.Items {
			fmt.Fprintf(out, "  #%d %s [%s] %s", it.ID, it.Subject, it.RequestType, it.EquipmentName)
			if it.TechnicianName != nil {
				fmt.Fprintf(out, " @%s", *it.TechnicianName)
			}
			if it.Overdue {
				fmt.Fprint(out, " OVERDUE")
			}
			fmt.Fprintln(out)
		}
	}
}

func renderList(out io.Writer, items []board.Item) {
	tw := newTable(out, "ID", "SUBJECT", "TYPE", "STATUS", "PRIORITY", "EQUIPMENT", "TEAM", "TECHNICIAN", "SCHEDULED", "")
	for _, it := range items {
		row(tw, it.ID, it.Subject, it.RequestType, it.Status.Label(), formatPriority(it.Priority),
			it.EquipmentName, it.TeamName, orDash(it.TechnicianName), formatDate(it.ScheduledDate), overdueMark(it.Overdue))
	}
	tw.Flush()
}

func renderDetail(out io.Writer, d *client.RequestDetail, overdue bool) {
	fmt.Fprintf(out, "#%d %s\n", d.ID, d.Subject)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	row(tw, "Status:", d.Status.Label()+" "+overdueMark(overdue))
	row(tw, "Type:", d.RequestType)
	row(tw, "Priority:", formatPriority(d.Priority))
	row(tw, "Equipment:", fmt.Sprintf("%s (%s)", d.EquipmentName, d.SerialNumber))
	row(tw, "Location:", orDash(d.Location))
	row(tw, "Team:", d.TeamName)
	row(tw, "Technician:", orDash(d.TechnicianName))
	row(tw, "Scheduled:", formatDate(d.ScheduledDate))
	row(tw, "Duration (h):", orDash(d.DurationHours))
	row(tw, "Created by:", d.CreatedByName)
	tw.Flush()

	if d.Description != nil && *d.Description != "" {
		fmt.Fprintf(out, "\n%s\n", *d.Description)
	}
	if len(d.StatusHistory) > 0 {
		fmt.Fprintln(out, "\nHistory:")
		for _, h := range d.StatusHistory {
			from := "-"
			if h.OldStatus != nil {
				from = h.OldStatus.Label()
			}
			fmt.Fprintf(out, "  %s  %s -> %s  by %s\n", h.ChangedAt.Format(time.DateTime), from, h.NewStatus.Label(), orDash(h.ChangedByName))
		}
	}
	if len(d.Comments) > 0 {
		fmt.Fprintln(out, "\nComments:")
		for _, c := range d.Comments {
			fmt.Fprintf(out, "  %s  %s: %s\n", c.CreatedAt.Format(time.DateTime), orDash(c.CommenterName), c.Comment)
		}
	}
}
