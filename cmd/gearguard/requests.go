package main

import (
	"fmt"
	"strings"

	"gearguard/pkg/board"
	"gearguard/pkg/client"

	"github.com/spf13/cobra"
)

func newBoardCmd(a *app) *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:     "board",
		Short:   "Show requests grouped by status",
		GroupID: "requests",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := f.filter()
			if err != nil {
				return err
			}
			columns, err := a.workspace.Board(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(columns)
			}
			renderBoard(a.out, columns)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List requests",
		GroupID: "requests",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := f.filter()
			if err != nil {
				return err
			}
			items, err := a.workspace.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(items)
			}
			renderList(a.out, items)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Short:   "Show a request with its history and comments",
		GroupID: "requests",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			detail, err := a.workspace.Request(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(detail)
			}
			renderDetail(a.out, detail, a.workspace.IsOverdue(detail.Request))
			return nil
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var (
		in          client.CreateRequestInput
		requestType string
		priority    string
		description string
		scheduled   string
		technician  uint64
		duration    int64
	)
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Open a maintenance request",
		GroupID: "requests",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := client.ParseRequestType(requestType)
			if err != nil {
				return err
			}
			in.RequestType = t
			if priority != "" {
				p, err := client.ParsePriority(priority)
				if err != nil {
					return err
				}
				in.Priority = &p
			}
			if description != "" {
				in.Description = &description
			}
			if scheduled != "" {
				in.ScheduledDate = &scheduled
			}
			if technician != 0 {
				in.AssignedTechnicianID = &technician
			}
			if cmd.Flags().Changed("duration") {
				in.DurationHours = &duration
			}

			id, err := a.workspace.Create(cmd.Context(), in)
			if err != nil {
				return reported(err)
			}
			fmt.Fprintf(a.out, "created request #%d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Subject, "subject", "", "short description of the problem")
	cmd.Flags().StringVar(&requestType, "type", string(client.RequestTypeCorrective), "corrective or preventive")
	cmd.Flags().Uint64Var(&in.EquipmentID, "equipment", 0, "equipment id")
	cmd.Flags().Uint64Var(&in.MaintenanceTeamID, "team", 0, "maintenance team id")
	cmd.Flags().StringVar(&priority, "priority", "", "low, medium or high")
	cmd.Flags().StringVar(&description, "description", "", "details")
	cmd.Flags().StringVar(&scheduled, "scheduled", "", "scheduled date (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().Uint64Var(&technician, "technician", 0, "assigned technician id")
	cmd.Flags().Int64Var(&duration, "duration", 0, "expected duration in hours")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("equipment")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var (
		subject     string
		description string
		priority    string
		scheduled   string
		technician  uint64
		duration    int64
	)
	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Edit a request's details",
		GroupID: "requests",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var in client.UpdateRequestInput
			changed := cmd.Flags().Changed
			if changed("subject") {
				in.Subject = &subject
			}
			if changed("description") {
				in.Description = &description
			}
			if changed("priority") {
				p, err := client.ParsePriority(priority)
				if err != nil {
					return err
				}
				in.Priority = &p
			}
			if changed("scheduled") {
				in.ScheduledDate = &scheduled
			}
			if changed("technician") {
				in.AssignedTechnicianID = &technician
			}
			if changed("duration") {
				in.DurationHours = &duration
			}
			if err := a.workspace.Update(cmd.Context(), id, in); err != nil {
				return reported(err)
			}
			fmt.Fprintf(a.out, "updated request #%d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "new subject")
	cmd.Flags().StringVar(&description, "description", "", "new details")
	cmd.Flags().StringVar(&priority, "priority", "", "low, medium or high")
	cmd.Flags().StringVar(&scheduled, "scheduled", "", "scheduled date (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().Uint64Var(&technician, "technician", 0, "assigned technician id")
	cmd.Flags().Int64Var(&duration, "duration", 0, "expected duration in hours")
	return cmd
}

func newMoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move <id> <status>",
		Short:   "Change a request's status",
		Long:    "Change a request's status. Moving to scrap asks for confirmation unless --yes is given.",
		GroupID: "requests",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := client.ParseStatus(args[1])
			if err != nil {
				return err
			}

			outcome, err := a.workspace.Move(cmd.Context(), id, status)
			switch outcome {
			case board.OutcomeApplied:
				fmt.Fprintf(a.out, "request #%d moved to %s\n", id, status.Label())
			case board.OutcomeUnchanged:
				fmt.Fprintf(a.out, "request #%d is already %s\n", id, status.Label())
			case board.OutcomeCancelled:
				fmt.Fprintln(a.out, "cancelled, nothing changed")
				return err
			case board.OutcomeFailed:
				return reported(err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&a.assumeYes, "yes", "y", false, "do not ask before scrapping")
	return cmd
}

func newCommentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "comment <id> <text>...",
		Short:   "Add a comment to a request",
		GroupID: "requests",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return fmt.Errorf("comment is empty")
			}
			commentID, err := a.workspace.Comment(cmd.Context(), id, text)
			if err != nil {
				return reported(err)
			}
			fmt.Fprintf(a.out, "added comment #%d to request #%d\n", commentID, id)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a request",
		GroupID: "requests",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.workspace.Delete(cmd.Context(), id); err != nil {
				return reported(err)
			}
			fmt.Fprintf(a.out, "deleted request #%d\n", id)
			return nil
		},
	}
}
