package main

import (
	"fmt"

	"gearguard/pkg/client"

	"github.com/spf13/cobra"
)

func newEquipmentCmd(a *app) *cobra.Command {
	var (
		category   string
		department string
		scrapped   bool
	)
	cmd := &cobra.Command{
		Use:     "equipment",
		Short:   "List equipment",
		GroupID: "catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter client.EquipmentFilter
			if category != "" {
				filter.Category = &category
			}
			if department != "" {
				filter.Department = &department
			}
			if cmd.Flags().Changed("scrapped") {
				filter.IsScrapped = &scrapped
			}
			items, err := a.api.ListEquipment(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(items)
			}
			tw := newTable(a.out, "ID", "NAME", "SERIAL", "CATEGORY", "DEPARTMENT", "LOCATION", "TEAM", "SCRAPPED")
			for _, e := range items {
				row(tw, e.ID, e.Name, e.SerialNumber, orDash(e.Category), orDash(e.Department), orDash(e.Location), orDash(e.TeamName), e.IsScrapped)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only this category")
	cmd.Flags().StringVar(&department, "department", "", "only this department")
	cmd.Flags().BoolVar(&scrapped, "scrapped", false, "only scrapped (true) or active (false) equipment")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show equipment with its recent requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := a.api.GetEquipment(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(e)
			}
			fmt.Fprintf(a.out, "#%d %s (%s)\n", e.ID, e.Name, e.SerialNumber)
			fmt.Fprintf(a.out, "team: %s  technician: %s  scrapped: %t\n", orDash(e.TeamName), orDash(e.TechnicianName), e.IsScrapped)
			if len(e.RecentRequests) > 0 {
				tw := newTable(a.out, "REQUEST", "SUBJECT", "TYPE", "STATUS", "SCHEDULED")
				for _, r := range e.RecentRequests {
					row(tw, r.ID, r.Subject, r.RequestType, r.Status.Label(), formatDate(r.ScheduledDate))
				}
				return tw.Flush()
			}
			return nil
		},
	})
	return cmd
}

func newTeamsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Short:   "List maintenance teams",
		GroupID: "catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			teams, err := a.api.ListTeams(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(teams)
			}
			tw := newTable(a.out, "ID", "NAME", "MEMBERS", "EQUIPMENT")
			for _, t := range teams {
				row(tw, t.ID, t.Name, t.MemberCount, t.EquipmentCount)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a team's members and equipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := a.api.GetTeam(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(t)
			}
			fmt.Fprintf(a.out, "#%d %s\n", t.ID, t.Name)
			tw := newTable(a.out, "MEMBER", "NAME", "EMAIL", "ROLE")
			for _, m := range t.Members {
				row(tw, m.ID, m.Name, m.Email, m.Role)
			}
			return tw.Flush()
		},
	})

	membership := func(use, short string, add bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <team-id> <user-id>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				teamID, err := parseID(args[0])
				if err != nil {
					return err
				}
				userID, err := parseID(args[1])
				if err != nil {
					return err
				}
				if add {
					err = a.api.AddTeamMember(cmd.Context(), teamID, userID)
				} else {
					err = a.api.RemoveTeamMember(cmd.Context(), teamID, userID)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "team #%d updated\n", teamID)
				return nil
			},
		}
	}
	cmd.AddCommand(
		membership("add-member", "Add a technician to a team", true),
		membership("remove-member", "Remove a member from a team", false),
	)
	return cmd
}
