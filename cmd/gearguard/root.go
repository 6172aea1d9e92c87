package main

import (
	"errors"
	"fmt"
	"strconv"

	"gearguard/pkg/client"

	"github.com/spf13/cobra"
)

// errReported marks a failure the notifier already printed.
var errReported = errors.New("reported")

func reported(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errReported, err)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "gearguard",
		Short:         "Maintenance requests, equipment and teams from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.out = cmd.OutOrStdout()
			a.connect()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.BaseURL, "api-url", a.cfg.BaseURL, "GearGuard API base URL")
	flags.StringVar(&a.cfg.Token, "token", a.cfg.Token, "access token (defaults to GEARGUARD_TOKEN)")
	flags.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "HTTP timeout")
	flags.BoolVar(&a.asJSON, "json", false, "print JSON instead of tables")

	root.AddGroup(
		&cobra.Group{ID: "requests", Title: "Maintenance requests:"},
		&cobra.Group{ID: "catalog", Title: "Equipment and teams:"},
		&cobra.Group{ID: "insight", Title: "Dashboard and reports:"},
		&cobra.Group{ID: "account", Title: "Account:"},
	)

	root.AddCommand(
		newLoginCmd(a), newSignupCmd(a), newLogoutCmd(a), newWhoamiCmd(a),
		newBoardCmd(a), newListCmd(a), newShowCmd(a), newCreateCmd(a), newUpdateCmd(a),
		newMoveCmd(a), newCommentCmd(a), newDeleteCmd(a),
		newEquipmentCmd(a), newTeamsCmd(a),
		newDashboardCmd(a), newCalendarCmd(a), newReportCmd(a), newWatchCmd(a),
	)
	root.SetErrPrefix("gearguard:")
	return root
}

// run executes the command and prints an unreported error on stderr.
func run(root *cobra.Command, args []string) error {
	root.SetArgs(args)
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		root.PrintErrln(root.ErrPrefix(), err)
	}
	return err
}

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// filterFlags binds the request list filters to cmd.
type filterFlags struct {
	status      string
	requestType string
	equipmentID uint64
	teamID      uint64
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", "", "only this status (new, in-progress, repaired, scrap)")
	cmd.Flags().StringVar(&f.requestType, "type", "", "only this type (corrective, preventive)")
	cmd.Flags().Uint64Var(&f.equipmentID, "equipment", 0, "only requests for this equipment id")
	cmd.Flags().Uint64Var(&f.teamID, "team", 0, "only requests for this team id")
}

func (f *filterFlags) filter() (client.RequestFilter, error) {
	var out client.RequestFilter
	if f.status != "" {
		s, err := client.ParseStatus(f.status)
		if err != nil {
			return out, err
		}
		out.Status = &s
	}
	if f.requestType != "" {
		t, err := client.ParseRequestType(f.requestType)
		if err != nil {
			return out, err
		}
		out.RequestType = &t
	}
	if f.equipmentID != 0 {
		out.EquipmentID = &f.equipmentID
	}
	if f.teamID != 0 {
		out.TeamID = &f.teamID
	}
	return out, nil
}
