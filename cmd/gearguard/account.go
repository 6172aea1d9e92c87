package main

import (
	"fmt"

	"gearguard/pkg/client"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var in client.LoginInput
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Sign in and print an access token",
		GroupID: "account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := a.api.Login(cmd.Context(), in)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(session)
			}
			fmt.Fprintf(a.out, "signed in as %s (%s)\n", session.User.Name, session.User.Role)
			fmt.Fprintf(a.out, "export GEARGUARD_TOKEN=%s\n", session.AccessToken)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "account password")
	cmd.Flags().StringVar(&in.Role, "role", "", "role to sign in with, when the account has several")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newSignupCmd(a *app) *cobra.Command {
	var in client.SignupInput
	cmd := &cobra.Command{
		Use:     "signup",
		Short:   "Create an employee account",
		GroupID: "account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.api.Signup(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created account #%d for %s\n", user.ID, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "End the session",
		GroupID: "account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.api.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "signed out; unset GEARGUARD_TOKEN")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the signed in user",
		GroupID: "account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.api.Me(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(user)
			}
			fmt.Fprintf(a.out, "#%d %s <%s> %s\n", user.ID, user.Name, user.Email, user.Role)
			return nil
		},
	}
}
