package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orgadmin/orgadmin-console/models"
)

var (
	loginEmail    string
	loginPassword string

	registerData models.RegisterData
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as an organization admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.session.Login(loginEmail, loginPassword); err != nil {
			return fmt.Errorf("login failed: %s", a.session.LastError())
		}

		identity := a.session.Current().Identity
		fmt.Printf("Signed in as %s (%s)\n", identity.Name, identity.Organization)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new organization with its admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.session.Register(registerData); err != nil {
			return fmt.Errorf("registration failed: %s", a.session.LastError())
		}

		fmt.Println("Organization registered. Sign in with `orgadmin login`.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}

		a.session.Logout()
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}

		if !a.session.IsAuthenticated() {
			fmt.Println("Not signed in.")
			return nil
		}

		identity := a.session.Current().Identity
		fmt.Printf("%s <%s> @ %s\n", identity.Name, identity.Email, identity.Organization)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "admin email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "admin password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerData.Name, "name", "", "admin name")
	registerCmd.Flags().StringVar(&registerData.Email, "email", "", "admin email")
	registerCmd.Flags().IntVar(&registerData.Age, "age", 0, "admin age")
	registerCmd.Flags().StringVar(&registerData.Password, "password", "", "admin password")
	registerCmd.Flags().StringVar(&registerData.Phone, "phone", "", "admin phone")
	registerCmd.Flags().StringVar(&registerData.OrganizationName, "organization", "", "organization name")
	registerCmd.Flags().StringVar(&registerData.Description, "description", "", "organization description")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("organization")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
