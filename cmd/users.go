package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orgadmin/orgadmin-console/internal/navigation"
	"github.com/orgadmin/orgadmin-console/models"
)

var (
	newUser models.NewUser

	updateUserID string
	updateUser   models.User
)

// requireRoute runs the navigation guard the way a browser client would on
// route entry and refuses the command when the guard redirects elsewhere.
func requireRoute(a *app, path string) error {
	if target := a.guard.Resolve(path); target != path {
		return fmt.Errorf("not signed in (redirected to %s)", target)
	}
	return nil
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage the organization's user directory",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteUsers); err != nil {
			return err
		}

		if err := a.users.Fetch(); err != nil {
			return err
		}

		for _, user := range a.users.All() {
			fmt.Printf("%s\t%s\t%s\t%s\n", user.ID, user.Name, user.Email, user.Type)
		}
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteUsers); err != nil {
			return err
		}

		if err := a.users.Create(newUser); err != nil {
			return err
		}

		fmt.Printf("Created user %s\n", newUser.Email)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteUsers); err != nil {
			return err
		}

		if err := a.users.Update(updateUserID, updateUser); err != nil {
			return err
		}

		fmt.Printf("Updated user %s\n", updateUserID)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteUsers); err != nil {
			return err
		}

		if err := a.users.Delete(args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted user %s\n", args[0])
		return nil
	},
}

func init() {
	usersCreateCmd.Flags().StringVar(&newUser.Name, "name", "", "user name")
	usersCreateCmd.Flags().StringVar(&newUser.Email, "email", "", "user email")
	usersCreateCmd.Flags().StringVar(&newUser.Password, "password", "", "user password")
	usersCreateCmd.Flags().StringVar(&newUser.Type, "type", models.UserTypeRegular, "user type (admin or user)")
	_ = usersCreateCmd.MarkFlagRequired("name")
	_ = usersCreateCmd.MarkFlagRequired("email")
	_ = usersCreateCmd.MarkFlagRequired("password")

	usersUpdateCmd.Flags().StringVar(&updateUserID, "id", "", "user id")
	usersUpdateCmd.Flags().StringVar(&updateUser.Name, "name", "", "user name")
	usersUpdateCmd.Flags().StringVar(&updateUser.Email, "email", "", "user email")
	usersUpdateCmd.Flags().StringVar(&updateUser.Type, "type", "", "user type")
	usersUpdateCmd.Flags().StringVar(&updateUser.Status, "status", "", "user status")
	_ = usersUpdateCmd.MarkFlagRequired("id")

	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
