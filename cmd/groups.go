package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orgadmin/orgadmin-console/internal/navigation"
	"github.com/orgadmin/orgadmin-console/models"
)

var newGroup models.NewGroup

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage the organization's groups",
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteGroups); err != nil {
			return err
		}

		if err := a.groups.Fetch(); err != nil {
			return err
		}

		for _, group := range a.groups.All() {
			fmt.Printf("%s\t%s\tadmin=%s\tmembers=%s\n",
				group.ID, group.Name, group.AdminID, strings.Join(group.Members, ","))
		}
		return nil
	},
}

var groupsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a group",
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteGroups); err != nil {
			return err
		}

		if err := a.groups.Create(newGroup); err != nil {
			return err
		}

		fmt.Printf("Created group %s\n", newGroup.Name)
		return nil
	},
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete <group-id>",
	Short: "Delete a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteGroups); err != nil {
			return err
		}

		if err := a.groups.Fetch(); err != nil {
			return err
		}
		if err := a.groups.Delete(args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted group %s\n", args[0])
		return nil
	},
}

var groupsAddMemberCmd = &cobra.Command{
	Use:   "add-member <group-id> <user-id>",
	Short: "Add a user to a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteGroups); err != nil {
			return err
		}

		if err := a.groups.Fetch(); err != nil {
			return err
		}
		if err := a.groups.AddMember(args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("Added %s to group %s\n", args[1], args[0])
		return nil
	},
}

var groupsRemoveMemberCmd = &cobra.Command{
	Use:   "remove-member <group-id> <user-id>",
	Short: "Remove a user from a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteGroups); err != nil {
			return err
		}

		if err := a.groups.Fetch(); err != nil {
			return err
		}
		if err := a.groups.RemoveMember(args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("Removed %s from group %s\n", args[1], args[0])
		return nil
	},
}

var groupsChangeAdminCmd = &cobra.Command{
	Use:   "change-admin <group-id> <user-id>",
	Short: "Transfer the group admin role to an existing member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := requireRoute(a, navigation.RouteGroups); err != nil {
			return err
		}

		if err := a.groups.Fetch(); err != nil {
			return err
		}
		if err := a.groups.ChangeAdmin(args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("Group %s admin is now %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	groupsCreateCmd.Flags().StringVar(&newGroup.Name, "name", "", "group name")
	groupsCreateCmd.Flags().StringVar(&newGroup.Description, "description", "", "group description")
	groupsCreateCmd.Flags().StringVar(&newGroup.AdminID, "admin", "", "user id of the group admin")
	_ = groupsCreateCmd.MarkFlagRequired("name")
	_ = groupsCreateCmd.MarkFlagRequired("admin")

	groupsCmd.AddCommand(groupsListCmd, groupsCreateCmd, groupsDeleteCmd,
		groupsAddMemberCmd, groupsRemoveMemberCmd, groupsChangeAdminCmd)
	rootCmd.AddCommand(groupsCmd)
}
