// adminctl is a terminal stand-in for the admin SPA: it drives the same API
// through the cached client stores.
package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/develop-y-minami/v-spa/internal/client"
	"github.com/develop-y-minami/v-spa/internal/config"
)

var (
	users     *client.UsersStore
	roleCodes *client.RoleCodesStore
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	api := client.New(cfg.Client.BaseURL, cfg.Client.Token)
	users = client.NewUsersStore(api)
	roleCodes = client.NewRoleCodesStore(api)

	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Administer v-spa users and role codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(usersCmd(), rolesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(c *cobra.Command, args []string) error {
			if err := users.FetchAll(c.Context()); err != nil {
				return fmt.Errorf("%s", users.LastError())
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tEMAIL\tROLE")
			for _, u := range users.All() {
				email := ""
				if u.Email != nil {
					email = *u.Email
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", u.ID, u.Username, u.Name, email, u.RoleCodeID)
			}
			return w.Flush()
		},
	})

	var params client.CreateUserParams
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		RunE: func(c *cobra.Command, args []string) error {
			created, err := users.Add(c.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("Created user %d (%s)\n", created.ID, created.Username)
			return nil
		},
	}
	add.Flags().StringVar(&params.Username, "username", "", "login name")
	add.Flags().StringVar(&params.Name, "name", "", "display name")
	add.Flags().StringVar(&params.Email, "email", "", "email address (optional)")
	add.Flags().StringVar(&params.Password, "password", "", "initial password")
	add.Flags().UintVar(&params.RoleCodeID, "role", 1, "role code id")
	add.MarkFlagRequired("username")
	add.MarkFlagRequired("name")
	add.MarkFlagRequired("password")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			if err := users.Delete(c.Context(), uint(id)); err != nil {
				// The 410 case still removed the record locally; tell the
				// operator what actually happened.
				return fmt.Errorf("%s", users.LastError())
			}
			fmt.Printf("Deleted user %d\n", id)
			return nil
		},
	})

	return cmd
}

func rolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Inspect role codes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all role codes",
		RunE: func(c *cobra.Command, args []string) error {
			if err := roleCodes.FetchAll(c.Context()); err != nil {
				return fmt.Errorf("%s", roleCodes.LastError())
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, rc := range roleCodes.All() {
				fmt.Fprintf(w, "%d\t%s\n", rc.ID, rc.Name)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one role code",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid role code id %q", args[0])
			}
			rc, err := roleCodes.GetByID(c.Context(), uint(id))
			if err != nil {
				return err
			}
			fmt.Printf("%d\t%s\n", rc.ID, rc.Name)
			return nil
		},
	})

	return cmd
}
