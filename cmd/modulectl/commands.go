package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dangerclosesec/modgate/internal/database"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		if err := database.Migrate(cmd.Context(), a.db); err != nil {
			return err
		}
		fmt.Println("Schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert module definitions into the catalog",
	Long:  `Upsert module definitions by name. Existing modules keep their ids and entitlements.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		modules, err := loadCatalog(catalogFile)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.catalog.Seed(cmd.Context(), modules); err != nil {
			return err
		}
		fmt.Printf("Seeded %d modules\n", len(modules))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		modules, err := a.catalog.ListAll(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tPERMISSION\tCATEGORY")
		for _, m := range modules {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.PermissionType, m.Category)
		}
		return tw.Flush()
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate [module]",
	Short: "Activate a module on behalf of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyEntitlement(cmd.Context(), args[0], model.StateActive)
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate [module]",
	Short: "Deactivate a module on behalf of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyEntitlement(cmd.Context(), args[0], model.StateInactive)
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token [user]",
	Short: "Issue an API token for a user email or id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		user, err := a.findUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		token, err := a.tokens().Generate(user.ID.String(), user.Email)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func applyEntitlement(ctx context.Context, moduleRef string, state model.DesiredState) error {
	scope, err := model.ParseScope(scopeFlag)
	if err != nil {
		return err
	}

	var orgID *uuid.UUID
	if orgFlag != "" {
		id, err := uuid.Parse(orgFlag)
		if err != nil {
			return fmt.Errorf("invalid organization id %q: %w", orgFlag, err)
		}
		orgID = &id
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.findUser(ctx, actingUser)
	if err != nil {
		return err
	}
	actor, err := a.actors.Resolve(ctx, user.ID)
	if err != nil {
		return err
	}
	if orgID == nil {
		orgID = actor.CurrentOrganizationID
	}

	module, err := a.catalog.Resolve(ctx, moduleRef)
	if err != nil {
		return err
	}

	result, err := a.activation.Apply(ctx, model.EntitlementRequest{
		ModuleID:     module.ID,
		Actor:        actor,
		Scope:        scope,
		TargetOrgID:  orgID,
		DesiredState: state,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s (decision=%s approver=%s)\n", result.Message, result.Decision.Effect, result.Decision.Approver)
	return nil
}

func (a *app) findUser(ctx context.Context, ref string) (*model.User, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return a.users.FindByID(ctx, id)
	}
	return a.users.FindByEmail(ctx, ref)
}
