package cli

import (
	"context"
	"fmt"

	"mysterybox-storefront/cmd/bootstrap"
	"mysterybox-storefront/cmd/bootstrap/components"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage panel accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an operator, developer or admin account",
	RunE:  runUserCreate,
}

func init() {
	userCreateCmd.Flags().String("email", "", "Login email")
	userCreateCmd.Flags().String("password", "", "Password (min 8 characters)")
	userCreateCmd.Flags().String("role", "operator", "Role: operator, developer, admin")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserCreate(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	role, _ := cmd.Flags().GetString("role")

	var auth commands.AuthCommands
	app := fx.New(
		bootstrap.Infra,
		bootstrap.JWTModule,
		fx.Provide(
			clock.NewRealClock,
			components.NewTokenService,
			commands.NewAuthCommands,
		),
		fx.Populate(&auth),
		fx.NopLogger,
	)
	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(ctx) }()

	id, err := auth.CreateUser(ctx, email, password, role)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s user %s (%s)\n", role, email, id)
	return nil
}
