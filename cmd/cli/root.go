// Package cli wires the cobra commands: the API server, the notification
// worker, migrations, panel user provisioning and the storefront client.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mysterybox",
	Short:         "Mystery box storefront",
	Long:          "Storefront API server, notification worker and shopper-side tools for the mystery box shop.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
