// Package cli provides the Cobra command tree of modularizer.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/modu-ai/modularizer/pkg/version"
)

var rootCmd = newRootCmd()

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modularizer",
		Short: "Scaffold feature modules in an Angular project",
		Long: `modularizer creates a feature module under src/app of an Angular project:
a services/layouts/components/models directory tree, a CRUD service, model
types, and a guard and layout generated by the Angular CLI.

Run it from the project root (the directory containing angular.json).

Examples:
  modularizer                                   Ask for the module name and artifacts
  modularizer --name userProfile                Skip the name prompt
  modularizer --name orders --non-interactive   Generate everything without prompts
  modularizer --name orders --guard=false -y    Generate all but the guard`,
		Args:         cobra.NoArgs,
		Version:      version.GetVersion(),
		SilenceUsage: true,
		RunE:         runGenerate,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("modularizer %s\n", version.GetFullVersion()))

	cmd.PersistentFlags().String("root", "", "Project root directory (default: current directory)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	cmd.Flags().StringP("name", "n", "", "Module name (letters, digits and hyphens)")
	cmd.Flags().Bool("service", true, "Generate the CRUD service")
	cmd.Flags().Bool("guard", true, "Generate the guard")
	cmd.Flags().Bool("layout", true, "Generate the layout component")
	cmd.Flags().Bool("models", true, "Generate model and index files")
	cmd.Flags().BoolP("non-interactive", "y", false, "Skip prompts; use flags and configuration defaults")

	cmd.AddCommand(newVersionCmd(), newConfigCmd())
	return cmd
}

// Execute runs the root command. An interrupt cancels the command context,
// which stops a running Angular CLI process.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
