package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/modularizer/internal/config"
	"github.com/modu-ai/modularizer/internal/core/project"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the .modularizer.yaml configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write .modularizer.yaml with default values",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
	return cmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	root, err := project.ResolveRoot(getStringFlag(cmd, "root"))
	if err != nil {
		return err
	}
	path, err := config.WriteDefault(root, getBoolFlag(cmd, "force"))
	if err != nil {
		return err
	}

	logger := newLogger(getBoolFlag(cmd, "verbose"), cmd.ErrOrStderr())
	cfg, err := config.NewLoader(logger).Load(root)
	if err != nil {
		return err
	}
	msg := messagesFor(cfg.Locale)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard(fmt.Sprintf(msg.ConfigWritten, path)))
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (defaults, file and environment)",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	root, err := project.ResolveRoot(getStringFlag(cmd, "root"))
	if err != nil {
		return err
	}

	logger := newLogger(getBoolFlag(cmd, "verbose"), cmd.ErrOrStderr())
	loader := config.NewLoader(logger)
	cfg, err := loader.Load(root)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	source := "defaults"
	if f := loader.FileUsed(); f != "" {
		source = f
	}
	_, _ = fmt.Fprintln(out, cliMuted.Render("# source: "+source))
	_, _ = fmt.Fprint(out, buf.String())
	return nil
}
