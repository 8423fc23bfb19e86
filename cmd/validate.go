package cmd

import (
	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/aerogrow/aerobuild/internal/validate"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:          "validate",
	Short:        "Validate the project layout for the selected variant",
	RunE:         runValidate,
	SilenceUsage: true,
}

// Validation is advisory: the command prints findings but always exits zero
func runValidate(cmd *cobra.Command, args []string) error {
	ctx, err := buildctx.NewLoader().LoadForBuild(cmd)
	if err != nil {
		return err
	}

	report := validate.Run(ctx)
	report.PrintSummary(cmd.OutOrStdout())

	return nil
}
