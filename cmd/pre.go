package cmd

import (
	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/aerogrow/aerobuild/internal/pipeline"
	"github.com/spf13/cobra"
)

var preCmd = &cobra.Command{
	Use:          "pre",
	Short:        "Run pre-compilation steps",
	Long:         `Generate the build info header, validate the project layout, write the version record, and emit the variant's config template.`,
	RunE:         runPre,
	SilenceUsage: true,
}

func runPre(cmd *cobra.Command, args []string) error {
	ctx, err := buildctx.NewLoader().LoadForBuild(cmd)
	if err != nil {
		return err
	}

	return pipeline.New(ctx, cmd.OutOrStdout()).Pre()
}
