package cmd

import (
	"fmt"

	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/aerogrow/aerobuild/internal/pipeline"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:          "post",
	Short:        "Package a compiled firmware binary",
	Long:         `Collect the compiled binary, partition table, and config template into a versioned distribution directory with install instructions.`,
	RunE:         runPost,
	SilenceUsage: true,
}

func init() {
	postCmd.Flags().StringP("binary", "b", "", "Path to the compiled firmware binary")
	_ = postCmd.MarkFlagRequired("binary")
}

func runPost(cmd *cobra.Command, args []string) error {
	binary, err := cmd.Flags().GetString("binary")
	if err != nil {
		return err
	}

	if binary == "" {
		return fmt.Errorf("firmware binary path not specified")
	}

	ctx, err := buildctx.NewLoader().LoadForBuild(cmd)
	if err != nil {
		return err
	}

	_, err = pipeline.New(ctx, cmd.OutOrStdout()).Post(binary)

	return err
}
