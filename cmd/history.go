package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/aerogrow/aerobuild/internal/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "List packaged builds",
	RunE:         runHistory,
	SilenceUsage: true,
}

var historyClearCmd = &cobra.Command{
	Use:          "clear",
	Short:        "Remove all build history records",
	RunE:         runHistoryClear,
	SilenceUsage: true,
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}

func openLedger(cmd *cobra.Command) (*history.Ledger, error) {
	ctx, err := buildctx.NewLoader().LoadForBuild(cmd)
	if err != nil {
		return nil, err
	}

	return history.Open(filepath.Join(ctx.ProjectDir, history.DefaultDir))
}

func runHistory(cmd *cobra.Command, args []string) error {
	ledger, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer ledger.Close()

	records, err := ledger.List()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No packaged builds recorded")
		return nil
	}

	for _, rec := range records {
		dirty := ""
		if rec.GitDirty {
			dirty = "*"
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s v%s (%s:%s%s) %d bytes -> %s\n",
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Variant, rec.BuildType, rec.FirmwareVersion,
			rec.GitBranch, rec.GitHash, dirty,
			rec.BinarySize, rec.PackageDir)
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	ledger, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer ledger.Close()

	if err := ledger.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Build history cleared")

	return nil
}
