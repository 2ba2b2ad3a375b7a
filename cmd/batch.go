package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tanq16/grabfile/internal/utils"
)

func newBatchCmd(opts *globalOptions, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <list.yaml>",
		Short: "Download every entry of a YAML list, one after another",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := utils.ReadDownloadList(args[0])
			if err != nil {
				return err
			}
			downloader := opts.downloader(stdout)
			for i, entry := range entries {
				err := downloader.Download(cmd.Context(), entry.URL, entry.OutputPath, entry.OutputName)
				if err != nil {
					return fmt.Errorf("entry %d (%s): %w", i+1, entry.Destination(), err)
				}
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return err })
	return cmd
}
