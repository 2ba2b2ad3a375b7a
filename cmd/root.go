package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/grabfile/internal"
	"github.com/tanq16/grabfile/internal/downloaders/s3"
	"github.com/tanq16/grabfile/internal/output"
	"github.com/tanq16/grabfile/internal/utils"
)

const usageLine = "Usage: grabfile <URL> <output_path> <output_filename>"

var errUsage = errors.New("wrong arguments")

type globalOptions struct {
	debug      bool
	s3Region   string
	s3Endpoint string
	// set when -h/--help reaches the root command, which counts as a
	// wrong argument count
	helpRequested bool
}

func (o *globalOptions) downloader(out io.Writer) *internal.Downloader {
	return internal.NewDownloader(internal.DownloadConfig{
		S3Config: s3.Config{
			Region:   o.s3Region,
			Endpoint: o.s3Endpoint,
		},
	}, out)
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *globalOptions) {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:           "grabfile <URL> <output_path> <output_filename>",
		Short:         "grabfile downloads one file and shows its progress",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errUsage
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.InitLogger(stderr, opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.downloader(stdout).Download(cmd.Context(), args[0], args[1], args[2])
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(*cobra.Command, error) error { return errUsage })
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		RunE:   func(*cobra.Command, []string) error { return errUsage },
	})
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd {
			opts.helpRequested = true
			return
		}
		defaultHelp(cmd, args)
	})

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.s3Region, "s3-region", s3.DefaultRegion, "Region for s3:// URLs")
	rootCmd.PersistentFlags().StringVar(&opts.s3Endpoint, "s3-endpoint", "", "Endpoint for S3-compatible stores (path-style)")

	rootCmd.AddCommand(newBatchCmd(opts, stdout))
	return rootCmd, opts
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd, opts := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil && opts.helpRequested {
		err = errUsage
	}
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usageLine)
			return 1
		}
		output.NewPrinter(stderr).Error(fmt.Sprintf("Error: %v", err))
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
