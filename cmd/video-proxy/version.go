package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"video-proxy-go/pkg/appctx"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "video-proxy %s %s/%s\n", appctx.Version, runtime.GOOS, runtime.GOARCH)
	},
}
