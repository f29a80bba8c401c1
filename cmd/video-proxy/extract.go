package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"video-proxy-go/internal/app"
)

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolP("best", "b", false, "Print only the best media URL")
}

var extractCmd = &cobra.Command{
	Use:   "extract <post url>",
	Short: "Extract media URLs from a post and print them as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if !cmd.Flags().Changed("log-level") {
			cfg.LogLevel = "warn"
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}

		result, err := application.Ctx.MediaService.Extract(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if best, _ := cmd.Flags().GetBool("best"); best {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), result.BestURL)
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}
