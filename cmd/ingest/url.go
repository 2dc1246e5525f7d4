package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Fetch a URL and print its normalized content",
	Args:  cobra.ExactArgs(1),
	RunE:  runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	n := newNormalizer()
	c, err := n.FetchContentFromURL(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetch %s: %w", args[0], err)
	}
	return printResult(os.Stdout, c)
}
