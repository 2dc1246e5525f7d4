package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <file>",
	Short: "Extract text from a local PDF file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPDF,
}

func init() {
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	c, err := newNormalizer().ExtractPDFFromBuffer(data)
	if err != nil {
		return fmt.Errorf("extract %s: %w", args[0], err)
	}
	return printResult(os.Stdout, c)
}
