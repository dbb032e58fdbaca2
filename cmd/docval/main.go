// Package main is the entry point for the docval binary.
// It validates national identification document numbers from the shell.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/docval"
	"github.com/albertocavalcante/docval/brazil"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for docval.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docval",
		Short: "Validate national identification document numbers",
		Long: `Validate national identification document numbers.

Each value is checked offline: formatting is stripped, structure is checked
and check digits are verified. No registry lookup is performed; a valid
verdict means well-formed, not issued.

Example:
  docval cpf 123.456.789-09
  docval taxid 12345678909 12.345.678/0001-95`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress per-value output; report via exit status only")

	rootCmd.AddCommand(
		newValidateCmd("cpf", "Validate Brazilian CPF numbers", brazil.CPF),
		newValidateCmd("cnpj", "Validate Brazilian CNPJ numbers", brazil.CNPJ),
		newValidateCmd("taxid", "Validate Brazilian CPF or CNPJ numbers", brazil.TaxID),
	)

	return rootCmd
}

// newValidateCmd creates a subcommand that runs every argument through v.
func newValidateCmd(use, short string, v docval.Validator) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <value>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, err := cmd.Flags().GetBool("quiet")
			if err != nil {
				return fmt.Errorf("failed to get quiet flag: %w", err)
			}
			return validateAll(cmd.OutOrStdout(), v, args, quiet)
		},
	}
}

// validateAll prints a verdict per value and returns an error if any value
// is invalid, so the process exits non-zero.
func validateAll(w io.Writer, v docval.Validator, values []string, quiet bool) error {
	invalid := 0
	for _, value := range values {
		err := v.Validate(value)
		if err != nil {
			invalid++
		}
		if quiet {
			continue
		}
		if err != nil {
			fmt.Fprintf(w, "%s\tinvalid: %v\n", value, err)
		} else {
			fmt.Fprintf(w, "%s\tvalid\n", value)
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d values invalid", invalid, len(values))
	}
	return nil
}
