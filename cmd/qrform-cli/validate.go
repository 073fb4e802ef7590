package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
)

func newValidateCmd(a *app) *cobra.Command {
	var field, value string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a single field value",
		Long: `Runs one field's validation rule and prints "ok" or the message a form
would show next to the input. Exits non-zero when the value is rejected.

Example:
  qrform validate --field tel --value "(555) 123-4567"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := a.newGenerator()
			id := model.FieldID(field)
			if err := gen.Set(id, value); err != nil {
				return err
			}

			err := gen.Validate(id)
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			if verr, ok := generator.AsValidationError(err); ok {
				fmt.Fprintln(cmd.OutOrStdout(), verr.Message)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "field identifier (name, company, tel, url, email, address, address2, memo)")
	cmd.Flags().StringVar(&value, "value", "", "value to check")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}
