package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-qrform/pkg/mecard"
)

func newContactCmd(a *app) *cobra.Command {
	var record mecard.Contact

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Build a payload from flags",
		Long: `Builds the payload from the field flags without prompting. The first
field that fails validation is reported and nothing is printed.

Example:
  qrform contact --name "Ada Lovelace" --tel "+44 20 7946 0018"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := a.newGenerator()
			gen.Fill(record)

			text, err := gen.Text()
			if err != nil {
				return err
			}
			return a.write(cmd, []byte(text))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&record.Name, "name", "", "full name")
	flags.StringVar(&record.Company, "company", "", "company")
	flags.StringVar(&record.Tel, "tel", "", "phone number")
	flags.StringVar(&record.URL, "url", "", "website")
	flags.StringVar(&record.Email, "email", "", "email address")
	flags.StringVar(&record.Address, "address", "", "address line")
	flags.StringVar(&record.Address2, "address2", "", "second address line")
	flags.StringVar(&record.Memo, "memo", "", "memo")
	return cmd
}
