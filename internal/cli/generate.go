package cli

import (
	"strings"

	"dreamhouse/internal/domain"
	"dreamhouse/internal/layout"
	"dreamhouse/internal/prompt"
	"dreamhouse/internal/service"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		name   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate [prompt...]",
		Short: "Interpret a prompt and print the layout without a server",
		Example: `  dreamhouse generate 3BHK modern house with balcony and parking
  dreamhouse generate --name "Lake House" --output json "2 bedroom cottage with garden"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs := prompt.Interpret(strings.Join(args, " "))
			res := service.GenerateResult{
				Layout: layout.Synthesize(attrs, name),
				Parsed: attrs,
			}
			return printResult(cmd.OutOrStdout(), output, res)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", domain.DefaultDesignName, "Project name")
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "Output format: yaml or json")

	return cmd
}
