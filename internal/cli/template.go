package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplateCmd(global *globalOptions) *cobra.Command {
	var entity, outDir string

	cmd := &cobra.Command{
		Use:     "template",
		Short:   "Write the import template workbook for an entity",
		Example: `  smartwork template --entity clients --out ./templates`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := newOffline(global)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			name, err := o.services.Imports.Template(entity, &buf)
			if err != nil {
				return err
			}
			path, err := writeFile(outDir, name, buf.Bytes())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&entity, "entity", "e", "", "Entity: employees, clients, products or tasks (required)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	_ = cmd.MarkFlagRequired("entity")

	return cmd
}
