package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smartwork/dashboard/internal/exporters"
)

type exportOptions struct {
	entity string
	format string
	from   string
	outDir string
}

func newExportCmd(global *globalOptions) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the demo data, or the rows of a spreadsheet, as PDF or Excel",
		Example: `  smartwork export --entity invoices --format pdf
  smartwork export --entity products --format xlsx --from stock.csv --out ./exports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := exporters.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			o, err := newOffline(global)
			if err != nil {
				return err
			}

			ws := o.workspace(opts.from == "")
			if opts.from != "" {
				if _, err := runImport(cmd, o, ws, importOptions{entity: opts.entity, file: opts.from, yes: true}); err != nil {
					return fmt.Errorf("import %s: %w", opts.from, err)
				}
			}

			doc, err := o.services.Exports.Export(ws, opts.entity, format)
			if err != nil {
				return err
			}
			path, err := writeFile(opts.outDir, doc.FileName, doc.Body)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s to %s\n", doc.Records, opts.entity, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.entity, "entity", "e", "", "Entity to export (required)")
	cmd.Flags().StringVar(&opts.format, "format", string(exporters.FormatExcel), "Output format: pdf or xlsx")
	cmd.Flags().StringVar(&opts.from, "from", "", "Import this spreadsheet into an empty workspace before exporting")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Output directory")

	_ = cmd.MarkFlagRequired("entity")

	return cmd
}

func writeFile(dir, name string, body []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
