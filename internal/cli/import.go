package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartwork/dashboard/internal/importers"
	"github.com/smartwork/dashboard/internal/store"
)

// ErrImportAborted is returned when the user declines the confirmation prompt.
var ErrImportAborted = errors.New("import aborted")

type importOptions struct {
	entity string
	file   string
	yes    bool
}

func newImportCmd(global *globalOptions) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Preview a spreadsheet and import it into a demo workspace",
		Long: `Reads an .xlsx, .xls or .csv file, prints the column check and the first
rows, then asks for confirmation before importing. Rows that fail validation
are skipped and listed with their spreadsheet line number.`,
		Example: `  smartwork import --entity products --file stock.xlsx
  smartwork import --entity employees --file personnel.csv --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := newOffline(global)
			if err != nil {
				return err
			}
			ws := o.workspace(true)
			_, err = runImport(cmd, o, ws, opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.entity, "entity", "e", "", "Entity to import: employees, clients, products or tasks (required)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Spreadsheet to import (required)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Import without asking for confirmation")

	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(cmd *cobra.Command, o *offline, ws *store.Workspace, opts importOptions) (importers.Summary, error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	preview, err := o.services.Imports.Select(ctx, ws, opts.entity, importers.FileSource{Path: opts.file})
	if err != nil {
		return importers.Summary{}, err
	}
	printPreview(out, preview)

	if !preview.CanConfirm {
		_ = o.services.Imports.Cancel(ws, opts.entity)
		return importers.Summary{}, importers.ErrConfirmBlocked
	}

	if !opts.yes {
		ok, err := confirm(cmd.InOrStdin(), out, fmt.Sprintf("Import %d rows into %s? [y/N] ", preview.TotalRows, opts.entity))
		if err != nil {
			return importers.Summary{}, err
		}
		if !ok {
			_ = o.services.Imports.Cancel(ws, opts.entity)
			fmt.Fprintln(out, "Import cancelled.")
			return importers.Summary{}, ErrImportAborted
		}
	}

	summary, err := o.services.Imports.Confirm(ctx, ws, opts.entity)
	if err != nil {
		return importers.Summary{}, err
	}
	printSummary(out, summary)
	return summary, nil
}

func printPreview(w io.Writer, p importers.Preview) {
	fmt.Fprintf(w, "File: %s (%d rows)\n", p.FileName, p.TotalRows)
	for _, e := range p.Errors {
		fmt.Fprintf(w, "  ! %s\n", e)
	}
	if len(p.Rows) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(p.Headers, "\t"))
	for _, row := range p.Rows {
		cells := make([]string, len(p.Headers))
		for i, h := range p.Headers {
			cells[i] = row[h]
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
	if more := p.TotalRows - len(p.Rows); more > 0 {
		fmt.Fprintf(w, "... and %d more rows\n", more)
	}
}

func printSummary(w io.Writer, s importers.Summary) {
	fmt.Fprintf(w, "Imported %d of %d rows into %s\n", s.Imported, s.Total, s.Kind)
	if s.RejectedCount == 0 {
		return
	}
	fmt.Fprintf(w, "Rejected %d rows:\n", s.RejectedCount)
	for _, r := range s.Rejected {
		fmt.Fprintf(w, "  line %d: %s\n", r.Line, r.Reason)
	}
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "o", "oui":
		return true, nil
	}
	return false, nil
}
