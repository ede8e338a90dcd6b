package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/importers"
	"github.com/smartwork/dashboard/internal/store"
)

// ImportService opens one import session per workspace and entity. Confirmed
// records are appended to the workspace collection with fresh ids.
type ImportService struct {
	deps      Deps
	opts      importers.Options
	sessions  map[string]func(ws *store.Workspace) importers.Importer
	templates map[string]template
}

type template struct {
	name    string
	columns []importers.Column
}

func NewImportService(previewRows int, deps Deps) *ImportService {
	deps = deps.withDefaults()
	s := &ImportService{
		deps: deps,
		opts: importers.Options{PreviewRows: previewRows, Logger: deps.Logger.Named("importers")},
	}
	s.sessions = map[string]func(ws *store.Workspace) importers.Importer{
		importers.EmployeeDefinition.Kind: func(ws *store.Workspace) importers.Importer {
			return importers.NewSession(importers.EmployeeDefinition, merge(ws.Employees), s.opts)
		},
		importers.ClientDefinition.Kind: func(ws *store.Workspace) importers.Importer {
			return importers.NewSession(importers.ClientDefinition, merge(ws.Clients), s.opts)
		},
		importers.ProductDefinition.Kind: func(ws *store.Workspace) importers.Importer {
			return importers.NewSession(importers.ProductDefinition, merge(ws.Products), s.opts)
		},
		importers.TaskDefinition.Kind: func(ws *store.Workspace) importers.Importer {
			return importers.NewSession(importers.TaskDefinition, func(ctx context.Context, tasks []entities.Task) error {
				today := deps.today()
				for i := range tasks {
					if tasks[i].CreatedAt == "" {
						tasks[i].CreatedAt = today
					}
				}
				return merge(ws.Tasks)(ctx, tasks)
			}, s.opts)
		},
	}
	s.templates = map[string]template{
		importers.EmployeeDefinition.Kind: {importers.EmployeeDefinition.TemplateName, importers.EmployeeDefinition.Columns},
		importers.ClientDefinition.Kind:   {importers.ClientDefinition.TemplateName, importers.ClientDefinition.Columns},
		importers.ProductDefinition.Kind:  {importers.ProductDefinition.TemplateName, importers.ProductDefinition.Columns},
		importers.TaskDefinition.Kind:     {importers.TaskDefinition.TemplateName, importers.TaskDefinition.Columns},
	}
	return s
}

func merge[T any, P store.Record[T]](c *store.Collection[T, P]) importers.ImportFunc[T] {
	return func(ctx context.Context, records []T) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.InsertAll(records)
		return nil
	}
}

// Kinds lists the importable entities, sorted.
func (s *ImportService) Kinds() []string {
	kinds := make([]string, 0, len(s.sessions))
	for k := range s.sessions {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Session returns the workspace's import session for kind.
func (s *ImportService) Session(ws *store.Workspace, kind string) (importers.Importer, error) {
	create, ok := s.sessions[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, kind)
	}
	return ws.Importer(kind, func() importers.Importer { return create(ws) }), nil
}

func (s *ImportService) Select(ctx context.Context, ws *store.Workspace, kind string, src importers.Source) (importers.Preview, error) {
	imp, err := s.Session(ws, kind)
	if err != nil {
		return importers.Preview{}, err
	}
	return imp.Select(ctx, src)
}

func (s *ImportService) Current(ws *store.Workspace, kind string) (importers.Preview, error) {
	imp, err := s.Session(ws, kind)
	if err != nil {
		return importers.Preview{}, err
	}
	return imp.Current(), nil
}

// Confirm imports the previewed file and journals the outcome. Misuse
// errors (nothing selected, blocked preview) are not journaled.
func (s *ImportService) Confirm(ctx context.Context, ws *store.Workspace, kind string) (importers.Summary, error) {
	imp, err := s.Session(ws, kind)
	if err != nil {
		return importers.Summary{}, err
	}
	fileName := imp.Current().FileName

	summary, err := imp.Confirm(ctx)
	switch {
	case err == nil:
		s.deps.Journal.LogImport(ws.ID, kind, summary, nil)
	case isImportError(err):
		s.deps.Journal.LogImport(ws.ID, kind, importers.Summary{Kind: kind, FileName: fileName}, err)
	}
	return summary, err
}

func (s *ImportService) Cancel(ws *store.Workspace, kind string) error {
	imp, err := s.Session(ws, kind)
	if err != nil {
		return err
	}
	imp.Cancel()
	return nil
}

// Template writes the template workbook of kind and returns its file name.
func (s *ImportService) Template(kind string, w io.Writer) (string, error) {
	t, ok := s.templates[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntity, kind)
	}
	if err := importers.WriteTemplate(w, t.columns); err != nil {
		return "", err
	}
	return importers.TemplateFileName(t.name), nil
}

func isImportError(err error) bool {
	var ierr *importers.ImportError
	return errors.As(err, &ierr)
}
