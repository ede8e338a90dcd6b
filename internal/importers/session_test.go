package importers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwork/dashboard/internal/entities"
)

// flakySource serves content once, then fails every later Open.
type flakySource struct {
	name  string
	data  []byte
	opens int
}

func (s *flakySource) Name() string { return s.name }

func (s *flakySource) Open() (io.ReadCloser, error) {
	s.opens++
	if s.opens > 1 {
		return nil, errors.New("file moved")
	}
	return io.NopCloser(strings.NewReader(string(s.data))), nil
}

func productCSV(n int) []byte {
	var b strings.Builder
	b.WriteString("Nom,SKU,Quantité,Stock Minimum\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "Produit %d,SKU-%03d,%d,5\n", i, i, i)
	}
	return []byte(b.String())
}

type recorder struct {
	calls   int
	records []entities.Product
	err     error
}

func (r *recorder) onImport(_ context.Context, records []entities.Product) error {
	r.calls++
	r.records = records
	return r.err
}

func newProductSession(rec *recorder) *Session[entities.Product] {
	return NewSession(ProductDefinition, rec.onImport, Options{})
}

func TestSession_SelectShowsBoundedPreview(t *testing.T) {
	rec := &recorder{}
	s := newProductSession(rec)

	preview, err := s.Select(context.Background(), NewBytesSource("produits.csv", productCSV(25)))
	require.NoError(t, err)

	assert.Equal(t, StatePreviewing, preview.State)
	assert.NotEmpty(t, preview.ID)
	assert.Equal(t, "produits.csv", preview.FileName)
	assert.Len(t, preview.Rows, DefaultPreviewRows)
	assert.Equal(t, 25, preview.TotalRows)
	assert.True(t, preview.CanConfirm)
	assert.Empty(t, preview.Errors)
	assert.Zero(t, rec.calls)
}

func TestSession_ConfirmImportsEveryRow(t *testing.T) {
	rec := &recorder{}
	s := newProductSession(rec)

	_, err := s.Select(context.Background(), NewBytesSource("produits.csv", productCSV(25)))
	require.NoError(t, err)

	summary, err := s.Confirm(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25, summary.Total)
	assert.Equal(t, 25, summary.Imported)
	assert.False(t, summary.FromCache)
	require.Len(t, rec.records, 25)
	assert.Equal(t, entities.StockLow, rec.records[0].Status)
	assert.Equal(t, entities.StockAvailable, rec.records[24].Status)
	assert.Equal(t, StateIdle, s.Current().State)
}

func TestSession_ConfirmFallsBackToRetainedRows(t *testing.T) {
	rec := &recorder{}
	s := newProductSession(rec)
	src := &flakySource{name: "produits.csv", data: productCSV(15)}

	_, err := s.Select(context.Background(), src)
	require.NoError(t, err)

	summary, err := s.Confirm(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.FromCache)
	assert.Equal(t, 15, summary.Imported)
	assert.Len(t, rec.records, 15)
}

func TestSession_ConfirmWithZeroValidRows(t *testing.T) {
	rec := &recorder{}
	s := newProductSession(rec)

	data := []byte("Nom,SKU\nSans référence,\n,SKU-1\n")
	_, err := s.Select(context.Background(), NewBytesSource("produits.csv", data))
	require.NoError(t, err)

	summary, err := s.Confirm(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.calls)
	assert.NotNil(t, rec.records)
	assert.Empty(t, rec.records)
	assert.Equal(t, 0, summary.Imported)
	assert.Equal(t, 2, summary.RejectedCount)
}

func TestSession_SummaryReportsRejections(t *testing.T) {
	rec := &recorder{}
	s := newProductSession(rec)

	data := []byte("Nom,SKU\nA,SKU-A\n,SKU-B\nC,SKU-C\nD,\n")
	_, err := s.Select(context.Background(), NewBytesSource("produits.csv", data))
	require.NoError(t, err)

	summary, err := s.Confirm(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, summary.Total-summary.Imported, summary.RejectedCount)
	require.Len(t, summary.Rejected, 2)
	assert.Equal(t, 3, summary.Rejected[0].Line)
	assert.Equal(t, 5, summary.Rejected[1].Line)
	assert.NotEmpty(t, summary.Rejected[0].Reason)
}

func TestSession_MissingColumnsBlockConfirm(t *testing.T) {
	rec := &recorder{}
	s := newProductSession(rec)

	preview, err := s.Select(context.Background(), NewBytesSource("produits.csv", []byte("Nom,Catégorie\nA,B\n")))
	require.NoError(t, err)

	assert.Equal(t, StatePreviewing, preview.State)
	assert.False(t, preview.CanConfirm)
	assert.Equal(t, []string{"Missing columns: SKU"}, preview.Errors)
	assert.Len(t, preview.Rows, 1)

	_, err = s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrConfirmBlocked)
	assert.Zero(t, rec.calls)
}

func TestSession_ConfirmWhileIdle(t *testing.T) {
	s := newProductSession(&recorder{})
	_, err := s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrNotPreviewing)
}

func TestSession_DecodeFailuresStayIdle(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		want error
	}{
		{name: "unreadable workbook", src: NewBytesSource("produits.xlsx", []byte("not a zip")), want: ErrDecode},
		{name: "header only", src: NewBytesSource("produits.csv", []byte("Nom,SKU\n")), want: ErrEmptySheet},
		{name: "missing file", src: FileSource{Path: "/nonexistent/produits.csv"}, want: ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newProductSession(&recorder{})

			preview, err := s.Select(context.Background(), tt.src)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, StateIdle, preview.State)
			assert.Equal(t, StateIdle, s.Current().State)
		})
	}
}

func TestSession_LastSelectionWins(t *testing.T) {
	rec := &recorder{}
	s := newProductSession(rec)

	first, err := s.Select(context.Background(), NewBytesSource("a.csv", []byte("Nom\nA\n")))
	require.NoError(t, err)
	require.False(t, first.CanConfirm)

	second, err := s.Select(context.Background(), NewBytesSource("b.csv", productCSV(3)))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "b.csv", second.FileName)
	assert.True(t, second.CanConfirm)
	assert.Empty(t, second.Errors)

	summary, err := s.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Imported)
}

func TestSession_Cancel(t *testing.T) {
	rec := &recorder{}
	s := newProductSession(rec)

	_, err := s.Select(context.Background(), NewBytesSource("produits.csv", productCSV(2)))
	require.NoError(t, err)

	s.Cancel()

	assert.Equal(t, StateIdle, s.Current().State)
	assert.Zero(t, rec.calls)
	s.Cancel()
}

func TestSession_ConfirmRevalidatesChangedFile(t *testing.T) {
	tests := []struct {
		name    string
		rewrite string
		want    error
	}{
		{name: "columns dropped", rewrite: "Nom,Quantité\nClavier,3\n"},
		{name: "rows removed", rewrite: "Nom,SKU,Quantité,Stock Minimum\n", want: ErrEmptySheet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "produits.csv")
			require.NoError(t, os.WriteFile(path, productCSV(3), 0o600))

			rec := &recorder{}
			s := newProductSession(rec)
			_, err := s.Select(context.Background(), FileSource{Path: path})
			require.NoError(t, err)

			require.NoError(t, os.WriteFile(path, []byte(tt.rewrite), 0o600))

			_, err = s.Confirm(context.Background())
			var importErr *ImportError
			require.ErrorAs(t, err, &importErr)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			} else {
				var schemaErr *SchemaError
				require.ErrorAs(t, err, &schemaErr)
				assert.Equal(t, []string{"SKU"}, schemaErr.Missing)
			}
			assert.Zero(t, rec.calls)
			assert.Equal(t, StatePreviewing, s.Current().State)
			assert.False(t, s.Current().CanConfirm)
		})
	}
}

func TestSession_ImportFailureKeepsPreview(t *testing.T) {
	rec := &recorder{err: errors.New("collection locked")}
	s := newProductSession(rec)

	_, err := s.Select(context.Background(), NewBytesSource("produits.csv", productCSV(2)))
	require.NoError(t, err)

	_, err = s.Confirm(context.Background())
	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Contains(t, err.Error(), "collection locked")

	current := s.Current()
	assert.Equal(t, StatePreviewing, current.State)
	assert.False(t, current.CanConfirm)
	require.Len(t, current.Errors, 1)

	_, err = s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrConfirmBlocked)
	assert.Equal(t, 1, rec.calls)
}

func TestSession_ParserPanicBecomesImportError(t *testing.T) {
	def := ProductDefinition
	def.Parse = func(Row) Outcome[entities.Product] { panic("boom") }

	called := false
	s := NewSession(def, func(context.Context, []entities.Product) error {
		called = true
		return nil
	}, Options{PreviewRows: 1})

	preview, err := s.Select(context.Background(), NewBytesSource("produits.csv", productCSV(3)))
	require.NoError(t, err)
	assert.Len(t, preview.Rows, 1)

	_, err = s.Confirm(context.Background())
	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.False(t, called)
	assert.Equal(t, StatePreviewing, s.Current().State)
}
