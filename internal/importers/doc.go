// Package importers provides the tabular import pipeline shared by employees,
// clients, products and tasks.
//
// # Architecture
//
// An import follows a two-step flow driven by a Session:
//
//	Select: bytes → Decode → Sheet → Validate → Preview (first N rows, errors)
//	Confirm: re-Decode → NormalizeRow → RowParser → records → ImportFunc
//
// Decode reads the first sheet of an xlsx, xls or csv file into header-keyed
// rows. Validate checks the header row against the Definition's required
// columns; a missing column blocks confirmation but not the preview. Rows the
// parser rejects are skipped and reported on the Summary with their line.
//
// # Adding a New Importable Type
//
//  1. Create a new file: suppliers.go
//
//  2. Declare the columns in the order the template should show them:
//
//     var supplierColumns = []Column{
//     {Key: "name", Label: "Nom", Required: true},
//     {Key: "phone", Label: "Téléphone"},
//     }
//
//  3. Write the parser over normalized keys, listing accepted synonyms:
//
//     func parseSupplier(r Row) Outcome[entities.Supplier] {
//     s := entities.Supplier{Name: r.Text("nom", "name")}
//     if s.Name == "" {
//     return Reject[entities.Supplier]("name is required")
//     }
//     return Accept(s)
//     }
//
//  4. Bind a Definition to a Session whose ImportFunc merges the records:
//
//     session := importers.NewSession(SupplierDefinition, onImport, opts)
//
// # Existing Definitions
//
//   - EmployeeDefinition
//   - ClientDefinition
//   - ProductDefinition
//   - TaskDefinition
package importers
