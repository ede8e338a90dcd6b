// Package interfaces holds compile-time checks that the concrete types wired
// in entrypoint satisfy the interfaces their consumers declare.
//
// # Interface Categories
//
// ## Activity Journal
//
//   - services.Journal: import, export, edit and send events (internal/services/interfaces.go)
//   - scheduler.Journal: retention and workspace cleanup (internal/scheduler/scheduler.go)
//
// ## Infrastructure
//
//   - http.Pinger: health check of the activity database (internal/http/health.go)
//   - scheduler.Recorder: job and workspace metrics (internal/scheduler/scheduler.go)
//   - scheduler.Sweeper: overdue invoice sweep (internal/scheduler/scheduler.go)
//
// ## Workspace Store
//
//   - store.Cloner: records holding slices copy them on every read and write (internal/store/collection.go)
//
// ## Messaging
//
//   - messaging.Sender: delivers a composed message (internal/messaging/dispatcher.go)
//   - messaging.Client: WhatsApp Cloud API transport (internal/messaging/client.go)
//
// ## Import Pipeline
//
//   - importers.Source: a named file to decode (internal/importers/session.go)
//   - importers.Importer: the per-entity select/confirm/cancel state machine
//
// # Adding a New Importable Entity
//
//  1. Declare its columns and a Definition[T] with a row parser in internal/importers/
//
//     var SupplierDefinition = Definition[entities.Supplier]{
//         Kind:         "suppliers",
//         TemplateName: "fournisseurs",
//         Columns:      supplierColumns,
//         Parse:        parseSupplier,
//     }
//
//  2. Add a Collection to store.Workspace and register the importer in
//     services.NewImportService
//
//  3. Add an export Projection in internal/exporters/projections.go so the
//     entity can be exported and its sample workbook generated
//
// # Compile-Time Interface Checks
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
