// Command generate_demo writes sample import workbooks built from the demo
// dataset, one per importable entity, plus the matching blank templates.
// Usage: go run ./cmd/generate_demo [-out path/to/dir]
package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/config"
	"github.com/smartwork/dashboard/internal/demo"
	"github.com/smartwork/dashboard/internal/exporters"
	"github.com/smartwork/dashboard/internal/logging"
	"github.com/smartwork/dashboard/internal/messaging"
	"github.com/smartwork/dashboard/internal/services"
	"github.com/smartwork/dashboard/internal/store"
)

const defaultOutputDir = "./demo/imports"

func main() {
	outDir := flag.String("out", defaultOutputDir, "directory to write the sample workbooks to")
	flag.Parse()

	logger := logging.Must(logging.New(config.Logging{Level: "info", Format: "console"}))
	defer func() { _ = logger.Sync() }()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("Failed to create output directory", zap.Error(err))
	}

	svc := services.New(cfg, messaging.NewDispatcher(nil, logger), services.Deps{Logger: logger})
	ws := store.NewWorkspace("demo", demo.Dataset())

	// Excel exports use the import column labels, so each one is a valid
	// import file for the same entity.
	for _, kind := range svc.Imports.Kinds() {
		doc, err := svc.Exports.Export(ws, kind, exporters.FormatExcel)
		if err != nil {
			logger.Error("Failed to build sample workbook", zap.String("entity", kind), zap.Error(err))
			continue
		}
		write(logger, filepath.Join(*outDir, doc.FileName), doc.Body)
		logger.Info("Sample written", zap.String("entity", kind), zap.Int("rows", doc.Records))

		var buf bytes.Buffer
		name, err := svc.Imports.Template(kind, &buf)
		if err != nil {
			logger.Error("Failed to build template", zap.String("entity", kind), zap.Error(err))
			continue
		}
		write(logger, filepath.Join(*outDir, name), buf.Bytes())
	}

	logger.Info("Demo import files generated", zap.String("dir", *outDir))
}

func write(logger *zap.Logger, path string, body []byte) {
	if err := os.WriteFile(path, body, 0o644); err != nil {
		logger.Fatal("Failed to write file", zap.String("path", path), zap.Error(err))
	}
}
