package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/frahmantamala/cashbook-management/internal/report"
	"github.com/spf13/cobra"
)

var (
	exportFormat   string
	exportOut      string
	exportUsername string
	importFile     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as a PDF report or spreadsheet",
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := initializeDependencies()
		if err != nil {
			log.Fatalf("failed to initialize dependencies: %v", err)
		}
		defer deps.Close()

		actor, err := deps.Users.GetByUsername(exportUsername)
		if err != nil {
			log.Fatalf("unknown user %q: %v", exportUsername, err)
		}

		out := exportOut
		if out == "" {
			stamp := time.Now().Format("20060102_150405")
			out = filepath.Join(deps.Config.Report.OutputDir, fmt.Sprintf("financial_report_%s.%s", stamp, exportFormat))
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			log.Fatalf("failed to create output folder: %v", err)
		}

		f, err := os.Create(out)
		if err != nil {
			log.Fatalf("failed to create output file: %v", err)
		}
		defer f.Close()

		switch exportFormat {
		case "pdf":
			exporter := report.NewPDFExporter(deps.Movements, deps.Balances, deps.Obligations, deps.Logger)
			err = exporter.Write(f, actor)
		case "xlsx":
			exporter := report.NewSpreadsheetExporter(deps.Movements, deps.Logger)
			err = exporter.Write(f)
		default:
			log.Fatalf("unknown format %q, want pdf or xlsx", exportFormat)
		}
		if err != nil {
			log.Fatalf("export failed: %v", err)
		}

		fmt.Printf("Report written: %s\n", out)
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import movements from a previously exported spreadsheet",
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := initializeDependencies()
		if err != nil {
			log.Fatalf("failed to initialize dependencies: %v", err)
		}
		defer deps.Close()

		f, err := os.Open(importFile)
		if err != nil {
			log.Fatalf("failed to open %q: %v", importFile, err)
		}
		defer f.Close()

		importer := report.NewSpreadsheetImporter(deps.Users, deps.Movements, deps.Logger)
		inserted, skipped, err := importer.Read(f)
		if err != nil {
			log.Fatalf("import failed: %v", err)
		}

		fmt.Printf("Imported %d movements, skipped %d rows\n", inserted, skipped)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "output format: pdf or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (defaults into the report output dir)")
	exportCmd.Flags().StringVar(&exportUsername, "user", "", "acting username printed on the report")
	_ = exportCmd.MarkFlagRequired("user")

	importCmd.Flags().StringVar(&importFile, "file", "", "spreadsheet to import")
	_ = importCmd.MarkFlagRequired("file")
}
