package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"diario/internal/application"
	"diario/internal/domain"
)

// ExportCSVResult contains the result of a CSV export
type ExportCSVResult struct {
	Path string
	Rows int
}

// ExportCSVCommand renders the whole journal as CSV and writes it to a
// file. This is the core's only file-emission boundary.
type ExportCSVCommand struct {
	journal *application.Journal
	OutDir  string
}

// NewExportCSVCommand creates a new ExportCSVCommand. The file is written
// to outDir under the fixed export filename.
func NewExportCSVCommand(journal *application.Journal, outDir string) *ExportCSVCommand {
	return &ExportCSVCommand{journal: journal, OutDir: outDir}
}

// Execute runs the export command
func (c *ExportCSVCommand) Execute(ctx context.Context) (*ExportCSVResult, error) {
	days := c.journal.SelectAllDays()
	csv := domain.BuildCSV(days, c.journal.SelectCatalogItems())

	if err := os.MkdirAll(c.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(c.OutDir, domain.ExportFilename)
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		return nil, fmt.Errorf("failed to write export: %w", err)
	}
	return &ExportCSVResult{Path: path, Rows: len(days)}, nil
}

// BuildCSVCommand renders the journal as CSV text without touching the
// filesystem, for clipboard copy and MCP export.
type BuildCSVCommand struct {
	journal *application.Journal
}

// NewBuildCSVCommand creates a new BuildCSVCommand
func NewBuildCSVCommand(journal *application.Journal) *BuildCSVCommand {
	return &BuildCSVCommand{journal: journal}
}

// Execute runs the build command
func (c *BuildCSVCommand) Execute(ctx context.Context) (string, error) {
	return domain.BuildCSV(c.journal.SelectAllDays(), c.journal.SelectCatalogItems()), nil
}
