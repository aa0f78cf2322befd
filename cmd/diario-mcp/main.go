package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diario/internal/adapters/filesystem"
	mcpadapter "diario/internal/adapters/mcp"
	"diario/internal/application"
	"diario/internal/config"
)

const saveDelay = 500 * time.Millisecond

func main() {
	journalFlag := flag.String("journal", config.JournalPath(), "path to the journal directory")
	flag.Parse()

	journalDir := config.ExpandPath(*journalFlag)
	store := filesystem.NewSnapshotStore(config.SnapshotPath(journalDir))

	snap, err := store.Load()
	if err != nil {
		log.Fatalf("diario-mcp: %v", err)
	}

	journal := application.New()
	journal.Replace(snap)

	saver := filesystem.NewSaver(store, saveDelay)
	journal.OnChange(saver.Notify)
	defer saver.Flush()

	mcpServer := server.NewMCPServer(
		"diario-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, journal)
	mcpadapter.RegisterWriteTools(mcpServer, journal)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("diario-mcp: %v", err)
	}
}
