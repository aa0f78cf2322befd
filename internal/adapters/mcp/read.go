package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diario/internal/application"
	"diario/internal/application/commands"
	"diario/internal/domain"
)

// The stdio server dispatches tool calls on a worker pool, but the
// journal (selector caches included) is single-threaded. One mutex
// serializes every handler, reads and writes alike.
var journalMu sync.Mutex

func locked(h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		journalMu.Lock()
		defer journalMu.Unlock()
		return h(ctx, req)
	}
}

// RegisterReadTools adds all read-only journal tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, journal *application.Journal) {
	s.AddTool(getDayTool(), locked(getDayHandler(journal)))
	s.AddTool(listTagsTool(), locked(listTagsHandler(journal)))
	s.AddTool(searchTagsTool(), locked(searchTagsHandler(journal)))
	s.AddTool(feelingSeriesTool(), locked(feelingSeriesHandler(journal)))
	s.AddTool(cooccurrenceTool(), locked(cooccurrenceHandler(journal)))
	s.AddTool(exportCSVTool(), locked(exportCSVHandler(journal)))
}

// --- get_day ---

func getDayTool() mcp.Tool {
	return mcp.NewTool("get_day",
		mcp.WithDescription("Read one day's journal entry: feeling, activity, notes, and tags. Unknown dates return an empty entry."),
		mcp.WithString("date",
			mcp.Description("Day key in YYYY-MM-DD form. Defaults to today."),
		),
	)
}

func getDayHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", domain.TodayKey())
		day := journal.SelectDayLog(date)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s\n", domain.FormatDisplayDate(day.Date))
		fmt.Fprintf(&sb, "Feeling: %s\n", day.Feeling.Label())
		fmt.Fprintf(&sb, "Activity: %s\n", day.Activity.Label())
		fmt.Fprintf(&sb, "Foods: %s\n", tagNames(journal.SelectDayItems(date, domain.KindFood)))
		fmt.Fprintf(&sb, "Symptoms: %s\n", tagNames(journal.SelectDayItems(date, domain.KindSymptom)))
		if day.Notes != nil {
			fmt.Fprintf(&sb, "Notes: %s\n", *day.Notes)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_tags ---

func listTagsTool() mcp.Tool {
	return mcp.NewTool("list_tags",
		mcp.WithDescription("List catalog tags of one kind, in creation order."),
		mcp.WithString("kind",
			mcp.Description("Tag kind: food or symptom"),
			mcp.Required(),
		),
	)
}

func listTagsHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, ok := domain.ParseItemKind(req.GetString("kind", ""))
		if !ok {
			return toolError(fmt.Errorf("kind must be food or symptom"))
		}
		items := journal.SelectCatalogByKind(kind)
		if len(items) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No %s tags yet.", kind)), nil
		}

		var sb strings.Builder
		for _, item := range items {
			fmt.Fprintf(&sb, "%s  %s\n", item.ID, item.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search_tags ---

func searchTagsTool() mcp.Tool {
	return mcp.NewTool("search_tags",
		mcp.WithDescription("Search catalog tags by name, ranked the way the tag picker ranks them: prefix matches first, then substring matches."),
		mcp.WithString("kind",
			mcp.Description("Tag kind: food or symptom"),
			mcp.Required(),
		),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchTagsHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, ok := domain.ParseItemKind(req.GetString("kind", ""))
		if !ok {
			return toolError(fmt.Errorf("kind must be food or symptom"))
		}
		query := req.GetString("query", "")

		matches := domain.SortMatches(journal.SelectCatalogByKind(kind), query)
		if len(matches) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, item := range matches {
			fmt.Fprintf(&sb, "%s  %s\n", item.ID, item.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- feeling_series ---

func feelingSeriesTool() mcp.Tool {
	return mcp.NewTool("feeling_series",
		mcp.WithDescription("The feeling-score time series (1=Very Bad .. 5=Very Good), one point per day with a recorded feeling, sorted by date."),
		mcp.WithString("activity",
			mcp.Description("Optional activity-level filter (None, Low, Average, High, Very High)"),
		),
	)
}

func feelingSeriesHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		activity, ok := domain.ParseActivity(req.GetString("activity", ""))
		if !ok {
			return toolError(fmt.Errorf("unknown activity level"))
		}
		series, err := commands.NewFeelingSeriesCommand(journal, domain.TrendFilter{Activity: activity}).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(series) == 0 {
			return mcp.NewToolResultText("No days with a recorded feeling."), nil
		}

		var sb strings.Builder
		for _, p := range series {
			fmt.Fprintf(&sb, "%s  %d\n", p.Date, p.Score)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- cooccurrence ---

func cooccurrenceTool() mcp.Tool {
	return mcp.NewTool("cooccurrence",
		mcp.WithDescription("For a chosen food, count the days each symptom was logged together with it."),
		mcp.WithString("food",
			mcp.Description("Food tag name or id"),
			mcp.Required(),
		),
		mcp.WithString("activity",
			mcp.Description("Optional activity-level filter"),
		),
	)
}

func cooccurrenceHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		counts, err := commands.NewCooccurrenceCommand(
			journal,
			req.GetString("food", ""),
			req.GetString("activity", ""),
		).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(counts) == 0 {
			return mcp.NewToolResultText("No symptom tags yet."), nil
		}

		var sb strings.Builder
		for _, c := range counts {
			fmt.Fprintf(&sb, "%s  %d\n", c.Symptom.Name, c.Days)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- export_csv ---

func exportCSVTool() mcp.Tool {
	return mcp.NewTool("export_csv",
		mcp.WithDescription("The whole journal as CSV text, one row per day."),
	)
}

func exportCSVHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		csv, err := commands.NewBuildCSVCommand(journal).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(csv), nil
	}
}

// --- helpers ---

func tagNames(items []domain.CatalogItem) string {
	if len(items) == 0 {
		return "(none)"
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return strings.Join(names, ", ")
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
