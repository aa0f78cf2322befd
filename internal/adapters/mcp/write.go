package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diario/internal/application"
	"diario/internal/application/commands"
	"diario/internal/domain"
)

// RegisterWriteTools adds all mutating journal tools to the MCP server.
// Persistence happens through the journal's change subscription; the
// handlers only dispatch commands, under the same lock as the read tools.
func RegisterWriteTools(s *server.MCPServer, journal *application.Journal) {
	s.AddTool(setFeelingTool(), locked(setFeelingHandler(journal)))
	s.AddTool(setActivityTool(), locked(setActivityHandler(journal)))
	s.AddTool(setNotesTool(), locked(setNotesHandler(journal)))
	s.AddTool(addTagTool(), locked(addTagHandler(journal)))
	s.AddTool(removeTagTool(), locked(removeTagHandler(journal)))
}

func dateArg(req mcp.CallToolRequest) string {
	return req.GetString("date", domain.TodayKey())
}

// --- set_feeling ---

func setFeelingTool() mcp.Tool {
	return mcp.NewTool("set_feeling",
		mcp.WithDescription("Record the overall feeling for a day. Level \"unset\" clears it."),
		mcp.WithString("date", mcp.Description("Day key in YYYY-MM-DD form. Defaults to today.")),
		mcp.WithString("level",
			mcp.Description("One of Very Bad, Bad, Normal, Good, Very Good, or unset"),
			mcp.Required(),
		),
	)
}

func setFeelingHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := commands.NewSetFeelingCommand(journal, dateArg(req), req.GetString("level", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s: feeling %s", day.Date, day.Feeling.Label())), nil
	}
}

// --- set_activity ---

func setActivityTool() mcp.Tool {
	return mcp.NewTool("set_activity",
		mcp.WithDescription("Record the activity level for a day. Level \"unset\" clears it."),
		mcp.WithString("date", mcp.Description("Day key in YYYY-MM-DD form. Defaults to today.")),
		mcp.WithString("level",
			mcp.Description("One of None, Low, Average, High, Very High, or unset"),
			mcp.Required(),
		),
	)
}

func setActivityHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := commands.NewSetActivityCommand(journal, dateArg(req), req.GetString("level", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s: activity %s", day.Date, day.Activity.Label())), nil
	}
}

// --- set_notes ---

func setNotesTool() mcp.Tool {
	return mcp.NewTool("set_notes",
		mcp.WithDescription("Set the freeform notes for a day. An empty string clears them."),
		mcp.WithString("date", mcp.Description("Day key in YYYY-MM-DD form. Defaults to today.")),
		mcp.WithString("text",
			mcp.Description("Notes text"),
			mcp.Required(),
		),
	)
}

func setNotesHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := commands.NewSetNotesCommand(journal, dateArg(req), req.GetString("text", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s: notes updated", day.Date)), nil
	}
}

// --- add_tag ---

func addTagTool() mcp.Tool {
	return mcp.NewTool("add_tag",
		mcp.WithDescription("Tag a day with a food or symptom by name. Reuses an existing catalog tag with the same name, otherwise creates one."),
		mcp.WithString("date", mcp.Description("Day key in YYYY-MM-DD form. Defaults to today.")),
		mcp.WithString("kind",
			mcp.Description("Tag kind: food or symptom"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Tag name, e.g. \"Iced Coffee\" or \"Headache\""),
			mcp.Required(),
		),
	)
}

func addTagHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewCreateTagCommand(
			journal, dateArg(req),
			req.GetString("kind", ""),
			req.GetString("name", ""),
		).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_tag ---

func removeTagTool() mcp.Tool {
	return mcp.NewTool("remove_tag",
		mcp.WithDescription("Remove a food or symptom tag from a day. The catalog entry itself is kept."),
		mcp.WithString("date", mcp.Description("Day key in YYYY-MM-DD form. Defaults to today.")),
		mcp.WithString("kind",
			mcp.Description("Tag kind: food or symptom"),
			mcp.Required(),
		),
		mcp.WithString("tag",
			mcp.Description("Tag name or id"),
			mcp.Required(),
		),
	)
}

func removeTagHandler(journal *application.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		err := commands.NewRemoveTagCommand(
			journal, dateArg(req),
			req.GetString("kind", ""),
			req.GetString("tag", ""),
		).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("Removed."), nil
	}
}
