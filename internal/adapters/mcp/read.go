package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"binder/internal/application/commands"
	"binder/internal/ports"
)

// RegisterReadTools adds all read-only binder tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.BinderStore, root string) {
	s.AddTool(listTool(), listHandler(store, root))
	s.AddTool(notesTool(), notesHandler(store, root))
	s.AddTool(composeTool(), composeHandler(store, root))
	s.AddTool(pathTool(), pathHandler(store, root))
	s.AddTool(tagsTool(), tagsHandler(store, root))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the binder structure in reading order. Each line carries a status glyph: '?' missing backing file, '≡' has notes."),
		mcp.WithString("tag",
			mcp.Description("Narrow the listing to items carrying this tag. Omit for all items."),
		),
	)
}

func listHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListCommand(store, root)
		cmd.Tag = req.GetString("tag", "")

		listing, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(listing.Lines) == 0 {
			return mcp.NewToolResultText("Binder is empty."), nil
		}

		var sb strings.Builder
		for _, line := range listing.Lines {
			fmt.Fprintf(&sb, "%s %s\n", line.Status.Glyph(), line.ID)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- notes ---

func notesTool() mcp.Tool {
	return mcp.NewTool("notes",
		mcp.WithDescription("Read the notes field of a binder item."),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
	)
}

func notesHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		notes, err := commands.NewNotesShowCommand(store, root, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if notes == "" {
			return mcp.NewToolResultText("No notes."), nil
		}
		return mcp.NewToolResultText(notes), nil
	}
}

// --- compose ---

func composeTool() mcp.Tool {
	return mcp.NewTool("compose",
		mcp.WithDescription("Concatenate the content of the given items, in order, into one text. Aborts on the first unreadable file."),
		mcp.WithString("ids",
			mcp.Description("Comma-separated item ids, in the desired order"),
			mcp.Required(),
		),
		mcp.WithString("separator",
			mcp.Description("Separator appended after each file (default: blank line)"),
		),
	)
}

func composeHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := req.GetString("ids", "")
		if raw == "" {
			return toolError(fmt.Errorf("ids is required"))
		}
		var ids []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		sep := req.GetString("separator", commands.DefaultSeparator)

		text, err := commands.NewComposeCommand(store, root, ids, sep).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- path ---

func pathTool() mcp.Tool {
	return mcp.NewTool("path",
		mcp.WithDescription("Get the filesystem path of an item's backing file."),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
	)
}

func pathHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		path, err := commands.NewPathCommand(store, root, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(path), nil
	}
}

// --- tags ---

func tagsTool() mcp.Tool {
	return mcp.NewTool("tags",
		mcp.WithDescription("List every tag in use across the binder."),
	)
}

func tagsHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tags, err := commands.NewTagListCommand(store, root).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(tags) == 0 {
			return mcp.NewToolResultText("No tags."), nil
		}
		return mcp.NewToolResultText(strings.Join(tags, "\n")), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
