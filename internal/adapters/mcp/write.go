package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"binder/internal/application/commands"
	"binder/internal/ports"
)

// RegisterWriteTools adds all mutating binder tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.BinderStore, root string) {
	s.AddTool(addTool(), addHandler(store, root))
	s.AddTool(removeTool(), removeHandler(store, root))
	s.AddTool(moveTool(), moveHandler(store, root))
	s.AddTool(renameTool(), renameHandler(store, root))
	s.AddTool(setNotesTool(), setNotesHandler(store, root))
	s.AddTool(tagTool(), tagHandler(store, root))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Add a file to the end of the binder structure."),
		mcp.WithString("filename",
			mcp.Description("Path of the backing file, relative to the project root"),
			mcp.Required(),
		),
		mcp.WithString("id",
			mcp.Description("Item id. Defaults to the filename."),
		),
	)
}

func addHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filename := req.GetString("filename", "")
		id := req.GetString("id", "")

		result, err := commands.NewAddCommand(store, root, id, filename).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove ---

func removeTool() mcp.Tool {
	return mcp.NewTool("remove",
		mcp.WithDescription("Remove an item from the binder structure. The backing file is kept."),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
	)
}

func removeHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		msg, err := commands.NewRemoveCommand(store, root, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move an item up or down the reading order by a relative distance. Past either end the move is a no-op."),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
		mcp.WithNumber("delta",
			mcp.Description("Positions to move: negative is up, positive is down"),
			mcp.Required(),
		),
	)
}

func moveHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		delta := req.GetInt("delta", 0)

		result, err := commands.NewMoveCommand(store, root, id, delta).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Change an item's backing filename. The id stays stable."),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
		mcp.WithString("filename",
			mcp.Description("New path relative to the project root"),
			mcp.Required(),
		),
	)
}

func renameHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		filename := req.GetString("filename", "")

		msg, err := commands.NewRenameCommand(store, root, id, filename).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- set_notes ---

func setNotesTool() mcp.Tool {
	return mcp.NewTool("set_notes",
		mcp.WithDescription("Replace the notes field of an item."),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("Full notes text"),
			mcp.Required(),
		),
	)
}

func setNotesHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		text := req.GetString("text", "")

		result, err := commands.NewNotesSetCommand(store, root, id, text).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- tag ---

func tagTool() mcp.Tool {
	return mcp.NewTool("tag",
		mcp.WithDescription("Add or remove a tag on an item. Tags have set semantics."),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
		mcp.WithString("tag",
			mcp.Description("Tag name"),
			mcp.Required(),
		),
		mcp.WithString("action",
			mcp.Description("'add' (default) or 'remove'"),
		),
	)
}

func tagHandler(store ports.BinderStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		tag := req.GetString("tag", "")

		var msg string
		var err error
		switch action := req.GetString("action", "add"); action {
		case "add":
			msg, err = commands.NewTagAddCommand(store, root, id, tag).Execute(ctx)
		case "remove":
			msg, err = commands.NewTagRemoveCommand(store, root, id, tag).Execute(ctx)
		default:
			return toolError(fmt.Errorf("unknown action: %s", action))
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}
