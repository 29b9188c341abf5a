package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"binder/internal/adapters/descriptor"
	mcpadapter "binder/internal/adapters/mcp"
	"binder/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.Root(), "project directory to search from")
	flag.Parse()

	store := descriptor.NewStore(config.DescriptorName(), descriptor.AutoConfirm{})

	root, err := store.Locate(*rootFlag)
	if err != nil {
		log.Fatalf("binder-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"binder-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, root)
	mcpadapter.RegisterWriteTools(mcpServer, store, root)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("binder-mcp: %v", err)
	}
}
