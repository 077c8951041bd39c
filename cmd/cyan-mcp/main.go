package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/mcp"
)

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func main() {
	override := ""
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "-h", "--help", "help":
			printUsage()
			os.Exit(0)
		case "-v", "--version", "version":
			fmt.Println(Version)
			os.Exit(0)
		default:
			override = os.Args[1]
		}
	}

	dir, err := core.ResolveDataDir(override)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start MCP server: %v\n", err)
		os.Exit(1)
	}

	server, err := mcp.NewServer(dir, Version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start MCP server: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 2)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		_ = server.Close()
		os.Exit(0)
	}()

	if err := server.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: cyan-mcp [data-dir]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Arguments:")
	fmt.Fprintln(os.Stderr, "  data-dir  Cyan data directory (default: $CYAN_DIR, then the configured dir)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintln(os.Stderr, "  cyan-mcp ~/.local/share/cyan")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Configure in an MCP client (e.g. claude_desktop_config.json):")
	fmt.Fprintln(os.Stderr, "  {")
	fmt.Fprintln(os.Stderr, "    \"mcpServers\": {")
	fmt.Fprintln(os.Stderr, "      \"cyan\": {")
	fmt.Fprintln(os.Stderr, "        \"command\": \"/path/to/cyan-mcp\",")
	fmt.Fprintln(os.Stderr, "        \"args\": []")
	fmt.Fprintln(os.Stderr, "      }")
	fmt.Fprintln(os.Stderr, "    }")
	fmt.Fprintln(os.Stderr, "  }")
}
