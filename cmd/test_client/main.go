package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx := context.Background()

	endpoint := "http://localhost:8080/mcp/stream"
	if v := os.Getenv("MCP_ENDPOINT"); v != "" {
		endpoint = v
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobboard-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)

	browseID := testBrowseOpen(ctx, session)
	if browseID == "" {
		log.Fatal("browse_open returned no session id")
	}

	testFacets(ctx, session, browseID)
	testSearch(ctx, session, browseID)
	testPaging(ctx, session, browseID)

	call(ctx, session, "browse_close", map[string]any{"session_id": browseID})

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

func testBrowseOpen(ctx context.Context, session *mcp.ClientSession) string {
	fmt.Println("\nTEST: browse_open")

	result := call(ctx, session, "browse_open", map[string]any{})
	if result == nil {
		return ""
	}

	var page struct {
		SessionID string `json:"session_id"`
	}
	if err := decodeStructured(result, &page); err != nil {
		log.Printf("browse_open: %v", err)
		return ""
	}
	return page.SessionID
}

func testFacets(ctx context.Context, session *mcp.ClientSession, id string) {
	fmt.Println("\nTEST: facets")

	call(ctx, session, "browse_facet_options", map[string]any{
		"session_id": id,
		"category":   "technologies",
	})
	call(ctx, session, "browse_facet_apply", map[string]any{
		"session_id": id,
		"category":   "locations",
		"values":     []string{"Madrid"},
	})
	call(ctx, session, "browse_facet_clear", map[string]any{
		"session_id": id,
		"category":   "locations",
	})
}

func testSearch(ctx context.Context, session *mcp.ClientSession, id string) {
	fmt.Println("\nTEST: browse_search")

	call(ctx, session, "browse_search", map[string]any{"session_id": id, "query": "developer"})
	call(ctx, session, "browse_reset", map[string]any{"session_id": id})
}

func testPaging(ctx context.Context, session *mcp.ClientSession, id string) {
	fmt.Println("\nTEST: browse_page")

	call(ctx, session, "browse_page", map[string]any{"session_id": id, "page": 2})
	// out of range: the page stays put
	call(ctx, session, "browse_page", map[string]any{"session_id": id, "page": 99})
}

func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return nil
	}
	printResult(result)
	if result.IsError {
		log.Printf("%s returned an error result", name)
		return nil
	}
	return result
}

func decodeStructured(res *mcp.CallToolResult, out any) error {
	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		return fmt.Errorf("encode structured content: %w", err)
	}
	return json.Unmarshal(raw, out)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
