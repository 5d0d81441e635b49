package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/service"
	"github.com/starford/wunjo/internal/store"
)

func testServer(t *testing.T) (*Server, *service.Service) {
	t.Helper()

	p, err := store.NewFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svc := service.New(p, nil, nil)
	return New(svc), svc
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so the tool
	// handler functions are called directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	case "create_note":
		result, err = srv.createNote(ctx, req)
	case "list_wishes":
		result, err = srv.listWishes(ctx, req)
	case "complete_wish":
		result, err = srv.completeWish(ctx, req)
	case "upcoming_events":
		result, err = srv.upcomingEvents(ctx, req)
	case "achievement_timeline":
		result, err = srv.achievementTimeline(ctx, req)
	case "dashboard_stats":
		result, err = srv.dashboardStats(ctx, req)
	case "get_scoring_guide":
		result, err = srv.getScoringGuide(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestCreateAndListNotes(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "create_note", map[string]interface{}{
		"title":    "First kiss",
		"content":  "At the lake.",
		"category": "memories",
	})
	if r.IsError {
		t.Fatalf("create failed: %s", resultText(r))
	}

	r = callTool(t, srv, "list_notes", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "First kiss") {
		t.Errorf("list missing created note: %s", text)
	}
}

func TestCreateNoteBadCategory(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "create_note", map[string]interface{}{
		"title":    "x",
		"content":  "y",
		"category": "nonsense",
	})
	if !r.IsError {
		t.Error("expected error for unknown category")
	}
}

func TestCompleteWish(t *testing.T) {
	srv, svc := testServer(t)

	wish, err := svc.CreateWish(context.Background(), models.Wish{
		Title:    "see the aurora",
		Category: models.WishPlaces,
		Priority: models.PriorityHigh,
	})
	if err != nil {
		t.Fatal(err)
	}

	r := callTool(t, srv, "complete_wish", map[string]interface{}{"id": float64(wish.ID)})
	text := resultText(r)
	if r.IsError {
		t.Fatalf("complete failed: %s", text)
	}
	if !strings.Contains(text, `"completed": true`) {
		t.Errorf("completed wish payload = %s", text)
	}

	r = callTool(t, srv, "achievement_timeline", map[string]interface{}{})
	if !strings.Contains(resultText(r), "see the aurora") {
		t.Error("completed wish missing from timeline")
	}
}

func TestCompleteWishMissing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "complete_wish", map[string]interface{}{"id": 42})
	if !r.IsError {
		t.Error("expected error for unknown wish")
	}
}

func TestDashboardStats(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "dashboard_stats", map[string]interface{}{})
	if !strings.Contains(resultText(r), `"notes": 0`) {
		t.Errorf("dashboard payload = %s", resultText(r))
	}
}

func TestScoringGuide(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_scoring_guide", map[string]interface{}{})
	if !strings.Contains(resultText(r), "Achievement Scoring") {
		t.Error("scoring guide payload unexpected")
	}
}
