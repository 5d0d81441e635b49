// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Wunjo tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/repo"
	"github.com/starford/wunjo/internal/service"
)

// Server wraps the MCP server with Wunjo tools.
type Server struct {
	mcp *server.MCPServer
	svc *service.Service
}

// New creates a new MCP server with all Wunjo tools registered.
func New(svc *service.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Wunjo",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List journal notes, newest first. Optionally filter by category or a search string."),
		mcp.WithString("category", mcp.Description("Optional category: memories, ideas or important")),
		mcp.WithString("query", mcp.Description("Optional case-insensitive search in title and content")),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a journal note. Category must be one of memories, ideas or important; "+
			"mood is one of happy, love, excited, peaceful, thoughtful and defaults to happy."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Note title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note body text")),
		mcp.WithString("category", mcp.Required(), mcp.Description("memories, ideas or important")),
		mcp.WithString("mood", mcp.Description("Optional mood")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("list_wishes",
		mcp.WithDescription("List open bucket-list wishes in authored order."),
		mcp.WithString("category", mcp.Description("Optional category: places, experiences, gifts or goals")),
	), s.listWishes)

	s.mcp.AddTool(mcp.NewTool("complete_wish",
		mcp.WithDescription("Mark a wish as completed. The wish moves to the completed collection "+
			"and starts counting toward the achievement score. See the wunjo://scoring resource."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Wish id")),
	), s.completeWish)

	s.mcp.AddTool(mcp.NewTool("upcoming_events",
		mcp.WithDescription("List events scheduled from today on, soonest first. When nothing is "+
			"upcoming, the five most recent past events are returned instead."),
	), s.upcomingEvents)

	s.mcp.AddTool(mcp.NewTool("achievement_timeline",
		mcp.WithDescription("The unified achievement timeline: completed wishes, past events and "+
			"finished trips, most recent first, each with its score."),
	), s.achievementTimeline)

	s.mcp.AddTool(mcp.NewTool("dashboard_stats",
		mcp.WithDescription("Collection counts plus trip and photo totals."),
	), s.dashboardStats)

	s.mcp.AddTool(mcp.NewTool("get_scoring_guide",
		mcp.WithDescription("Returns the achievement scoring rules. Call this before reporting "+
			"scores so the numbers are explained correctly."),
	), s.getScoringGuide)

	// Resource: achievement scoring rules.
	s.mcp.AddResource(
		mcp.NewResource("wunjo://scoring", "Achievement Scoring",
			mcp.WithResourceDescription("How achievement scores are assigned to wishes, events and trips."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readScoringResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) *mcp.CallToolResult {
	out, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(out))
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := repo.Filter{}
	if c, err := req.RequireString("category"); err == nil {
		f.Category = c
	}
	if q, err := req.RequireString("query"); err == nil {
		f.Query = q
	}
	return jsonResult(s.svc.ListNotes(ctx, f)), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !models.NoteCategory(category).Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category: %s", category)), nil
	}
	mood := ""
	if m, merr := req.RequireString("mood"); merr == nil {
		mood = m
	}

	note, err := s.svc.CreateNote(ctx, models.Note{
		Title:    title,
		Content:  content,
		Category: models.NoteCategory(category),
		Mood:     models.Mood(mood),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(note), nil
}

func (s *Server) listWishes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := repo.Filter{}
	if c, err := req.RequireString("category"); err == nil {
		f.Category = c
	}
	return jsonResult(s.svc.ListWishes(ctx, f)), nil
}

func (s *Server) completeWish(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	done, err := s.svc.CompleteWish(ctx, int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("wish not found: %d", id)), nil
	}
	return jsonResult(done), nil
}

func (s *Server) upcomingEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.UpcomingEvents(ctx)), nil
}

func (s *Server) achievementTimeline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.AchievementTimeline(ctx)), nil
}

func (s *Server) dashboardStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.Dashboard(ctx)), nil
}

func (s *Server) getScoringGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ScoringGuide), nil
}

func (s *Server) readScoringResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "wunjo://scoring",
			MIMEType: "text/markdown",
			Text:     ScoringGuide,
		},
	}, nil
}
