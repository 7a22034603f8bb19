package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/avatars/internal/avatars"
	"github.com/ziadkadry99/avatars/internal/templates"
)

const foxSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64"><path id="body_primary" d="M0 0"/><circle id="tail_secondarydark" r="4"/></svg>`

func setupServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fox.svg"), []byte(foxSVG), 0644); err != nil {
		t.Fatal(err)
	}
	return NewServer(avatars.NewService(templates.NewDirStore(dir)))
}

func textOf(t *testing.T, result *mcp.CallToolResult, i int) string {
	t.Helper()
	if len(result.Content) <= i {
		t.Fatalf("expected at least %d content item(s), got %d", i+1, len(result.Content))
	}
	switch c := result.Content[i].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	default:
		t.Fatalf("content %d is %T, not text", i, result.Content[i])
		return ""
	}
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("boom") }
func (brokenStore) List(context.Context) ([]string, error)      { return nil, errors.New("boom") }

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"render_avatar", renderAvatarTool, "render_avatar"},
		{"list_characters", listCharactersTool, "list_characters"},
		{"describe_character", describeCharacterTool, "describe_character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	svc := avatars.NewService(templates.NewDirStore(t.TempDir()))
	srv := NewServer(svc)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.svc != svc {
		t.Error("service not set correctly")
	}
}

func TestHandleRenderAvatar(t *testing.T) {
	srv := setupServer(t)
	ctx := context.Background()

	t.Run("custom colors", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"character_id": "Fox",
			"primary":      "#112233",
			"secondary":    "445566",
		}

		result, err := srv.handleRenderAvatar(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if summary := textOf(t, result, 0); !strings.Contains(summary, "2 element(s)") {
			t.Errorf("unexpected summary %q", summary)
		}
		svg := textOf(t, result, 1)
		if !strings.Contains(svg, `style="fill: #112233"`) || !strings.Contains(svg, `style="fill: #364452"`) {
			t.Errorf("unexpected document %s", svg)
		}
	})

	t.Run("default colors", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"character_id": "fox"}

		result, err := srv.handleRenderAvatar(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if svg := textOf(t, result, 1); !strings.Contains(svg, "fill: #d4a574") {
			t.Errorf("expected default primary in %s", svg)
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"character_id": "fox", "primary": "orange"}

		result, err := srv.handleRenderAvatar(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for invalid color")
		}
	})

	t.Run("unknown character", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"character_id": "dragon"}

		result, err := srv.handleRenderAvatar(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown character")
		}
	})

	t.Run("missing character_id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleRenderAvatar(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing character_id")
		}
	})
}

func TestHandleListCharacters(t *testing.T) {
	ctx := context.Background()

	result, err := setupServer(t).handleListCharacters(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := textOf(t, result, 0); got != "fox" {
		t.Errorf("expected \"fox\", got %q", got)
	}

	empty := NewServer(avatars.NewService(templates.NewDirStore(t.TempDir())))
	result, err = empty.handleListCharacters(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Error("empty template store should not be an error")
	}

	broken := NewServer(avatars.NewService(brokenStore{}))
	result, err = broken.handleListCharacters(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error from failing store")
	}
}

func TestHandleDescribeCharacter(t *testing.T) {
	srv := setupServer(t)
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"character_id": "fox"}

	result, err := srv.handleDescribeCharacter(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := textOf(t, result, 0)
	for _, want := range []string{"# fox", "Size: 64 x 64", "- path#body_primary: primary", "- circle#tail_secondarydark: secondaryDark"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}
}
