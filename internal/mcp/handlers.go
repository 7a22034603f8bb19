package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/avatars/internal/avatars"
	"github.com/ziadkadry99/avatars/internal/templates"
)

// handleRenderAvatar recolors a template and returns the SVG document.
func (s *Server) handleRenderAvatar(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	characterID, err := request.RequireString("character_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: character_id"), nil
	}

	q := url.Values{}
	q.Set("primary", request.GetString("primary", ""))
	q.Set("secondary", request.GetString("secondary", ""))
	palette, err := avatars.ParsePaletteQuery(q, s.svc.Defaults())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := s.svc.Render(ctx, avatars.Request{CharacterID: characterID, Palette: palette})
	if err != nil {
		return toolError(characterID, err), nil
	}

	summary := fmt.Sprintf("Rendered %s: %d element(s) recolored (primary %s, secondary %s, primaryDark %s, secondaryDark %s).",
		out.Key, out.Replacements,
		out.Palette.Primary.Hex(), out.Palette.Secondary.Hex(),
		out.Palette.PrimaryDark.Hex(), out.Palette.SecondaryDark.Hex())

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(summary),
			mcp.NewTextContent(string(out.Document)),
		},
	}, nil
}

// handleListCharacters returns one character key per line.
func (s *Server) handleListCharacters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys, err := s.svc.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing characters failed: %v", err)), nil
	}
	if len(keys) == 0 {
		return mcp.NewToolResultText("No avatar templates found. Add <character>.svg files or run `avatars import`."), nil
	}
	return mcp.NewToolResultText(strings.Join(keys, "\n")), nil
}

// handleDescribeCharacter lists the colorable regions of a template.
func (s *Server) handleDescribeCharacter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	characterID, err := request.RequireString("character_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: character_id"), nil
	}

	t, err := s.svc.Inspect(ctx, characterID)
	if err != nil {
		return toolError(characterID, err), nil
	}
	return mcp.NewToolResultText(formatTemplate(t)), nil
}

func toolError(characterID string, err error) *mcp.CallToolResult {
	if errors.Is(err, avatars.ErrTemplateNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No avatar template for %q. Use list_characters to see available characters.", characterID))
	}
	return mcp.NewToolResultError(fmt.Sprintf("failed to render avatar: %v", err))
}

func formatTemplate(t *templates.Template) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Key)
	if t.Width != "" || t.Height != "" {
		fmt.Fprintf(&b, "Size: %s x %s\n", t.Width, t.Height)
	}
	if t.ViewBox != "" {
		fmt.Fprintf(&b, "viewBox: %s\n", t.ViewBox)
	}

	if len(t.Regions) == 0 {
		b.WriteString("\nNo colorable regions.\n")
		return b.String()
	}
	b.WriteString("\n## Regions\n\n")
	for _, r := range t.Regions {
		fmt.Fprintf(&b, "- %s#%s: %s\n", r.Tag, r.ID, r.Category)
	}
	return b.String()
}
