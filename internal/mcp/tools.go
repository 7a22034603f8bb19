package mcp

import "github.com/mark3labs/mcp-go/mcp"

// renderAvatarTool defines the render_avatar MCP tool.
var renderAvatarTool = mcp.NewTool("render_avatar",
	mcp.WithDescription("Render a character avatar as SVG with the given primary and secondary colors. Shading colors are derived automatically."),
	mcp.WithString("character_id",
		mcp.Required(),
		mcp.Description("Character name, e.g. \"fox\" or \"Red Panda\""),
	),
	mcp.WithString("primary",
		mcp.Description("Primary color as 6 hex digits, with or without '#' (default from config)"),
	),
	mcp.WithString("secondary",
		mcp.Description("Secondary color as 6 hex digits, with or without '#' (default from config)"),
	),
)

// listCharactersTool defines the list_characters MCP tool.
var listCharactersTool = mcp.NewTool("list_characters",
	mcp.WithDescription("List the characters that have an avatar template."),
)

// describeCharacterTool defines the describe_character MCP tool.
var describeCharacterTool = mcp.NewTool("describe_character",
	mcp.WithDescription("Describe a character template: its size and which elements take the primary, secondary and shading colors."),
	mcp.WithString("character_id",
		mcp.Required(),
		mcp.Description("Character name"),
	),
)
