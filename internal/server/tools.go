package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// gradientProperties are the arguments shared by every gradient tool.
func gradientProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"horizontal": map[string]interface{}{
			"type":        "boolean",
			"description": "The gradient runs left to right instead of top to bottom (default: false)",
			"default":     false,
		},
		"tolerance": map[string]interface{}{
			"type":        "integer",
			"description": "Per-channel tolerance, 0 to 255. Higher values produce fewer stops (default: 5)",
			"minimum":     0,
			"maximum":     255,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	renderProps := gradientProperties()
	renderProps["output"] = map[string]interface{}{
		"type":        "string",
		"description": "File to write. The extension selects PNG, JPEG or BMP",
	}
	renderProps["width"] = map[string]interface{}{
		"type":        "integer",
		"description": "Width of the rendered image (default: source width)",
	}
	renderProps["height"] = map[string]interface{}{
		"type":        "integer",
		"description": "Height of the rendered image (default: source height)",
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a specific pixel as hex, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_evict",
			Description: "Drop a cached image so the next call decodes the file again. Use after the file has changed on disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Gradient Operations
		{
			Name:        "gradient_find",
			Description: "Recover the color stops of a linear gradient image. Returns each stop's position as a percentage with its RGBA color, plus a CSS linear-gradient expression.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": gradientProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "gradient_verify",
			Description: "Find the stops of a gradient image, re-render them along the scan line and report the largest and mean per-channel deviation from the source pixels.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": gradientProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "gradient_render",
			Description: "Find the stops of a gradient image and write an image that draws them, for visual comparison with the source.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": renderProps,
				"required":   []string{"path", "output"},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
