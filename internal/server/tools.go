package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func intProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     1,
		"description": description,
	}
}

func colorProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"oneOf": []interface{}{
			map[string]interface{}{"type": "string"},
			map[string]interface{}{
				"type":     "array",
				"items":    map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
				"minItems": 3,
				"maxItems": 3,
			},
		},
		"description": description,
	}
}

func styleProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"solid", "dotted", "dashed", "double"},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: "grid_render",
			Description: "Generate a sheet of graph paper. Without a filename the grid is returned as a base64-encoded image; " +
				"with a filename it is written to disk with DPI metadata so it prints at the requested physical size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "Output path ending in .png or .pdf. Relative paths are resolved against the server's output directory, and the result must stay inside it. Must not be blank.",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "pdf"},
						"description": "Output format. Defaults to the filename extension, or png",
					},
					"cols":       intProp("Number of columns. Default 20"),
					"rows":       intProp("Number of rows. Default 80"),
					"width":      intProp("Cell width in unit. Default 1"),
					"height":     intProp("Cell height in unit. Default 1"),
					"resolution": intProp("Dots per unit (dots per inch for px grids). Default 72"),
					"unit": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"in", "cm", "px"},
						"description": "Unit of width and height. Default in",
					},
					"background": colorProp("Background color name, hex string or [r,g,b]. Omit or use \"none\" for transparent"),
					"style":      styleProp("Line style. Only solid lines are drawn; other styles render solid. Default solid"),
					"thickness":  intProp("Line thickness in pixels. Default 1"),
					"color":      colorProp("Line color name, hex string or [r,g,b]. Default black"),
					"major_interval": intProp(
						"Cells between major grid lines in both directions. Major grid settings are validated but not drawn"),
					"major_horizontal_interval": intProp("Cells between horizontal major lines; overrides major_interval"),
					"major_vertical_interval":   intProp("Cells between vertical major lines; overrides major_interval"),
					"major_style":               styleProp("Major line style. Defaults to style"),
					"major_thickness":           intProp("Major line thickness in pixels. Defaults to thickness"),
					"major_color":               colorProp("Major line color. Defaults to color"),
				},
			},
		},
		{
			Name:        "grid_info",
			Description: "Report the pixel size, alpha channel, DPI and file size of a grid PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the PNG file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "grid_sample_color",
			Description: "Get the exact color value at a pixel of a grid PNG, e.g. to check line or background colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the PNG file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
