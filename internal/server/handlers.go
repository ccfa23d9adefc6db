package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/gridpaper-mcp/internal/gridpaper"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "grid_render").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Rejected grid arguments return a JSON-RPC error with code -32602 whose data
// names the error kind and parameter; other failures use -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("%s failed: %v", params.Name, err)
		}
		return s.toolErrorResponse(req.ID, err)
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "grid_render":
		return s.handleGridRender(args)
	case "grid_info":
		return s.handleGridInfo(args)
	case "grid_sample_color":
		return s.handleGridSampleColor(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// ArgumentErrorData is the JSON-RPC error data for a rejected argument.
type ArgumentErrorData struct {
	Kind    string `json:"kind"` // "type" or "value"
	Param   string `json:"param"`
	Message string `json:"message"`
}

// toolErrorResponse maps argument errors to -32602 and everything else to
// -32000.
func (s *Server) toolErrorResponse(id interface{}, err error) *MCPResponse {
	var te *gridpaper.TypeError
	if errors.As(err, &te) {
		return s.errorResponse(id, -32602, "Invalid argument type",
			ArgumentErrorData{Kind: "type", Param: te.Param, Message: te.Error()})
	}
	var ve *gridpaper.ValueError
	if errors.As(err, &ve) {
		return s.errorResponse(id, -32602, "Invalid argument value",
			ArgumentErrorData{Kind: "value", Param: ve.Param, Message: ve.Error()})
	}
	return s.errorResponse(id, -32000, "Tool execution failed", err.Error())
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// RenderResult is returned by grid_render. Exactly one of File and Image is
// set, depending on whether a filename was given.
type RenderResult struct {
	File  *gridpaper.SaveResult `json:"file,omitempty"`
	Image *gridpaper.GridResult `json:"image,omitempty"`

	// Notes lists settings that were accepted but are not drawn.
	Notes []string `json:"notes,omitempty"`
}

func (s *Server) handleGridRender(args json.RawMessage) (interface{}, error) {
	opts, err := gridpaper.OptionsFromJSON(args)
	if err != nil {
		return nil, err
	}
	spec, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	result := &RenderResult{Notes: renderNotes(spec)}

	if spec.Filename == "" {
		img, err := gridpaper.EncodeBase64(spec)
		if err != nil {
			return nil, err
		}
		result.Image = img
		return result, nil
	}

	saved, err := gridpaper.SaveSpec(spec, s.cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	s.cache.Evict(saved.Path)
	if s.cfg.Debug {
		log.Printf("wrote %s (%dx%d px, %.2f dpi)", saved.Path, saved.Width, saved.Height, saved.DPI)
	}
	result.File = saved
	return result, nil
}

func renderNotes(spec *gridpaper.GridSpec) []string {
	var notes []string
	if spec.Style != gridpaper.Solid {
		notes = append(notes, fmt.Sprintf("%s lines are drawn solid", spec.Style))
	}
	if spec.Major.Enabled() {
		notes = append(notes, "major grid settings were validated but the major grid is not drawn")
	}
	return notes
}

type gridPathArgs struct {
	Path string `json:"path"`
}

// resolvePath applies the output directory to path, matching where
// grid_render writes, and rejects paths that leave it.
func (s *Server) resolvePath(path string) (string, error) {
	resolved, err := gridpaper.OutputPath(s.cfg.OutputDir, path)
	if err != nil {
		return "", &gridpaper.ValueError{Param: "path", Value: path, Reason: "must stay inside the output directory"}
	}
	return resolved, nil
}

func (s *Server) handleGridInfo(args json.RawMessage) (interface{}, error) {
	var a gridPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	path, err := s.resolvePath(a.Path)
	if err != nil {
		return nil, err
	}
	return gridpaper.Inspect(s.cache, path)
}

type gridSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleGridSampleColor(args json.RawMessage) (interface{}, error) {
	var a gridSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	path, err := s.resolvePath(a.Path)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return gridpaper.SampleColor(img, a.X, a.Y)
}
