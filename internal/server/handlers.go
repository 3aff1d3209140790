package server

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gradient-tools/internal/gradient"
	"github.com/ironsheep/gradient-tools/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "gradient_find").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.WithFields(logrus.Fields{"tool": params.Name}).WithError(err).Info("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/gradient function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_evict":
		return s.handleImageEvict(args)

	// Gradient Operations
	case "gradient_find":
		return s.handleGradientFind(args)
	case "gradient_verify":
		return s.handleGradientVerify(args)
	case "gradient_render":
		return s.handleGradientRender(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type evictResult struct {
	Path    string `json:"path"`
	Evicted bool   `json:"evicted"`
}

func (s *Server) handleImageEvict(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)
	return &evictResult{Path: a.Path, Evicted: true}, nil
}

// === Gradient Handlers ===

type gradientArgs struct {
	Path       string `json:"path"`
	Horizontal bool   `json:"horizontal"`
	Tolerance  *int   `json:"tolerance"`
}

// finder builds a Finder for the call, falling back to the server default
// when no tolerance is given.
func (s *Server) finder(a *gradientArgs) (*gradient.Finder, error) {
	cfg := gradient.DefaultConfig()
	cfg.Tolerance = s.defaultTolerance
	if a.Horizontal {
		cfg.Orientation = gradient.Horizontal
	}
	if a.Tolerance != nil {
		tol, err := gradient.ToleranceFromInt(*a.Tolerance)
		if err != nil {
			return nil, err
		}
		cfg.Tolerance = tol
	}
	cfg.Logger = s.log.WithFields(logrus.Fields{
		"path":        a.Path,
		"orientation": cfg.Orientation.String(),
		"tolerance":   cfg.Tolerance,
	})
	return gradient.New(cfg)
}

// findStops decodes the image behind a and runs detection on it.
func (s *Server) findStops(a *gradientArgs) (*gradient.Finder, []gradient.Stop, error) {
	f, err := s.finder(a)
	if err != nil {
		return nil, nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, nil, err
	}
	stops, err := f.Find(img)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", a.Path, err)
	}
	return f, stops, nil
}

// GradientResult is the result of gradient_find.
type GradientResult struct {
	Path        string              `json:"path"`
	Orientation string              `json:"orientation"`
	Tolerance   uint8               `json:"tolerance"`
	Count       int                 `json:"count"`
	Stops       []gradient.JSONStop `json:"stops"`
	Lines       []string            `json:"lines"`
	CSS         string              `json:"css"`
}

func (s *Server) handleGradientFind(args json.RawMessage) (interface{}, error) {
	var a gradientArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, stops, err := s.findStops(&a)
	if err != nil {
		return nil, err
	}

	cfg := f.Config()
	lines := make([]string, len(stops))
	for i, st := range stops {
		lines[i] = gradient.FormatLine(st)
	}
	return &GradientResult{
		Path:        a.Path,
		Orientation: cfg.Orientation.String(),
		Tolerance:   cfg.Tolerance,
		Count:       len(stops),
		Stops:       gradient.ToJSON(stops),
		Lines:       lines,
		CSS:         gradient.CSS(stops, cfg.Orientation),
	}, nil
}

// VerifyResult is the result of gradient_verify.
type VerifyResult struct {
	Path     string              `json:"path"`
	Stops    []gradient.JSONStop `json:"stops"`
	Fidelity *gradient.Fidelity  `json:"fidelity"`
}

func (s *Server) handleGradientVerify(args json.RawMessage) (interface{}, error) {
	var a gradientArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, stops, err := s.findStops(&a)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	fid, err := f.Verify(img, stops)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Path: a.Path, Stops: gradient.ToJSON(stops), Fidelity: fid}, nil
}

type gradientRenderArgs struct {
	gradientArgs
	Output string `json:"output"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// RenderResult is the result of gradient_render.
type RenderResult struct {
	Output string `json:"output"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Count  int    `json:"count"`
}

func (s *Server) handleGradientRender(args json.RawMessage) (interface{}, error) {
	var a gradientRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return nil, fmt.Errorf("%w: output path is required", gradient.ErrInvalidConfiguration)
	}
	f, stops, err := s.findStops(&a.gradientArgs)
	if err != nil {
		return nil, err
	}

	// Default to the source dimensions.
	if a.Width == 0 || a.Height == 0 {
		dims, err := imaging.GetDimensions(s.cache, a.Path)
		if err != nil {
			return nil, err
		}
		if a.Width == 0 {
			a.Width = dims.Width
		}
		if a.Height == 0 {
			a.Height = dims.Height
		}
	}

	img, err := gradient.Render(stops, a.Width, a.Height, f.Config().Orientation)
	if err != nil {
		return nil, err
	}
	if err := imaging.Save(a.Output, img); err != nil {
		return nil, err
	}
	return &RenderResult{Output: a.Output, Width: a.Width, Height: a.Height, Count: len(stops)}, nil
}
