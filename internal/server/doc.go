// Package server implements the MCP (Model Context Protocol) server for gradient tools.
//
// This package provides a JSON-RPC 2.0 server that exposes gradient stop
// detection and a few supporting image queries through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//   - image_evict: Drop a cached image after the file changes
//
// Gradient Operations:
//   - gradient_find: Recover the color stops of a linear gradient
//   - gradient_verify: Report how closely the stops reproduce the image
//   - gradient_render: Write an image drawn from the recovered stops
//
// Gradient tools accept "horizontal" (default false) and "tolerance"
// (0 to 255). A missing tolerance falls back to the server default, which
// NewWithConfig takes from GRADIENT_TOLERANCE.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// Entries live until the server exits or image_evict drops them.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
