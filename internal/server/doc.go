// Package server implements the MCP (Model Context Protocol) server for the
// graph paper generator.
//
// This package provides a JSON-RPC 2.0 server that exposes grid rendering
// through the MCP protocol, so an MCP client can produce printable graph
// paper at an exact physical size.
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
//   - grid_render: Draw a grid and return it as base64, or write it to a PNG or PDF file
//   - grid_info: Report size, alpha channel and DPI of a grid PNG
//   - grid_sample_color: Get the color at a pixel of a grid PNG
//
// # Image Caching
//
// PNGs read by grid_info and grid_sample_color are cached by path. A
// grid_render call that writes a file evicts that path so later reads see
// the new grid.
//
// # Error Handling
//
// Rejected grid arguments are returned with code -32602. The error data
// carries the kind ("type" or "value"), the parameter name and the message:
//
//	{"kind": "value", "param": "cols", "message": "cols arg must be a positive, nonzero integer (got 0)"}
//
// Any other failure (unreadable file, unknown tool) uses -32000 with the Go
// error string as data.
//
// # Configuration
//
// ConfigFromEnv reads GRIDPAPER_OUTPUT_DIR and GRIDPAPER_LOG_LEVEL. The
// output directory is the base for relative filenames; when it is set, no
// tool reads or writes a path outside it. A log level of "debug" logs every
// request to stderr.
//
// # Usage
//
//	srv := server.New(server.ConfigFromEnv(version))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
