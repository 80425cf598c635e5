package util

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// ArgumentsHandler handles a tool call from its decoded arguments.
type ArgumentsHandler func(ctx context.Context, arguments map[string]any) (*mcp.CallToolResult, error)

// AdaptArgumentsHandler turns an ArgumentsHandler into a server tool handler.
func AdaptArgumentsHandler(handler ArgumentsHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments := request.GetArguments()
		if arguments == nil {
			arguments = map[string]any{}
		}
		return handler(ctx, arguments)
	}
}

// ErrorGuard converts returned errors and panics into tool error results so a
// failing tool never tears down the session.
func ErrorGuard(handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithFields(logrus.Fields{
					"tool":  request.Params.Name,
					"panic": r,
					"stack": string(debug.Stack()),
				}).Error("Tool handler panicked")
				result = mcp.NewToolResultError(fmt.Sprintf("internal error: %v", r))
				err = nil
			}
		}()

		result, err = handler(ctx, request)
		if err != nil {
			logrus.WithError(err).WithField("tool", request.Params.Name).Warn("Tool call failed")
			return mcp.NewToolResultError(err.Error()), nil
		}
		return result, nil
	}
}

// StringArg returns a string argument, or "" when absent or not a string.
func StringArg(arguments map[string]any, name string) string {
	v, _ := arguments[name].(string)
	return v
}

// BoolArg reads a boolean argument, accepting "true"/"false" strings from lenient clients.
func BoolArg(arguments map[string]any, name string) bool {
	switch v := arguments[name].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}
