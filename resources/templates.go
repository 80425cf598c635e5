package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/athapong/contract-analyzer/pkg/templates"
)

// TemplateURI returns the resource URI of a template.
func TemplateURI(t templates.Template) string {
	return "template://" + t.Slug
}

// RegisterTemplateResources exposes each sample contract as a text resource.
func RegisterTemplateResources(s *server.MCPServer) {
	for _, t := range templates.List() {
		resource := mcp.NewResource(TemplateURI(t), t.Name,
			mcp.WithResourceDescription(fmt.Sprintf("Standard %s template", t.Name)),
			mcp.WithMIMEType("text/plain"),
		)
		s.AddResource(resource, templateHandler(t))
	}
}

func templateHandler(t templates.Template) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     t.Text,
			},
		}, nil
	}
}
