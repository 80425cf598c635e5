package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/athapong/contract-analyzer/services"
	"github.com/athapong/contract-analyzer/util"
)

// ToolGroup is a unit of ENABLE_TOOLS gating.
type ToolGroup struct {
	Name  string
	Desc  string
	Tools []string
}

// ToolGroups lists every gateable group in registration order.
var ToolGroups = []ToolGroup{
	{"contract", "Full contract review with legal verdict", []string{"contract_analyze_file", "contract_analyze_text"}},
	{"structure", "Local NLP pre-analysis only", []string{"contract_structure"}},
	{"templates", "Standard contract templates", []string{"contract_templates"}},
}

// RegisterToolManagerTool adds a tool reporting which groups this server exposes.
func RegisterToolManagerTool(s *server.MCPServer, settings *services.Settings) {
	tool := mcp.NewTool("tool_manager",
		mcp.WithDescription("List the contract tool groups and whether ENABLE_TOOLS exposes them, along with the configured model backend"),
	)
	s.AddTool(tool, util.ErrorGuard(util.AdaptArgumentsHandler(toolManagerHandler(settings))))
}

func toolManagerHandler(settings *services.Settings) util.ArgumentsHandler {
	return func(context.Context, map[string]any) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(describeTools(settings)), nil
	}
}

func describeTools(settings *services.Settings) string {
	var sb strings.Builder
	sb.WriteString("Available tools:\n")
	for _, g := range ToolGroups {
		status := "disabled"
		if settings.ToolEnabled(g.Name) {
			status = "enabled"
		}
		sb.WriteString(fmt.Sprintf("- %s (%s: %s) [%s]\n", g.Name, g.Desc, strings.Join(g.Tools, ", "), status))
	}

	sb.WriteString("\n")
	if len(settings.EnabledTools) == 0 {
		sb.WriteString("All tools are enabled (ENABLE_TOOLS is empty)\n")
	}

	model := "sample verdicts only (no API key)"
	if settings.LLMAPIKey != "" || settings.LLMProvider == services.ProviderOllama {
		model = fmt.Sprintf("%s via %s", settings.LLMModel, settings.LLMProvider)
	}
	sb.WriteString(fmt.Sprintf("Legal verdict model: %s\n", model))
	sb.WriteString(fmt.Sprintf("NLP backend: %s\n", settings.NLPBackend))
	return sb.String()
}
