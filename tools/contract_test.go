package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athapong/contract-analyzer/pkg/analysis"
	"github.com/athapong/contract-analyzer/pkg/report"
	"github.com/athapong/contract-analyzer/pkg/review"
	"github.com/athapong/contract-analyzer/services"
	"github.com/athapong/contract-analyzer/util"
)

const leaseText = "LEASE DEED\n1. RENT: The Lessee shall pay rent of Rs. 25,000 monthly for the premises in Pune.\n2. TERMINATION: The Lessor may terminate with reasonable notice."

func newTestService(t *testing.T) *review.Service {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return review.NewService(nil, nil, nil,
		review.WithLogger(logger),
		review.WithStore(report.NewJSONReportStore(t.TempDir(), "")))
}

func call(t *testing.T, handler server.ToolHandlerFunc, arguments map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = arguments
	result, err := util.ErrorGuard(handler)(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func text(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	c, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return c.Text
}

func TestAnalyzeTextTool(t *testing.T) {
	handler := util.AdaptArgumentsHandler(analyzeTextHandler(newTestService(t)))

	result := call(t, handler, map[string]any{"text": leaseText, "contract_type": "Auto-detect"})
	require.False(t, result.IsError)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &r))
	assert.Equal(t, "Lease", r.DetectedType)
	require.NotNil(t, r.Verdict)
	assert.True(t, r.Verdict.Mock)
	assert.Equal(t, "Lease", r.Verdict.ContractInfo.Type)

	result = call(t, handler, map[string]any{"text": "  "})
	assert.True(t, result.IsError)
}

func TestAnalyzeFileTool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lease.txt")
	require.NoError(t, os.WriteFile(path, []byte(leaseText), 0644))
	handler := util.AdaptArgumentsHandler(analyzeFileHandler(newTestService(t)))

	result := call(t, handler, map[string]any{"file_path": path, "contract_type": "Vendor", "save_report": true})
	require.False(t, result.IsError)
	out := text(t, result)
	assert.Contains(t, out, "Report saved to ")
	assert.Contains(t, out, `"type": "Vendor"`)

	result = call(t, handler, map[string]any{"file_path": filepath.Join(t.TempDir(), "lease.rtf")})
	assert.True(t, result.IsError)
	assert.Contains(t, text(t, result), "unsupported file format")

	result = call(t, handler, map[string]any{})
	assert.True(t, result.IsError)
}

func TestStructureTool(t *testing.T) {
	handler := util.AdaptArgumentsHandler(structureHandler(newTestService(t)))

	result := call(t, handler, map[string]any{"text": leaseText})
	require.False(t, result.IsError)

	var record analysis.Record
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &record))
	assert.Equal(t, "Lease", record.ContractType)
	assert.Len(t, record.Clauses, 2)
	assert.Contains(t, record.RiskIndicators, "termination")
	assert.NotContains(t, text(t, result), "risk_assessment")

	result = call(t, handler, map[string]any{})
	assert.True(t, result.IsError)
}

func TestTemplatesTool(t *testing.T) {
	handler := util.AdaptArgumentsHandler(templatesHandler)

	out := text(t, call(t, handler, map[string]any{}))
	assert.Contains(t, out, "- Service Contract (service-contract)")

	out = text(t, call(t, handler, map[string]any{"name": "service-contract"}))
	assert.Contains(t, out, "SERVICE AGREEMENT")

	result := call(t, handler, map[string]any{"name": "Lease"})
	assert.True(t, result.IsError)
}

func TestDescribeTools(t *testing.T) {
	settings := &services.Settings{
		LLMProvider:  services.ProviderOpenRouter,
		LLMModel:     "openai/gpt-4o-mini",
		NLPBackend:   "pattern",
		EnabledTools: []string{"contract"},
	}

	out := describeTools(settings)
	assert.Contains(t, out, "- contract (")
	assert.Contains(t, out, "[enabled]")
	assert.Contains(t, out, "- templates (Standard contract templates: contract_templates) [disabled]")
	assert.Contains(t, out, "sample verdicts only")

	settings.LLMAPIKey = "key"
	assert.Contains(t, describeTools(settings), "openai/gpt-4o-mini via openrouter")
}
