package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func RegisterContractPrompts(s *server.MCPServer) {
	prompt := mcp.NewPrompt("contract_review",
		mcp.WithPromptDescription("Review a contract for an Indian SME and explain the risks in plain business language"),
		mcp.WithArgument("file_path", mcp.ArgumentDescription("Path to the contract file (PDF, DOCX or TXT)"), mcp.RequiredArgument()),
		mcp.WithArgument("focus", mcp.ArgumentDescription("Optional concern to emphasise, e.g. termination or payment terms")),
	)
	s.AddPrompt(prompt, contractReviewHandler)
}

func contractReviewHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	filePath := strings.TrimSpace(request.Params.Arguments["file_path"])
	if filePath == "" {
		return nil, fmt.Errorf("file_path is required")
	}
	focus := strings.TrimSpace(request.Params.Arguments["focus"])

	var sb strings.Builder
	fmt.Fprintf(&sb, "Use the contract_analyze_file tool on %s and review the result for a small business owner in India.\n", filePath)
	sb.WriteString("Summarise the risk score, the three most serious clauses with a suggested rewording for each, any compliance warnings, and whether to sign, negotiate or seek counsel.\n")
	sb.WriteString("If the verdict is marked mock, say so and rely only on the structural analysis.")
	if focus != "" {
		fmt.Fprintf(&sb, "\nPay particular attention to: %s.", focus)
	}

	return mcp.NewGetPromptResult(
		fmt.Sprintf("Contract review of %s", filePath),
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(sb.String())),
		},
	), nil
}
