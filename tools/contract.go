package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	"github.com/athapong/contract-analyzer/pkg/lexicon"
	"github.com/athapong/contract-analyzer/pkg/review"
	"github.com/athapong/contract-analyzer/pkg/templates"
	"github.com/athapong/contract-analyzer/util"
)

// autoDetect is the contract_type value that defers to the classifier.
const autoDetect = "Auto-detect"

// RegisterContractTools adds the analyze tools backed by svc.
func RegisterContractTools(s *server.MCPServer, svc *review.Service) {
	types := append([]string{autoDetect}, lexicon.Default().ContractTypeNames()...)

	fileTool := mcp.NewTool("contract_analyze_file",
		mcp.WithDescription("Analyze a contract file (PDF, DOCX or TXT) for risks under Indian contract law. Returns the structural analysis (clauses, parties, amounts, risk indicators, vague terms) and a legal verdict with a 0-100 risk score."),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the contract file on the server")),
		mcp.WithString("contract_type", mcp.Description("Contract type to assume; defaults to auto-detection"), mcp.Enum(types...)),
		mcp.WithBoolean("save_report", mcp.Description("Also write the JSON report to the output directory")),
	)
	s.AddTool(fileTool, util.ErrorGuard(util.AdaptArgumentsHandler(analyzeFileHandler(svc))))

	textTool := mcp.NewTool("contract_analyze_text",
		mcp.WithDescription("Analyze pasted contract text for risks under Indian contract law. Same output as contract_analyze_file."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Full contract text")),
		mcp.WithString("contract_type", mcp.Description("Contract type to assume; defaults to auto-detection"), mcp.Enum(types...)),
	)
	s.AddTool(textTool, util.ErrorGuard(util.AdaptArgumentsHandler(analyzeTextHandler(svc))))
}

// RegisterStructureTool adds the model-free structural analysis tool.
func RegisterStructureTool(s *server.MCPServer, svc *review.Service) {
	tool := mcp.NewTool("contract_structure",
		mcp.WithDescription("Run only the local NLP pre-analysis of a contract: type, clauses, entities, obligations, risk indicators and ambiguous terms. No language model is called."),
		mcp.WithString("file_path", mcp.Description("Path to the contract file; either this or text is required")),
		mcp.WithString("text", mcp.Description("Contract text; used when file_path is empty")),
	)
	s.AddTool(tool, util.ErrorGuard(util.AdaptArgumentsHandler(structureHandler(svc))))
}

// RegisterTemplateTool adds the sample template lookup.
func RegisterTemplateTool(s *server.MCPServer) {
	tool := mcp.NewTool("contract_templates",
		mcp.WithDescription("List the standard contract templates, or return one by name or slug."),
		mcp.WithString("name", mcp.Description("Template name or slug; omit to list all")),
	)
	s.AddTool(tool, util.ErrorGuard(util.AdaptArgumentsHandler(templatesHandler)))
}

func contractOptions(arguments map[string]any) review.Options {
	contractType := strings.TrimSpace(util.StringArg(arguments, "contract_type"))
	if strings.EqualFold(contractType, autoDetect) {
		contractType = ""
	}
	return review.Options{ContractType: contractType}
}

func analyzeFileHandler(svc *review.Service) util.ArgumentsHandler {
	return func(ctx context.Context, arguments map[string]any) (*mcp.CallToolResult, error) {
		path := strings.TrimSpace(util.StringArg(arguments, "file_path"))
		if path == "" {
			return mcp.NewToolResultError("file_path must be a non-empty string"), nil
		}

		opts := contractOptions(arguments)
		opts.Save = util.BoolArg(arguments, "save_report")

		r, location, err := svc.ReviewFile(ctx, path, opts)
		if err != nil {
			return nil, errors.Wrap(err, "analyze contract")
		}
		out, err := toJSON(r)
		if err != nil {
			return nil, err
		}
		if location != "" {
			out = fmt.Sprintf("Report saved to %s\n\n%s", location, out)
		}
		return mcp.NewToolResultText(out), nil
	}
}

func analyzeTextHandler(svc *review.Service) util.ArgumentsHandler {
	return func(ctx context.Context, arguments map[string]any) (*mcp.CallToolResult, error) {
		text := util.StringArg(arguments, "text")
		if strings.TrimSpace(text) == "" {
			return mcp.NewToolResultError("text must be a non-empty string"), nil
		}

		r, _, err := svc.ReviewText(ctx, "", text, contractOptions(arguments))
		if err != nil {
			return nil, errors.Wrap(err, "analyze contract")
		}
		out, err := toJSON(r)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(out), nil
	}
}

func structureHandler(svc *review.Service) util.ArgumentsHandler {
	return func(ctx context.Context, arguments map[string]any) (*mcp.CallToolResult, error) {
		path := strings.TrimSpace(util.StringArg(arguments, "file_path"))
		text := util.StringArg(arguments, "text")

		if path != "" {
			doc, err := svc.Loader().Load(ctx, path)
			if err != nil {
				return nil, errors.Wrap(err, "load contract")
			}
			text = doc.Text
		} else if strings.TrimSpace(text) == "" {
			return mcp.NewToolResultError("either file_path or text is required"), nil
		}

		record, err := svc.Structure(ctx, text)
		if err != nil {
			return nil, err
		}
		out, err := toJSON(record)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(out), nil
	}
}

func templatesHandler(_ context.Context, arguments map[string]any) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(util.StringArg(arguments, "name"))
	if name == "" {
		var sb strings.Builder
		sb.WriteString("Available templates:\n")
		for _, t := range templates.List() {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", t.Name, t.Slug))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}

	t, ok := templates.Get(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("template %q not found; available: %s", name, strings.Join(templates.Names(), ", "))), nil
	}
	return mcp.NewToolResultText(t.Text), nil
}

func toJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode result")
	}
	return string(data), nil
}
