package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
	"github.com/blackwell-systems/codecommenter/internal/lang"
	"github.com/blackwell-systems/codecommenter/internal/suggest"
)

// codeArgs is the argument shape shared by all tools.
type codeArgs struct {
	Code      string `json:"code"`
	Numbering string `json:"numbering,omitempty"`
	Language  string `json:"language,omitempty"`
}

// AnalyzeResult is returned by analyze_code.
type AnalyzeResult struct {
	Language    string `json:"language"`
	Comments    string `json:"comments"`
	Suggestions string `json:"suggestions"`
}

// LanguageResult is returned by detect_language.
type LanguageResult struct {
	Language      string `json:"language"`
	CommentLeader string `json:"comment_leader"`
}

// SuggestResult is returned by suggest.
type SuggestResult struct {
	Language    string               `json:"language"`
	Report      string               `json:"report"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

var (
	codeSchema = json.RawMessage(`{"type":"object","properties":{` +
		`"code":{"type":"string","description":"Source code to analyze"},` +
		`"numbering":{"type":"string","enum":["fixed","sequential"],"description":"Suggestion numbering (default fixed)"},` +
		`"language":{"type":"string","description":"Override language detection (javascript, python, java, cpp)"}` +
		`},"required":["code"],"additionalProperties":false}`)
	codeOnlySchema = json.RawMessage(`{"type":"object","properties":{` +
		`"code":{"type":"string","description":"Source code to classify"}` +
		`},"required":["code"],"additionalProperties":false}`)
)

// addTools registers all MCP tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "analyze_code",
		Description: "Annotate source code with line-by-line explanatory comments and list improvement suggestions.",
		InputSchema: codeSchema,
		Handler:     s.handleAnalyzeCode,
	})
	s.registerTool(toolDef{
		Name:        "detect_language",
		Description: "Classify source code as JavaScript, Python, Java, C++ or Unknown.",
		InputSchema: codeOnlySchema,
		Handler:     s.handleDetectLanguage,
	})
	s.registerTool(toolDef{
		Name:        "suggest",
		Description: "List generic improvement suggestions for source code.",
		InputSchema: codeSchema,
		Handler:     s.handleSuggest,
	})
}

// parseCodeArgs decodes and validates tool arguments into analyzer options.
func parseCodeArgs(raw json.RawMessage) (codeArgs, []analyzer.Option, error) {
	var args codeArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if err := analyzer.CheckInput(args.Code); err != nil {
		return args, nil, err
	}

	var opts []analyzer.Option
	if args.Numbering != "" {
		n, err := suggest.ParseNumbering(args.Numbering)
		if err != nil {
			return args, nil, err
		}
		opts = append(opts, analyzer.WithNumbering(n))
	}
	if args.Language != "" {
		l, err := lang.ParseLabel(args.Language)
		if err != nil {
			return args, nil, err
		}
		opts = append(opts, analyzer.WithLanguage(l))
	}
	return args, opts, nil
}

func (s *Server) handleAnalyzeCode(ctx context.Context, raw json.RawMessage) (any, error) {
	args, opts, err := parseCodeArgs(raw)
	if err != nil {
		return nil, err
	}
	res, err := s.analyzer.Analyze(ctx, args.Code, opts...)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	s.log.Debug().Str("language", res.Language.String()).Int("suggestions", len(res.Items)).Msg("analyze_code")
	return AnalyzeResult{
		Language:    res.Language.String(),
		Comments:    res.Comments,
		Suggestions: res.Suggestions,
	}, nil
}

func (s *Server) handleDetectLanguage(_ context.Context, raw json.RawMessage) (any, error) {
	var args codeArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if err := analyzer.CheckInput(args.Code); err != nil {
		return nil, err
	}
	l := lang.Classify(args.Code)
	return LanguageResult{Language: l.String(), CommentLeader: l.CommentLeader()}, nil
}

func (s *Server) handleSuggest(ctx context.Context, raw json.RawMessage) (any, error) {
	args, opts, err := parseCodeArgs(raw)
	if err != nil {
		return nil, err
	}
	res, err := s.analyzer.Analyze(ctx, args.Code, opts...)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return SuggestResult{
		Language:    res.Language.String(),
		Report:      res.Suggestions,
		Suggestions: res.Items,
	}, nil
}
