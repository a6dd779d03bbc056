package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/config"
	"github.com/strandkit/strand/internal/errors"
	"github.com/strandkit/strand/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{db: db, cfg: cfg}
}

// Request types for each tool

// AnalyzeRequest represents the arguments for string_analyze.
type AnalyzeRequest struct {
	Value *string `json:"value,omitempty"`
}

// StoreRequest represents the arguments for string_store.
type StoreRequest struct {
	Value *string `json:"value,omitempty"`
}

// FetchRequest represents the arguments for string_fetch.
type FetchRequest struct {
	Key string `json:"key,omitempty"`
}

// ListRequest represents the arguments for string_list.
type ListRequest struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// QueryRequest represents the arguments for string_query.
type QueryRequest struct {
	Query string `json:"query,omitempty"`
}

// DeleteRequest represents the arguments for string_delete.
type DeleteRequest struct {
	Key string `json:"key,omitempty"`
}

// HandleAnalyze handles the string_analyze tool call.
func (h *Handlers) HandleAnalyze(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AnalyzeRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.Value == nil {
		return errorResult(errors.NewInvalidRequest("value is required")), nil
	}

	result, err := ops.Analyze(ctx, ops.AnalyzeInput{Value: *input.Value})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStore handles the string_store tool call.
func (h *Handlers) HandleStore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[StoreRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.Value == nil {
		return errorResult(errors.NewInvalidRequest("value is required")), nil
	}

	result, err := ops.Store(ctx, h.db, h.cfg, ops.StoreInput{Value: *input.Value})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the string_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fetch(ctx, h.db, ops.FetchInput{Key: input.Key})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the string_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	filter := analysis.FilterSet{
		IsPalindrome:      input.IsPalindrome,
		MinLength:         input.MinLength,
		MaxLength:         input.MaxLength,
		WordCount:         input.WordCount,
		ContainsCharacter: input.ContainsCharacter,
	}

	result, err := ops.List(ctx, h.db, filter)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleQuery handles the string_query tool call.
func (h *Handlers) HandleQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[QueryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Query(ctx, h.db, ops.QueryInput{Query: input.Query})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the string_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(ctx, h.db, ops.DeleteInput{Key: input.Key})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// errorResult creates an MCP error result from any error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if sErr, ok := err.(*errors.StrandError); ok {
		errorObj := map[string]any{
			"code":    sErr.Code,
			"message": sErr.Message,
			"status":  sErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
