package mcp

import "github.com/mark3labs/mcp-go/mcp"

var analyzeToolDef = mcp.NewTool("string_analyze",
	mcp.WithDescription("Compute the derived properties of a string (length, palindrome, unique characters, word count, content hash, character frequency) without storing it."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("String to analyze"),
	),
)

var storeToolDef = mcp.NewTool("string_store",
	mcp.WithDescription("Analyze a string and store it keyed by its content hash. Fails if the same string was stored before."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("String to analyze and store; the empty string is valid"),
	),
)

var fetchToolDef = mcp.NewTool("string_fetch",
	mcp.WithDescription("Fetch a stored string by its exact value or its content hash."),
	mcp.WithString("key",
		mcp.Required(),
		mcp.Description("Original string or sha256 content hash"),
	),
)

var listToolDef = mcp.NewTool("string_list",
	mcp.WithDescription("List stored strings matching structured filters. All filters are optional; no filters returns everything."),
	mcp.WithBoolean("is_palindrome",
		mcp.Description("Match entries by palindrome status"),
	),
	mcp.WithNumber("min_length",
		mcp.Description("Minimum character count (inclusive)"),
	),
	mcp.WithNumber("max_length",
		mcp.Description("Maximum character count (inclusive)"),
	),
	mcp.WithNumber("word_count",
		mcp.Description("Exact word count"),
	),
	mcp.WithString("contains_character",
		mcp.Description("Single character that must be present"),
	),
)

var queryToolDef = mcp.NewTool("string_query",
	mcp.WithDescription("Filter stored strings with a natural-language query, e.g. 'single word palindromes longer than 3'."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language query"),
	),
)

var deleteToolDef = mcp.NewTool("string_delete",
	mcp.WithDescription("Delete a stored string by its exact value or its content hash. Deletion is permanent."),
	mcp.WithString("key",
		mcp.Required(),
		mcp.Description("Original string or sha256 content hash"),
	),
)
