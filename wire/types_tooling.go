package wire

import "encoding/json"

// ToolingQueryRequest runs a Tooling API SOQL query.
type ToolingQueryRequest struct {
	SOQL string `json:"soql"`
}

// ExecuteAnonymousRequest compiles and runs Apex code.
type ExecuteAnonymousRequest struct {
	ApexCode string `json:"apex_code"`
}

// ExecuteAnonymousResponse reports compilation and execution outcome.
type ExecuteAnonymousResponse struct {
	Compiled            bool   `json:"compiled"`
	Success             bool   `json:"success"`
	CompileProblem      string `json:"compile_problem,omitempty"`
	ExceptionMessage    string `json:"exception_message,omitempty"`
	ExceptionStackTrace string `json:"exception_stack_trace,omitempty"`
	Line                *int   `json:"line,omitempty"`
	Column              *int   `json:"column,omitempty"`
}

// ToolingGetRequest reads a tooling record.
type ToolingGetRequest struct {
	SObject string `json:"sobject"`
	ID      string `json:"id"`
}

// ToolingCreateRequest creates a tooling record.
type ToolingCreateRequest struct {
	SObject string          `json:"sobject"`
	Record  json.RawMessage `json:"record"`
}

// ToolingDeleteRequest deletes a tooling record.
type ToolingDeleteRequest struct {
	SObject string `json:"sobject"`
	ID      string `json:"id"`
}
