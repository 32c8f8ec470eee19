package dbmanager

import "askdb-ai/internal/apis/dtos"

// QueryType classifies a statement by its leading keyword.
type QueryType string

const (
	QueryTypeRead  QueryType = "read"
	QueryTypeWrite QueryType = "write"
)

// QueryExecutionResult is the tagged outcome of a single execution. Exactly
// one shape is populated: Columns/Rows for reads, Message for writes, or
// Error when the backend rejected the statement. The executor always returns
// one of these; backend faults never propagate as panics or raw errors.
type QueryExecutionResult struct {
	Type          QueryType        `json:"type"`
	Columns       []string         `json:"columns,omitempty"`
	Rows          [][]interface{}  `json:"rows,omitempty"`
	Message       string           `json:"message,omitempty"`
	ExecutionTime int              `json:"execution_time"`
	Error         *dtos.QueryError `json:"error,omitempty"`
}

// SchemaDescription maps table name to the table's columns in declared
// order. It is rebuilt from the live database on every call and never cached,
// so it always reflects the current structure.
type SchemaDescription map[string][]dtos.ColumnInfo
