package dtos

type AskQueryRequest struct {
	Question string `json:"question" binding:"required"`
}

type ExecuteQueryRequest struct {
	Query string `json:"query" binding:"required"`
}

type QueryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// QueryResultResponse carries one pipeline interaction back to the client:
// the generated (or user supplied) SQL plus either a tabular result for
// reads, a status message for writes, or a structured error. Columns/Rows
// and Message are mutually exclusive.
type QueryResultResponse struct {
	QueryID       string          `json:"query_id"`
	Question      string          `json:"question,omitempty"`
	Query         string          `json:"query"`
	QueryType     string          `json:"query_type,omitempty"`
	Columns       []string        `json:"columns,omitempty"`
	Rows          [][]interface{} `json:"rows,omitempty"`
	Message       string          `json:"message,omitempty"`
	ExecutionTime *int            `json:"execution_time,omitempty"`
	Error         *QueryError     `json:"error,omitempty"`
}
