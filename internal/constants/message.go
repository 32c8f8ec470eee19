package constants

// Error codes surfaced to the client so it can tell a failed generation from
// a failed execution.
const (
	ErrCodeQueryGeneration = "QUERY_GENERATION_FAILED"
	ErrCodeQueryExecution  = "QUERY_EXECUTION_FAILED"
)

const (
	MsgQueryGenerationFailed = "failed to generate SQL for the question"
	MsgQueryExecutionFailed  = "failed to execute the SQL statement"
)
