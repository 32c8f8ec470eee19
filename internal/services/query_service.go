package services

import (
	"context"
	"log"
	"sort"

	"askdb-ai/internal/apis/dtos"
	"askdb-ai/internal/constants"
	"askdb-ai/internal/utils"
	"askdb-ai/pkg/dbmanager"
	"askdb-ai/pkg/llm"

	"github.com/google/uuid"
)

// QueryService runs the question-to-result pipeline: prompt construction,
// translation, sanitization and execution. Each call is self-contained; no
// conversation state is kept between requests.
type QueryService interface {
	Ask(ctx context.Context, req *dtos.AskQueryRequest) (*dtos.QueryResultResponse, error)
	Execute(ctx context.Context, req *dtos.ExecuteQueryRequest) (*dtos.QueryResultResponse, error)
	Tables(ctx context.Context) (*dtos.TablesResponse, error)
}

type queryService struct {
	llmClient llm.Client
	driver    *dbmanager.SQLiteDriver
}

func NewQueryService(llmClient llm.Client, driver *dbmanager.SQLiteDriver) QueryService {
	return &queryService{
		llmClient: llmClient,
		driver:    driver,
	}
}

// Ask translates a natural-language question into SQL and executes it. A
// translation failure is reported on the response and execution is skipped;
// only request-level faults (none today below startup) surface as errors.
func (s *queryService) Ask(ctx context.Context, req *dtos.AskQueryRequest) (*dtos.QueryResultResponse, error) {
	response := &dtos.QueryResultResponse{
		QueryID:  uuid.NewString(),
		Question: req.Question,
	}

	schema, err := s.driver.GetSchema(ctx)
	if err != nil {
		// An unreadable database degrades to a schema-less prompt.
		log.Printf("QueryService -> Ask -> schema introspection failed: %v", err)
	}
	prompt := BuildTranslationPrompt(schema, req.Question)

	raw, err := s.llmClient.GenerateSQL(ctx, prompt)
	if err != nil {
		response.Error = &dtos.QueryError{
			Code:    constants.ErrCodeQueryGeneration,
			Message: constants.MsgQueryGenerationFailed,
			Details: err.Error(),
		}
		return response, nil
	}

	query := llm.SanitizeSQL(raw)
	response.Query = query
	if query == "" {
		response.Error = &dtos.QueryError{
			Code:    constants.ErrCodeQueryGeneration,
			Message: constants.MsgQueryGenerationFailed,
			Details: "model returned an empty statement",
		}
		return response, nil
	}

	s.run(ctx, query, response)
	return response, nil
}

// Execute runs user-supplied SQL directly, after the same sanitization the
// generated statements get.
func (s *queryService) Execute(ctx context.Context, req *dtos.ExecuteQueryRequest) (*dtos.QueryResultResponse, error) {
	response := &dtos.QueryResultResponse{
		QueryID: uuid.NewString(),
	}
	query := llm.SanitizeSQL(req.Query)
	response.Query = query

	s.run(ctx, query, response)
	return response, nil
}

func (s *queryService) run(ctx context.Context, query string, response *dtos.QueryResultResponse) {
	result := s.driver.ExecuteQuery(ctx, query)
	response.QueryType = string(result.Type)
	response.ExecutionTime = utils.ToIntPtr(result.ExecutionTime)
	if result.Error != nil {
		response.Error = result.Error
		return
	}
	response.Columns = result.Columns
	response.Rows = result.Rows
	response.Message = result.Message
}

// Tables exposes the introspected schema for display.
func (s *queryService) Tables(ctx context.Context) (*dtos.TablesResponse, error) {
	schema, err := s.driver.GetSchema(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)

	tables := make([]dtos.TableInfo, 0, len(names))
	for _, name := range names {
		tables = append(tables, dtos.TableInfo{Name: name, Columns: schema[name]})
	}
	return &dtos.TablesResponse{Tables: tables}, nil
}
