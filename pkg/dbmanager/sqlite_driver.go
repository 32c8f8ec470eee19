package dbmanager

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"askdb-ai/internal/apis/dtos"
	"askdb-ai/internal/constants"

	_ "modernc.org/sqlite" // cgo-free SQLite driver
)

// SQLiteDriver executes statements against a single database file. Every
// call opens its own connection and closes it before returning; the engine's
// file locking is the only concurrency control.
type SQLiteDriver struct {
	path string
}

func NewSQLiteDriver(path string) *SQLiteDriver {
	return &SQLiteDriver{path: path}
}

// Path returns the database file the driver operates on.
func (d *SQLiteDriver) Path() string {
	return d.path
}

// ClassifyQuery marks a statement as a read iff its trimmed text starts with
// SELECT, case-insensitively. Everything else is treated as a write or DDL
// statement and runs inside a committed transaction.
func ClassifyQuery(query string) QueryType {
	trimmed := strings.TrimSpace(query)
	const keyword = "select"
	if len(trimmed) >= len(keyword) && strings.EqualFold(trimmed[:len(keyword)], keyword) {
		return QueryTypeRead
	}
	return QueryTypeWrite
}

// ExecuteQuery runs a sanitized statement and always returns a result value,
// converting every backend fault into a QueryError instead of failing.
func (d *SQLiteDriver) ExecuteQuery(ctx context.Context, query string) (result *QueryExecutionResult) {
	startTime := time.Now()
	queryType := ClassifyQuery(query)

	defer func() {
		if r := recover(); r != nil {
			result = executionError(queryType, fmt.Errorf("unexpected fault: %v", r))
		}
		result.ExecutionTime = int(time.Since(startTime).Milliseconds())
	}()

	db, err := sql.Open(constants.DatabaseTypeSQLite, d.path)
	if err != nil {
		return executionError(queryType, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if queryType == QueryTypeRead {
		return executeRead(ctx, db, query)
	}
	return executeWrite(ctx, db, query)
}

func executeRead(ctx context.Context, db *sql.DB, query string) *QueryExecutionResult {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return executionError(QueryTypeRead, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return executionError(QueryTypeRead, err)
	}

	results := make([][]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return executionError(QueryTypeRead, err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		results = append(results, values)
	}
	if err := rows.Err(); err != nil {
		return executionError(QueryTypeRead, err)
	}

	// Zero rows is a valid, successful outcome, not an error.
	return &QueryExecutionResult{
		Type:    QueryTypeRead,
		Columns: columns,
		Rows:    results,
	}
}

func executeWrite(ctx context.Context, db *sql.DB, query string) *QueryExecutionResult {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return executionError(QueryTypeWrite, err)
	}

	res, err := tx.ExecContext(ctx, query)
	if err != nil {
		tx.Rollback()
		return executionError(QueryTypeWrite, err)
	}
	if err := tx.Commit(); err != nil {
		return executionError(QueryTypeWrite, err)
	}

	affected, _ := res.RowsAffected()
	return &QueryExecutionResult{
		Type:    QueryTypeWrite,
		Message: fmt.Sprintf("Query executed successfully, %d row(s) affected", affected),
	}
}

func executionError(queryType QueryType, err error) *QueryExecutionResult {
	log.Printf("SQLiteDriver -> ExecuteQuery -> error: %v", err)
	return &QueryExecutionResult{
		Type: queryType,
		Error: &dtos.QueryError{
			Code:    constants.ErrCodeQueryExecution,
			Message: constants.MsgQueryExecutionFailed,
			Details: err.Error(),
		},
	}
}
