package services

import (
	"strings"

	"askdb-ai/internal/constants"
	"askdb-ai/pkg/dbmanager"
)

// BuildTranslationPrompt combines the fixed instruction block, the freshly
// introspected schema and the worked examples, and appends the user question
// last under its own separator. One prompt is built per request and nothing
// is retained between calls.
func BuildTranslationPrompt(schema dbmanager.SchemaDescription, question string) string {
	var b strings.Builder
	b.WriteString(constants.SQLiteSystemPrompt)
	b.WriteString("\n\nSchema:\n")
	b.WriteString(dbmanager.FormatSchema(schema))
	b.WriteString("\n\n")
	b.WriteString(constants.SQLiteWorkedExamples)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	return b.String()
}
