package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askdb-ai/internal/apis/dtos"
	"askdb-ai/internal/constants"
	"askdb-ai/internal/services"
	"askdb-ai/pkg/dbmanager"
)

func studentsSchema() dbmanager.SchemaDescription {
	return dbmanager.SchemaDescription{
		"Students": {
			{Name: "Name", Type: "TEXT"},
			{Name: "Class", Type: "TEXT"},
			{Name: "Marks", Type: "INTEGER"},
			{Name: "Company", Type: "TEXT"},
		},
	}
}

func TestBuildTranslationPrompt(t *testing.T) {
	question := "How many entries of the record are present?"
	prompt := services.BuildTranslationPrompt(studentsSchema(), question)

	// Instructions, schema, examples, then the question last.
	assert.Contains(t, prompt, constants.SQLiteSystemPrompt)
	assert.Contains(t, prompt, "Table Students:")
	assert.Contains(t, prompt, "Marks (INTEGER)")
	for _, marker := range []string{"Example 1", "Example 2", "Example 3", "Example 4", "Example 5"} {
		assert.Contains(t, prompt, marker)
	}
	assert.True(t, strings.HasSuffix(prompt, "Question: "+question))

	instructionsAt := strings.Index(prompt, constants.SQLiteSystemPrompt)
	schemaAt := strings.Index(prompt, "Table Students:")
	examplesAt := strings.Index(prompt, "Example 1")
	questionAt := strings.Index(prompt, "Question: ")
	require.True(t, instructionsAt < schemaAt)
	require.True(t, schemaAt < examplesAt)
	require.True(t, examplesAt < questionAt)
}

func TestBuildTranslationPromptWithoutSchema(t *testing.T) {
	prompt := services.BuildTranslationPrompt(dbmanager.SchemaDescription{}, "List all students")

	// A failed introspection still yields a usable prompt.
	assert.Contains(t, prompt, "No schema information is available.")
	assert.True(t, strings.HasSuffix(prompt, "Question: List all students"))
}

func TestBuildTranslationPromptIsStateless(t *testing.T) {
	schema := dbmanager.SchemaDescription{"Students": []dtos.ColumnInfo{{Name: "Name", Type: "TEXT"}}}

	first := services.BuildTranslationPrompt(schema, "first question")
	second := services.BuildTranslationPrompt(schema, "second question")
	assert.NotContains(t, second, "first question")
	assert.NotEqual(t, first, second)
}
