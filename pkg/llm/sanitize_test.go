package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"askdb-ai/pkg/llm"
)

func TestSanitizeSQL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "clean statement unchanged",
			raw:  `SELECT COUNT(*) FROM Students;`,
			want: `SELECT COUNT(*) FROM Students;`,
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  \n SELECT * FROM Students; \n\t",
			want: `SELECT * FROM Students;`,
		},
		{
			name: "fenced with language tag",
			raw:  "```sql\nSELECT * FROM Students WHERE Class=\"MCom\";\n```",
			want: `SELECT * FROM Students WHERE Class="MCom";`,
		},
		{
			name: "fenced without language tag",
			raw:  "```\nSELECT AVG(Marks) FROM Students;\n```",
			want: `SELECT AVG(Marks) FROM Students;`,
		},
		{
			name: "bare language tag line",
			raw:  "sql\nSELECT Name FROM Students;",
			want: `SELECT Name FROM Students;`,
		},
		{
			name: "bare language tag followed by space",
			raw:  "sql SELECT COUNT(*) FROM Students;",
			want: `SELECT COUNT(*) FROM Students;`,
		},
		{
			name: "opening fence only",
			raw:  "```sql\nSELECT Company FROM Students;",
			want: `SELECT Company FROM Students;`,
		},
		{
			name: "closing fence only",
			raw:  "SELECT Company FROM Students;\n```",
			want: `SELECT Company FROM Students;`,
		},
		{
			name: "sql substring inside statement untouched",
			raw:  `SELECT sql FROM sqlite_master;`,
			want: `SELECT sql FROM sqlite_master;`,
		},
		{
			name: "fenced statement with sql named objects",
			raw:  "```sql\nSELECT sql FROM sqlite_master WHERE name = 'sqlgrades';\n```",
			want: `SELECT sql FROM sqlite_master WHERE name = 'sqlgrades';`,
		},
		{
			name: "identifier starting with sql is not a tag",
			raw:  `sqlite_master`,
			want: `sqlite_master`,
		},
		{
			name: "fence pair with empty body",
			raw:  "```\n```",
			want: "",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := llm.SanitizeSQL(tt.raw)
			assert.Equal(t, tt.want, got)

			// Sanitizing twice equals sanitizing once.
			assert.Equal(t, got, llm.SanitizeSQL(got))
		})
	}
}
