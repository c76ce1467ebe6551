package cnf

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		name    string
		input   string
		vars    int
		clauses [][]int
	}{
		{
			name:    "header and comments",
			input:   "c example\np cnf 3 2\n1 -3 0\n2 3 -1 0\n",
			vars:    3,
			clauses: [][]int{{1, -3}, {2, 3, -1}},
		},
		{
			name:    "clause spanning lines",
			input:   "p cnf 2 1\n1\n-2 0\n",
			vars:    2,
			clauses: [][]int{{1, -2}},
		},
		{
			name:  "empty formula",
			input: "p cnf 0 0\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.vars, f.Vars)
			assert.Equal(t, len(tt.clauses), f.Len())
			for i, c := range tt.clauses {
				assert.Equal(t, c, f.Clauses[i])
			}
		})
	}
}

func TestParseUnterminatedClause(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 2\n"))
	assert.Error(t, err)
}

func TestWriteParseRoundTrip(t *testing.T) {
	f := Pigeonhole(3, 2)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))
	assert.True(t, strings.HasPrefix(buf.String(), "p cnf 6 9\n"))

	g, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, f.Vars, g.Vars)
	assert.Equal(t, f.Clauses, g.Clauses)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.cnf")
	f := &Formula{}
	f.Add(1, -2)
	f.Add(2)
	require.NoError(t, WriteFile(path, f))

	g, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, f.Clauses, g.Clauses)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.cnf"))
	assert.Error(t, err)
}
