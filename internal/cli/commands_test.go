package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/invincible-jha/aumai-error-taxonomy/pkg/suggest"
	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListCmd_Table(t *testing.T) {
	cmd := NewListCmd(zaptest.NewLogger(t))

	out, _, err := execute(t, cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "model_not_found")
	assert.Contains(t, out, "missing_required_field")
}

func TestListCmd_JSON(t *testing.T) {
	cmd := NewListCmd(zaptest.NewLogger(t))

	out, _, err := execute(t, cmd, "--json")
	require.NoError(t, err)

	var defs []taxonomy.AgentError
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.Len(t, defs, taxonomy.Builtin().Len())
	assert.Equal(t, 101, defs[0].Code)
}

func TestListCmd_CategoryFilter(t *testing.T) {
	cmd := NewListCmd(zaptest.NewLogger(t))

	out, _, err := execute(t, cmd, "--category", "security", "--json")
	require.NoError(t, err)

	var defs []taxonomy.AgentError
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.Len(t, defs, 5)
	for _, def := range defs {
		assert.Equal(t, taxonomy.CategorySecurity, def.Category)
	}
}

func TestListCmd_UnknownCategory(t *testing.T) {
	cmd := NewListCmd(zaptest.NewLogger(t))

	_, _, err := execute(t, cmd, "--category", "bogus")
	require.Error(t, err)
}

func TestListCmd_RegistryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	custom := `
- code: 199
  category: model
  name: model_weights_corrupted
  description: The model weights on disk failed checksum verification.
  retryable: false
  severity: critical
- code: 101
  category: model
  name: model_missing
  description: Renamed built-in definition.
  retryable: false
  severity: high
`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	cmd := NewListCmd(zaptest.NewLogger(t))
	out, _, err := execute(t, cmd, "--registry-file", path, "--json")
	require.NoError(t, err)

	var defs []taxonomy.AgentError
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.Len(t, defs, taxonomy.Builtin().Len()+1)

	byCode := make(map[int]taxonomy.AgentError, len(defs))
	for _, def := range defs {
		byCode[def.Code] = def
	}
	assert.Equal(t, "model_missing", byCode[101].Name, "custom definition should replace the built-in")
	assert.Equal(t, "model_weights_corrupted", byCode[199].Name)
}

func TestLookupCmd(t *testing.T) {
	cmd := NewLookupCmd(zaptest.NewLogger(t))

	out, _, err := execute(t, cmd, "302")
	require.NoError(t, err)
	assert.Contains(t, out, "Error 302: permission_denied")
	assert.Contains(t, out, "security")
}

func TestLookupCmd_JSON(t *testing.T) {
	cmd := NewLookupCmd(zaptest.NewLogger(t))

	out, _, err := execute(t, cmd, "103", "--json")
	require.NoError(t, err)

	var resp taxonomy.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 103, resp.Error.Code)
	assert.Equal(t, "model_timeout", resp.Error.Name)
	assert.True(t, resp.Error.Retryable)

	// The details key must be present and null when no details are supplied.
	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	details, ok := raw["error"]["details"]
	require.True(t, ok, "details key missing")
	assert.Equal(t, "null", string(details))
}

func TestLookupCmd_UnknownCode(t *testing.T) {
	cmd := NewLookupCmd(zaptest.NewLogger(t))

	_, _, err := execute(t, cmd, "9999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, taxonomy.ErrUnknownCode))
}

func TestLookupCmd_NonNumericCode(t *testing.T) {
	cmd := NewLookupCmd(zaptest.NewLogger(t))

	_, _, err := execute(t, cmd, "abc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, taxonomy.ErrUnknownCode))
}

func TestClassifyCmd(t *testing.T) {
	cmd := NewClassifyCmd(zaptest.NewLogger(t))

	out, stderr, err := execute(t, cmd, "timeout")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, out, "[103] model_timeout")
}

func TestClassifyCmd_UnrecognizedName(t *testing.T) {
	cmd := NewClassifyCmd(zaptest.NewLogger(t))

	out, stderr, err := execute(t, cmd, "made_up_fault")
	require.NoError(t, err)
	assert.Contains(t, stderr, "unrecognized fault name")
	assert.Contains(t, out, "[601] data_schema_violation")
}

func TestClassifyCmd_JSON(t *testing.T) {
	cmd := NewClassifyCmd(zaptest.NewLogger(t))

	out, _, err := execute(t, cmd, "connection_refused", "--json", "--details", "dial tcp 10.0.0.1:443")
	require.NoError(t, err)

	var resp taxonomy.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 404, resp.Error.Code)
	assert.Equal(t, "network_unreachable", resp.Error.Name)
	assert.Equal(t, taxonomy.CategoryResource, resp.Error.Category)
	assert.True(t, resp.Error.Retryable)
	require.NotNil(t, resp.Error.Details)
	assert.Equal(t, "dial tcp 10.0.0.1:443", *resp.Error.Details)
}

func TestSuggestCmd(t *testing.T) {
	cmd := NewSuggestCmd(zaptest.NewLogger(t))

	out, _, err := execute(t, cmd, "103")
	require.NoError(t, err)
	assert.Contains(t, out, "Recovery for [103] model_timeout")
	assert.Contains(t, out, "confidence: high")
}

func TestSuggestCmd_JSON(t *testing.T) {
	cmd := NewSuggestCmd(zaptest.NewLogger(t))

	out, _, err := execute(t, cmd, "604", "--json")
	require.NoError(t, err)

	var s suggest.Suggestion
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.NotEmpty(t, s.Summary)
	assert.NotEmpty(t, s.Confidence)
}

func TestSuggestCmd_UnknownCode(t *testing.T) {
	cmd := NewSuggestCmd(zaptest.NewLogger(t))

	_, _, err := execute(t, cmd, "9999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, taxonomy.ErrUnknownCode))
}

func TestRecordAndStatsCmds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "occurrences.db")
	logger := zaptest.NewLogger(t)

	for range 2 {
		cmd := NewRecordCmd(logger)
		out, _, err := execute(t, cmd, "103", "--db", dbPath, "--agent", "agent-7", "--context", "summarise step timed out")
		require.NoError(t, err)
		assert.Contains(t, out, "of [103] model_timeout")
	}

	recordCmd := NewRecordCmd(logger)
	_, _, err := execute(t, recordCmd, "302", "--db", dbPath)
	require.NoError(t, err)

	statsCmd := NewStatsCmd(logger)
	out, _, err := execute(t, statsCmd, "--db", dbPath, "--json")
	require.NoError(t, err)

	var freq map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &freq))
	assert.Equal(t, 2, freq["103"])
	assert.Equal(t, 1, freq["302"])
}

func TestRecordCmd_UnknownCode(t *testing.T) {
	cmd := NewRecordCmd(zaptest.NewLogger(t))

	_, _, err := execute(t, cmd, "9999", "--db", filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, taxonomy.ErrUnknownCode))
}

func TestStatsCmd_EmptyStore(t *testing.T) {
	cmd := NewStatsCmd(zaptest.NewLogger(t))

	out, _, err := execute(t, cmd, "--db", filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "No occurrences recorded.")
}
