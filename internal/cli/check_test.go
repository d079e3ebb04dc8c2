package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bareExceptTree is the dump of:
//
//	try:
//	    pass
//	except:
//	    pass
const bareExceptTree = `{
	"_type": "Module",
	"body": [{
		"_type": "Try",
		"lineno": 1, "col_offset": 0, "end_lineno": 4, "end_col_offset": 8,
		"body": [{"_type": "Pass", "lineno": 2, "col_offset": 4, "end_lineno": 2, "end_col_offset": 8}],
		"handlers": [{
			"_type": "ExceptHandler",
			"lineno": 3, "col_offset": 0, "end_lineno": 4, "end_col_offset": 8,
			"type": null, "name": null,
			"body": [{"_type": "Pass", "lineno": 4, "col_offset": 4, "end_lineno": 4, "end_col_offset": 8}]
		}],
		"orelse": [], "finalbody": []
	}]
}`

const cleanTree = `{"_type": "Module", "body": []}`

// chdir changes into dir for the duration of the test. It stands in for
// testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func writeTree(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check <tree.json>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Example)

	for _, flag := range []string{"format", "jobs", "suppress"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestCheckReportsViolations(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeTree(t, bareExceptTree)

	out, err := runCommand(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 violation")
	assert.Contains(t, out, "B001")
}

func TestCheckCleanFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeTree(t, cleanTree)

	_, err := runCommand(t, "check", path)
	assert.NoError(t, err)
}

func TestCheckMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := runCommand(t, "check", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be analyzed")
}

func TestCheckSuppressFlag(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeTree(t, bareExceptTree)

	_, err := runCommand(t, "check", "--suppress", "3:B001", path)
	assert.NoError(t, err)

	_, err = runCommand(t, "check", "--suppress", "3:*", path)
	assert.NoError(t, err)

	_, err = runCommand(t, "check", "--suppress", "bogus", path)
	assert.Error(t, err)
}

func TestCheckJSONFormat(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeTree(t, bareExceptTree)

	out, err := runCommand(t, "check", "--format", "json", path)
	require.Error(t, err, "violations still fail the run")

	var files []struct {
		File       string `json:"file"`
		Violations []struct {
			Line int    `json:"line"`
			Code string `json:"code"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 1)
	require.Len(t, files[0].Violations, 1)
	assert.Equal(t, "B001", files[0].Violations[0].Code)
	assert.Equal(t, 3, files[0].Violations[0].Line)
}

func TestBuildSuppressions(t *testing.T) {
	supp, err := buildSuppressions([]string{"3:B001,B006", "7:*"})
	require.NoError(t, err)

	require.Contains(t, supp, 3)
	assert.Equal(t, []string{"B001", "B006"}, supp[3].Codes)
	assert.True(t, supp[7].All)

	supp, err = buildSuppressions(nil)
	require.NoError(t, err)
	assert.Nil(t, supp)
}
