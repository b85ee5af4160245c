package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webriots/lazyseq"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { lazyseq.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(&errOut)
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNatseq(t *testing.T) {
	out, _, err := execute(t, "natseq")
	require.NoError(t, err)
	require.Equal(t, "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n", out)

	out, _, err = execute(t, "natseq", "--count", "3")
	require.NoError(t, err)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestRange(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"range"}, "0 1 2 3 4 5 6 7 8 9\n"},
		{[]string{"range", "--count", "0"}, "\n"},
		{[]string{"range", "--count", "2"}, "0 1\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestTree(t *testing.T) {
	r := require.New(t)

	out, _, err := execute(t, "tree")
	r.NoError(err)
	r.Equal("0 1 2 3 4 5 6\n", out)

	out, _, err = execute(t, "tree", "--order", "in", "--depth", "2")
	r.NoError(err)
	r.Equal("1 0 2\n", out)

	_, _, err = execute(t, "tree", "--order", "post")
	r.ErrorContains(err, "unknown order")

	_, _, err = execute(t, "tree", "--depth", "-1")
	r.ErrorContains(err, "negative")
}

func TestTreeLogsResumes(t *testing.T) {
	_, logs, err := execute(t, "tree", "--log-level", "INFO", "--log-format", "text")
	require.NoError(t, err)
	require.Contains(t, logs, "msg=\"tree walked\"")
	require.Contains(t, logs, "values=7")
}

func TestChain(t *testing.T) {
	r := require.New(t)

	out, _, err := execute(t, "chain", "--depth", "4", "--count", "2")
	r.NoError(err)
	r.Equal("value=0 resumes=5\nvalue=1 resumes=1\ndone values=2 resumes=11\n", out)
}

func TestBench(t *testing.T) {
	r := require.New(t)

	out, _, err := execute(t, "bench", "--iterations", "100", "--depth", "2")
	r.NoError(err)
	r.Contains(out, "generator")
	r.Contains(out, "range")
	r.Contains(out, "recursive/2")

	_, _, err = execute(t, "bench", "--iterations", "0")
	r.ErrorContains(err, "iterations must be positive")
}

func TestRunBench(t *testing.T) {
	r := require.New(t)

	results := runBench(50, 3)
	r.Len(results, 3)
	for _, res := range results {
		r.Equal(50, res.Advances, res.Kind)
	}
	r.Equal(uint64(50), results[0].Resumes)
	r.Equal(uint64(51), results[1].Resumes)
	// 4 eager resumes, 49 leaf resumes, then the leaf and 3 levels.
	r.Equal(uint64(4+49+1+3), results[2].Resumes)
	r.Zero(benchResult{}.nsPerOp())
}

func TestConfigFile(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "lazyseq.yaml")
	r.NoError(os.WriteFile(path, []byte("count: 4\nlog-level: DEBUG\nlog-format: json\n"), 0o600))

	out, logs, err := execute(t, "--config", path, "natseq")
	r.NoError(err)
	r.Equal("0\n1\n2\n3\n", out)
	r.Contains(logs, `"msg":"config loaded"`)

	// Flags set on the command line win over the file.
	out, _, err = execute(t, "--config", path, "natseq", "--count", "1")
	r.NoError(err)
	r.Equal("0\n", out)
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("LAZYSEQ_COUNT", "2")

	out, _, err := execute(t, "range")
	require.NoError(t, err)
	require.Equal(t, "0 1\n", out)
}

func TestConfigMissingFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "natseq")
	require.ErrorIs(t, err, ErrNoConfigFile)
}

func TestNewLogger(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	for _, format := range []string{LogFormatPretty, LogFormatText, LogFormatJSON} {
		l, err := NewLogger(&buf, format, LogLevelStrWarn)
		r.NoError(err, format)
		r.NotNil(l)
	}

	_, err := NewLogger(&buf, "xml", LogLevelStrInfo)
	r.ErrorContains(err, "unknown log format")

	_, err = NewLogger(&buf, LogFormatText, "LOUD")
	r.ErrorContains(err, "unknown log level")
}

func TestRecursiveDebugTrace(t *testing.T) {
	_, logs, err := execute(t, "chain", "--depth", "2", "--count", "1", "--log-level", "DEBUG", "--log-format", "text")
	require.NoError(t, err)
	require.Contains(t, logs, "msg=delegate")
	require.Contains(t, logs, "msg=collapse")
}
