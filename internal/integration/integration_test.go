// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fastasplit/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func fiveRecords() string {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, ">seq%d\nACGTACGTACGT\n", i)
	}
	return b.String()
}

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func countHeaders(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Count(string(data), ">")
}

func TestEndToEndCountPolicy(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "genome.fa", fiveRecords())
	out := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(out, 0o755))

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", fa, "-n", "2", "-o", out}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	// ceil(5/2) = 3 records in chunk 1, remainder 2 in chunk 2.
	assert.Equal(t, 3, countHeaders(t, filepath.Join(out, "genome_1.fa")))
	assert.Equal(t, 2, countHeaders(t, filepath.Join(out, "genome_2.fa")))
	_, err := os.Stat(filepath.Join(out, "genome_3.fa"))
	assert.True(t, os.IsNotExist(err))

	assert.Contains(t, stdout.String(), "5 FASTA entries")
	assert.Contains(t, stdout.String(), "Done")
}

func TestEndToEndSizePolicy(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "genome.fa", fiveRecords())

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", fa, "-m", "40", "-o", dir}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	total := 0
	for i := 1; ; i++ {
		path := filepath.Join(dir, fmt.Sprintf("genome_%d.fa", i))
		if _, err := os.Stat(path); err != nil {
			break
		}
		n := countHeaders(t, path)
		assert.NotZero(t, n, "chunk %d empty", i)
		total += n
	}
	assert.Equal(t, 5, total)
}

func TestEndToEndGzipInput(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "genome.fa.gz")
	gz := gzipBytes(t, fiveRecords())
	require.NoError(t, os.WriteFile(fa, gz, 0o644))

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", fa, "-n", "5", "-o", dir, "-q"}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	// Chunks are named from the stem without .gz and hold one record each.
	for i := 1; i <= 5; i++ {
		assert.Equal(t, 1, countHeaders(t, filepath.Join(dir, fmt.Sprintf("genome_%d.fa", i))))
	}
}

func TestZeroEntriesFails(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "empty.fa", "no fasta content\n")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", fa, "-n", "2", "-o", dir}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "no FASTA entries")

	// Failing before processing must not leave chunk files behind.
	_, err := os.Stat(filepath.Join(dir, "empty_1.fa"))
	assert.True(t, os.IsNotExist(err))
}

func TestMissingPolicyExitsWithUsage(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "x.fa", ">s\nAC\n")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", fa}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "number of chunks or the max file size")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestBothPoliciesRejected(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "x.fa", ">s\nAC\n")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", fa, "-n", "2", "-m", "1k"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "conflicts")
}

func TestBadInputPath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", "no-such-file.fa", "-n", "2"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "does not exist")
}

func TestBadSuffix(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", "x.fa", "-m", "3X"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "unknown suffix")
}

func TestNoArgsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := app.Run(nil, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"--version"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "fastasplit version")
}

func TestQuietSuppressesProgress(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "x.fa", fiveRecords())

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", fa, "-n", "1", "-o", dir, "--quiet"}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRerunOverwritesChunks(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "x.fa", fiveRecords())

	for i := 0; i < 2; i++ {
		var stdout, stderr bytes.Buffer
		code := app.Run([]string{"-i", fa, "-n", "2", "-o", dir, "-q"}, &stdout, &stderr)
		require.Equal(t, 0, code, "stderr: %s", stderr.String())
	}
	assert.Equal(t, 3, countHeaders(t, filepath.Join(dir, "x_1.fa")))
	assert.Equal(t, 2, countHeaders(t, filepath.Join(dir, "x_2.fa")))
}
