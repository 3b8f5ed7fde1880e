package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glossary "github.com/hihighsh/glossary-app"
)

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	a := newApp()
	var stdout, stderr bytes.Buffer
	a.Reader = strings.NewReader(stdin)
	a.Writer = &stdout
	a.ErrWriter = &stderr
	err := a.Run(append([]string{"glossgen", "--log-level", "error"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRun_StdinToStdout(t *testing.T) {
	out, _, err := runApp(t, glossary.SampleText, "-o", "-")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 13)
	assert.Equal(t, "CVB", records[1][1])
}

func TestRun_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	gl := filepath.Join(dir, "mine.csv")
	outPath := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte("go-PAST see-IMP"), 0o644))
	require.NoError(t, os.WriteFile(gl, []byte("Abbreviation,Meaning\nIMP,imperative mood\n"), 0o644))

	_, _, err := runApp(t, "", "--glossary", gl, "-o", outPath, in)
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := glossary.ReadRows(f)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "IMP", rows[0].Abbreviation)
	assert.Equal(t, "imperative mood", rows[0].Meaning)
}

func TestRun_NoDecompose(t *testing.T) {
	out, _, err := runApp(t, "take-CVB.SEQ go-CVB.CNT", "--no-decompose", "-o", "-")
	require.NoError(t, err)

	rows, err := glossary.ReadRows(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRun_ShowGlossLines(t *testing.T) {
	_, stderr, err := runApp(t, "prose line\ngo-PAST see-IMP", "--show-gloss-lines", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, "go-PAST see-IMP\n", stderr)
}

func TestRun_NoGlossLinesIsNotAnError(t *testing.T) {
	out, _, err := runApp(t, "nothing glossed here", "-o", "-")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_InvalidThreshold(t *testing.T) {
	_, _, err := runApp(t, "go-PAST see-IMP", "--min-marked", "0", "-o", "-")
	assert.ErrorIs(t, err, glossary.ErrInvalidOptions)
}
