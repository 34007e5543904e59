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

// execute runs the root command with a throwaway config file and all
// command state reset, returning combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCfg(t, "{}\n", args...)
}

// executeCfg is execute with explicit config file contents.
func executeCfg(t *testing.T, cfgYAML string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	// flag targets survive between Execute calls; reset them
	iupacMode, outFormat, chunkSize = false, "", 0
	cleanIn, cleanScrub = "", false
	codonsIn, codonsFrame = "", 0
	transcribeIn, transcribeStrand, templateOrient = "", "coding", "5to3"
	rcIn, rcInOrient, rcOutOrient = "", "5to3", "5to3"
	statsIn, statsName = "", ""

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCleanCommand(t *testing.T) {
	out, err := execute(t, "clean", "ac gt")
	require.NoError(t, err)
	assert.Equal(t, "ACGT\n", out)
}

func TestCleanCommandIUPAC(t *testing.T) {
	_, err := execute(t, "clean", "acgtn")
	require.Error(t, err, "degenerate codes rejected in strict mode")

	out, err := execute(t, "clean", "--iupac", "acgtn")
	require.NoError(t, err)
	assert.Equal(t, "ACGTN\n", out)
}

func TestCleanCommandReportsPosition(t *testing.T) {
	_, err := execute(t, "clean", "acgtx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `'X'`)
	assert.Contains(t, err.Error(), "position 4")
}

func TestCleanCommandScrub(t *testing.T) {
	out, err := execute(t, "clean", "--scrub", "atg cAx---tgtN")
	require.NoError(t, err)
	assert.Equal(t, "ATGCATGT\n", out)
}

func TestMergeCommand(t *testing.T) {
	out, err := execute(t, "merge", "ATG", "caa-tt", "g")
	require.NoError(t, err)
	assert.Equal(t, "ATGCAATTG\n", out)
}

func TestCodonsCommand(t *testing.T) {
	out, err := execute(t, "codons", "ACGTA")
	require.NoError(t, err)
	assert.Equal(t, "ACG TA\n", out)

	out, err = execute(t, "codons", "--frame", "1", "ACGTA")
	require.NoError(t, err)
	assert.Equal(t, "CGT A\n", out)
}

func TestTranscribeCommand(t *testing.T) {
	out, err := execute(t, "transcribe", "ACGT")
	require.NoError(t, err)
	assert.Equal(t, "ACGU\n", out)

	out, err = execute(t, "transcribe", "--strand", "template", "TACCTGA")
	require.NoError(t, err)
	assert.Equal(t, "UCAGGUA\n", out)
}

func TestRevCompCommand(t *testing.T) {
	out, err := execute(t, "revcomp", "AGTC")
	require.NoError(t, err)
	assert.Equal(t, "GACT\n", out)

	out, err = execute(t, "comp", "AACG")
	require.NoError(t, err)
	assert.Equal(t, "TTGC\n", out)
}

func TestRevCompCommandIUPAC(t *testing.T) {
	out, err := execute(t, "revcomp", "RYSWKMBDHVN")
	require.NoError(t, err)
	assert.Equal(t, "NBDHVKMWSRY\n", out)
}

func TestCountCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(path, []byte(">s\nACGT\nACGT\n"), 0o644))

	out, err := execute(t, "count", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Length : 8")
	assert.Contains(t, out, "A=2  C=2  G=2  T=2")
}

func TestStatsCommandJSON(t *testing.T) {
	out, err := execute(t, "stats", "--output", "json", "--name", "s1", "ATGCA")
	require.NoError(t, err)

	var r struct {
		Name   string         `json:"name"`
		Length int            `json:"length"`
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "s1", r.Name)
	assert.Equal(t, 5, r.Length)
	assert.Equal(t, 2, r.Counts["A"])
}

func TestStatsCommandFromFASTA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(path, []byte(">rec1\nATGCA\n"), 0o644))

	out, err := execute(t, "stats", "--in", path)
	require.NoError(t, err)
	assert.Contains(t, out, "rec1")
	assert.Contains(t, out, "Length : 5")
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", "ATGCA", "AAAAA")
	require.NoError(t, err)
	assert.Contains(t, out, "dGC%: +40.00")
	assert.Contains(t, out, "L1% : 120.00")
}

func TestLineWidthWrapsSequences(t *testing.T) {
	out, err := executeCfg(t, "line-width: 4\n", "clean", "acgtacg")
	require.NoError(t, err)
	assert.Equal(t, "ACGT\nACG\n", out)
}

func TestConfigAlphabet(t *testing.T) {
	out, err := executeCfg(t, "alphabet: iupac\n", "clean", "acgtn")
	require.NoError(t, err)
	assert.Equal(t, "ACGTN\n", out)
}

func TestBothInputSourcesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(path, []byte(">s\nACGT\n"), 0o644))
	_, err := execute(t, "clean", "--in", path, "ACGT")
	require.Error(t, err)
}
