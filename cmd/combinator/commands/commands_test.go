package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combinator/cmd/combinator/commands"
	"combinator/internal/domain"
)

const (
	testSeed  = "build since save grit begin key leisure similar royal diagram warfare execute laptop dress occur sword use soon above obtain beyond merry notable typical"
	testWords = `[["benefit"],["wife"],["soccer"],["rookie"],["nation"],["special"],["child"]]`
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCount_Product(t *testing.T) {
	out, err := execute(t, "mcp", "count", "--words", `[["a","b"],["c","d","e"]]`)
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestCount_PermutationsDefaultLength(t *testing.T) {
	out, err := execute(t, "perm", "count", "--words", `[["a","b","c"],["d","e","f"],["g","h","i"]]`)
	require.NoError(t, err)
	assert.Equal(t, "181,440\n", out)
}

func TestCount_PermutationsAll(t *testing.T) {
	out, err := execute(t, "permutations", "count", "--all", "--words", `[["a","b"],["c"]]`)
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestCount_LengthAboveWordsIsZero(t *testing.T) {
	out, err := execute(t, "p", "count", "-k", "4", "--words", `[["a","b"],["c"]]`)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestCount_ExplicitLength(t *testing.T) {
	words := `[["a","b"],["c"]]`
	tests := map[string]string{"0": "1\n", "2": "6\n", "3": "6\n"}
	for k, want := range tests {
		out, err := execute(t, "p", "count", "-k", k, "--words", words)
		require.NoError(t, err)
		assert.Equal(t, want, out, "k=%s", k)
	}

	_, err := execute(t, "p", "count", "--length=-3", "--words", words)
	require.ErrorIs(t, err, domain.ErrInvalidLength)
}

func TestEnvironment_OnlyDocumentedVariables(t *testing.T) {
	t.Setenv("ALL", "1")
	t.Setenv("LENGTH", "3")
	t.Setenv("WORKERS", "-1")
	t.Setenv("LOG_LEVEL", "nonsense")

	out, err := execute(t, "p", "count", "-k", "2", "--words", `[["a","b"],["c"],["d"],["e"],["f"],["g"],["h"]]`)
	require.NoError(t, err)
	assert.Equal(t, "56\n", out)
}

func TestEnvironment_OutputIgnored(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	elsewhere := filepath.Join(t.TempDir(), "elsewhere.txt")
	t.Setenv("OUTPUT", elsewhere)
	t.Setenv("NO_PROGRESS", "false")

	_, err := execute(t, "mcp", "run",
		"--words", testWords,
		"--seed", testSeed,
		"--fingerprint", "af849feb",
		"--no-progress",
	)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "passphrase.txt"))
	assert.NoFileExists(t, elsewhere)
}

func TestRun_ProductFindsPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passphrase.txt")
	out, err := execute(t, "cart", "run",
		"--words", testWords,
		"--seed", testSeed,
		"--fingerprint", "af849feb",
		"--output", path,
		"--no-progress",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Passphrase FOUND!: benefit wife soccer rookie nation special child")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Passphrase FOUND!: benefit wife soccer rookie nation special child\n", string(b))
}

func TestRun_ReadsEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passphrase.txt")
	t.Setenv("WORDS", testWords)
	t.Setenv("SEED", testSeed)
	t.Setenv("FINGERPRINT", "0x00000000")

	out, err := execute(t, "product", "run", "--output", path, "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "No passphrase found")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "No passphrase found\n", string(b))
}

func TestRun_FlagBeatsEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passphrase.txt")
	t.Setenv("FINGERPRINT", "00000000")

	out, err := execute(t, "mcp", "run",
		"--words", testWords,
		"--seed", testSeed,
		"--fingerprint", "AF849FEB",
		"--output", path,
		"--no-progress",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Passphrase FOUND!")
}

func TestRun_BadFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passphrase.txt")
	_, err := execute(t, "mcp", "run",
		"--words", testWords,
		"--seed", testSeed,
		"--fingerprint", "xyz",
		"--output", path,
	)
	require.ErrorIs(t, err, domain.ErrInvalidFingerprint)
	assert.NoFileExists(t, path)
}

func TestRun_MissingWords(t *testing.T) {
	_, err := execute(t, "mcp", "run", "--seed", testSeed, "--fingerprint", "af849feb",
		"--output", filepath.Join(t.TempDir(), "p.txt"))
	require.ErrorIs(t, err, domain.ErrNoWords)
}

func TestFingerprint(t *testing.T) {
	out, err := execute(t, "fingerprint", "--seed", testSeed)
	require.NoError(t, err)
	assert.Equal(t, "Fingerprint: 80962006\n", out)

	out, err = execute(t, "fingerprint", "--seed", testSeed, "-p", "benefitwifesoccerrookienationspecialchild")
	require.NoError(t, err)
	assert.Equal(t, "Fingerprint: af849feb\n", out)
}

func TestFingerprint_BadSeed(t *testing.T) {
	_, err := execute(t, "fingerprint", "--seed", "abandon abandon")
	require.ErrorIs(t, err, domain.ErrInvalidMnemonic)
}

func TestXPub(t *testing.T) {
	out, err := execute(t, "xpub", "--seed", testSeed)
	require.NoError(t, err)
	assert.Equal(t, "xpub6Ct5LukVDks4tNsW9PFaKUjCW5dUNzHKL3QmowFSFb42niqFqwU1izyFoWfThGfjrJKg1ezd4dv8ErtqkoHTxofckeZUeDBXS6mLiV8uYUF\n", out)
}

func TestReveal_RequiresKey(t *testing.T) {
	_, err := execute(t, "reveal", "--output", filepath.Join(t.TempDir(), "p.txt"))
	require.Error(t, err)
}

func TestSealedRunAndReveal(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt with default parameters")
	}
	path := filepath.Join(t.TempDir(), "passphrase.txt")
	_, err := execute(t, "mcp", "run",
		"--words", testWords,
		"--seed", testSeed,
		"--fingerprint", "af849feb",
		"--output", path,
		"--seal-key", "hunter2",
		"--no-progress",
	)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "benefit")

	out, err := execute(t, "reveal", "--output", path, "--seal-key", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, out, "Passphrase FOUND!: benefit wife soccer rookie nation special child")
	assert.Contains(t, out, "strategy=multi-cartesian-product target=af849feb evaluated=1")

	_, err = execute(t, "reveal", "--output", path, "--seal-key", "wrong")
	require.ErrorIs(t, err, domain.ErrWrongSealKey)
}
