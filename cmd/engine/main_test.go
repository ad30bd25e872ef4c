package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func envOf(vals map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vals[k]
		return v, ok
	}
}

func runCmd(t *testing.T, args []string, env map[string]string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, envOf(env), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//
// -----------------------------------------------------------------------------
// run()
// -----------------------------------------------------------------------------

func TestRun_FromEnvironment(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCmd(t, nil, map[string]string{
		"ENGINE_TireCount":   "4",
		"ENGINE_PistonCount": "6",
	})

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Pistons: ||||||\nTires: ()()()()\nEngine is ready!\n", stdout)
}

func TestRun_ConfigFileWithEnvOverride(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "engine.hcl", "TireCount = 2\nPistonCount = 2\n")

	code, stdout, stderr := runCmd(t, []string{"-config", path, "-env-prefix", "X_"}, map[string]string{
		"X_PistonCount": "3",
	})

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Pistons: ||||||\nTires: ()()\nEngine is ready!\n", stdout)
}

func TestRun_YAMLConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "engine.yaml", "TireCount: 1\nPistonCount: 1\nConnectionString: someConnectionString\n")

	code, stdout, _ := runCmd(t, []string{"-config", path}, nil)

	require.Equal(t, 0, code)
	assert.Equal(t, "Pistons: ||\nTires: ()\nEngine is ready!\n", stdout)
}

func TestRun_CompositionErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		env     map[string]string
		wantSub string
	}{
		{name: "missing key", env: map[string]string{"ENGINE_PistonCount": "6"}, wantSub: `required key \"TireCount\" missing`},
		{name: "parse error", env: map[string]string{"ENGINE_TireCount": "abc", "ENGINE_PistonCount": "6"}, wantSub: "not a base-10 integer"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runCmd(t, nil, tc.env)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Failed to compose engine.")
			assert.Contains(t, stderr, tc.wantSub)
		})
	}
}

func TestRun_ConfigErrors(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCmd(t, []string{"-config", "engine.toml"}, nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unsupported config file extension")

	code, _, stderr = runCmd(t, []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Failed to load configuration.")
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "positional arg", args: []string{"extra"}},
		{name: "bad log level", args: []string{"-log-level", "loud"}},
		{name: "bad log format", args: []string{"-log-format", "xml"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, _ := runCmd(t, tc.args, nil)
			assert.Equal(t, 2, code)
			assert.Empty(t, stdout)
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCmd(t, []string{"-h"}, nil)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "-env-prefix")
}

func TestRun_DebugLogsJSON(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCmd(t, []string{"-log-level", "debug", "-log-format", "json"}, map[string]string{
		"ENGINE_TireCount":   "4",
		"ENGINE_PistonCount": "6",
	})

	require.Equal(t, 0, code)
	assert.Contains(t, stderr, `"msg":"Configuration loaded."`)
	assert.Contains(t, stderr, `"msg":"Optional dependencies provided."`)
	assert.Contains(t, stderr, `"msg":"Engine composed."`)
}

// containerByMsg maps each JSON log message to its "container" attribute.
func containerByMsg(t *testing.T, stderr string) map[string]string {
	t.Helper()

	out := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if id, ok := rec["container"].(string); ok {
			out[rec["msg"].(string)] = id
		}
	}
	return out
}

func TestRun_ContainerIDCorrelatesLogs(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "engine.txt")

	code, _, stderr := runCmd(t, []string{"-log-level", "debug", "-log-format", "json", "-out", out}, map[string]string{
		"ENGINE_TireCount":   "4",
		"ENGINE_PistonCount": "6",
	})
	require.Equal(t, 0, code, stderr)

	ids := containerByMsg(t, stderr)
	composed, ok := ids["Engine composed."]
	require.True(t, ok, stderr)
	written, ok := ids["Description written."]
	require.True(t, ok, stderr)

	assert.Equal(t, composed, written)
	_, err := uuid.Parse(written)
	assert.NoError(t, err)

	// Each run gets its own container.
	_, _, stderr2 := runCmd(t, []string{"-log-level", "debug", "-log-format", "json", "-out", out}, map[string]string{
		"ENGINE_TireCount":   "4",
		"ENGINE_PistonCount": "6",
	})
	assert.NotEqual(t, composed, containerByMsg(t, stderr2)["Engine composed."])
}

func TestRun_WriteFailureCarriesContainerID(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "no-such-dir", "engine.txt")

	code, _, stderr := runCmd(t, []string{"-log-format", "json", "-out", out}, map[string]string{
		"ENGINE_TireCount":   "4",
		"ENGINE_PistonCount": "6",
	})
	require.Equal(t, 1, code)

	id, ok := containerByMsg(t, stderr)["Failed to write description."]
	require.True(t, ok, stderr)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

//
// -----------------------------------------------------------------------------
// -out / writeFileAtomic()
// -----------------------------------------------------------------------------

func TestRun_OutFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "engine.txt")

	code, stdout, stderr := runCmd(t, []string{"-out", out}, map[string]string{
		"ENGINE_TireCount":   "4",
		"ENGINE_PistonCount": "6",
	})

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Engine is ready!\n", stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Pistons: ||||||\nTires: ()()()()\n", string(got))
}

func TestRun_OutFileUnwritable(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "no-such-dir", "engine.txt")

	code, stdout, stderr := runCmd(t, []string{"-out", out}, map[string]string{
		"ENGINE_TireCount":   "4",
		"ENGINE_PistonCount": "6",
	})

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Failed to write description.")
}

// fakeTempFile lets writeFileAtomic tests force Write and Close failures.
type fakeTempFile struct {
	fileName string
	writeErr error
	syncErr  error
	closeErr error
	synced   bool
	closed   bool
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Sync() error {
	f.synced = true
	return f.syncErr
}

func (f *fakeTempFile) Close() error {
	f.closed = true
	return f.closeErr
}

// withFileHooks swaps the file hooks for the duration of a test. Tests using it
// must not run in parallel.
func withFileHooks(t *testing.T, create func(string, string) (tempFile, error), chmod func(string, os.FileMode) error, rename func(string, string) error, remove func(string) error) {
	t.Helper()

	origCreate, origChmod, origRename, origRemove := createTempFile, chmodFile, renameFile, removeFile
	t.Cleanup(func() {
		createTempFile, chmodFile, renameFile, removeFile = origCreate, origChmod, origRename, origRemove
	})

	if create != nil {
		createTempFile = create
	}
	if chmod != nil {
		chmodFile = chmod
	}
	if rename != nil {
		renameFile = rename
	}
	if remove != nil {
		removeFile = remove
	}
}

func TestWriteFileAtomic_Success(t *testing.T) {
	target := filepath.Join(t.TempDir(), "engine.txt")

	require.NoError(t, writeFileAtomic(target, []byte("Pistons: ||\nTires: ()\n"), 0o600))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Pistons: ||\nTires: ()\n", string(got))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_StagesHiddenSyncedFile(t *testing.T) {
	file := &fakeTempFile{fileName: "staged"}
	var gotDir, gotPattern string

	withFileHooks(t,
		func(dir, pattern string) (tempFile, error) {
			gotDir, gotPattern = dir, pattern
			return file, nil
		},
		func(string, os.FileMode) error { return nil },
		func(string, string) error { return nil },
		nil,
	)

	require.NoError(t, writeFileAtomic("/srv/out/engine.txt", []byte("x"), 0o644))
	assert.Equal(t, "/srv/out", gotDir)
	assert.Equal(t, ".engine.txt.engine-*", gotPattern)
	assert.True(t, file.synced)
	assert.True(t, file.closed)
}

func TestWriteFileAtomic_FailuresRemoveTempFile(t *testing.T) {
	boom := errors.New("boom")

	cases := []struct {
		name      string
		file      *fakeTempFile
		chmodErr  error
		renameErr error
	}{
		{name: "write", file: &fakeTempFile{fileName: "tmp-write", writeErr: boom}},
		{name: "sync", file: &fakeTempFile{fileName: "tmp-sync", syncErr: boom}},
		{name: "close", file: &fakeTempFile{fileName: "tmp-close", closeErr: boom}},
		{name: "chmod", file: &fakeTempFile{fileName: "tmp-chmod"}, chmodErr: boom},
		{name: "rename", file: &fakeTempFile{fileName: "tmp-rename"}, renameErr: boom},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var removed []string
			withFileHooks(t,
				func(string, string) (tempFile, error) { return tc.file, nil },
				func(string, os.FileMode) error { return tc.chmodErr },
				func(string, string) error { return tc.renameErr },
				func(p string) error { removed = append(removed, p); return nil },
			)

			err := writeFileAtomic("/unused/engine.txt", []byte("x"), 0o644)
			require.ErrorIs(t, err, boom)
			assert.True(t, tc.file.closed)
			assert.Equal(t, []string{tc.file.fileName}, removed)
		})
	}
}

func TestWriteFileAtomic_CreateFails(t *testing.T) {
	boom := errors.New("create failed")
	removeCalled := false

	withFileHooks(t,
		func(string, string) (tempFile, error) { return nil, boom },
		nil, nil,
		func(string) error { removeCalled = true; return nil },
	)

	err := writeFileAtomic("/unused/engine.txt", []byte("x"), 0o644)
	require.ErrorIs(t, err, boom)
	assert.False(t, removeCalled)
}
