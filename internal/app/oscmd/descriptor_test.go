package oscmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsig/internal/app/errors"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func Test_LoadDescriptor_Valid(t *testing.T) {
	path := writeTempFile(t, "proc.yaml", `
path: /bin/echo
args:
  - hello
  - world
dir: /tmp
env:
  - FOO=bar
capture_stdout: true
capture_stderr: false
shutdown_timeout: 2s
`)

	desc, err := LoadDescriptor(path)
	require.NoError(t, err)

	assert.Equal(t, "/bin/echo", desc.Path)
	assert.Equal(t, []string{"hello", "world"}, desc.Args)
	assert.Equal(t, "/tmp", desc.Dir)
	assert.Equal(t, []string{"FOO=bar"}, desc.Env)
	assert.True(t, desc.CaptureStdout)
	assert.False(t, desc.CaptureStderr)
	assert.Equal(t, 2*time.Second, desc.ShutdownTimeout)
}

func Test_LoadDescriptor_MissingFile(t *testing.T) {
	_, err := LoadDescriptor(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorIs(t, err, errors.ErrFailedToReadDescriptor)
}

func Test_LoadDescriptor_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "broken.yaml", "path: [unclosed")

	_, err := LoadDescriptor(path)

	assert.ErrorIs(t, err, errors.ErrFailedToParseDescriptor)
}

func Test_LoadDescriptor_MissingExecutable(t *testing.T) {
	path := writeTempFile(t, "empty.yaml", "capture_stdout: true")

	_, err := LoadDescriptor(path)

	assert.ErrorIs(t, err, errors.ErrExecutableRequired)
}

func Test_Descriptor_Validate(t *testing.T) {
	tests := []struct {
		name string
		desc *Descriptor
		err  error
	}{
		{name: "nil descriptor", desc: nil, err: errors.ErrNilDescriptor},
		{name: "empty path", desc: &Descriptor{}, err: errors.ErrExecutableRequired},
		{name: "valid", desc: &Descriptor{Path: "/bin/true"}, err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Descriptor_Environ_MergesEnvFile(t *testing.T) {
	envFile := writeTempFile(t, ".env", "FROM_FILE=yes\nSHARED=file\n")

	desc := &Descriptor{
		Path:    "/bin/true",
		EnvFile: envFile,
		Env:     []string{"SHARED=explicit"},
	}

	env, err := desc.environ()
	require.NoError(t, err)

	assert.Contains(t, env, "FROM_FILE=yes")

	// explicit entries are appended after the env file, so they win
	fileIdx, explicitIdx := -1, -1
	for i, entry := range env {
		switch entry {
		case "SHARED=file":
			fileIdx = i
		case "SHARED=explicit":
			explicitIdx = i
		}
	}

	require.NotEqual(t, -1, fileIdx)
	require.NotEqual(t, -1, explicitIdx)
	assert.Greater(t, explicitIdx, fileIdx)
}

func Test_Descriptor_Environ_MissingEnvFile(t *testing.T) {
	desc := &Descriptor{
		Path:    "/bin/true",
		EnvFile: filepath.Join(t.TempDir(), "absent.env"),
	}

	_, err := desc.environ()

	assert.ErrorIs(t, err, errors.ErrFailedToLoadEnvFile)
}
