package oscmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"

	"procsig/internal/app/errors"
)

// Descriptor is the pre-built configuration describing how to launch a
// process: executable resolution, arguments, environment and redirection.
// It is inert; a process is only spawned when the factory derived from it
// is invoked.
type Descriptor struct {
	Path            string        `yaml:"path"`
	Args            []string      `yaml:"args,omitempty"`
	Dir             string        `yaml:"dir,omitempty"`
	Env             []string      `yaml:"env,omitempty"`
	EnvFile         string        `yaml:"env_file,omitempty"`
	CaptureStdout   bool          `yaml:"capture_stdout"`
	CaptureStderr   bool          `yaml:"capture_stderr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout,omitempty"`
}

// LoadDescriptor reads a descriptor from a YAML spec file
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadDescriptor, err)
	}

	desc := &Descriptor{}
	if err := yaml.Unmarshal(data, desc); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseDescriptor, err)
	}

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	return desc, nil
}

// Validate checks the descriptor for required fields
func (d *Descriptor) Validate() error {
	if d == nil {
		return errors.ErrNilDescriptor
	}

	if d.Path == "" {
		return errors.ErrExecutableRequired
	}

	return nil
}

// environ builds the child environment: the parent environment, then the
// env file if configured, then explicit entries, later wins
func (d *Descriptor) environ() ([]string, error) {
	env := os.Environ()

	if d.EnvFile != "" {
		fileEnv, err := godotenv.Read(d.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToLoadEnvFile, err)
		}

		for key, value := range fileEnv {
			env = append(env, fmt.Sprintf("%s=%s", key, value))
		}
	}

	env = append(env, d.Env...)

	return env, nil
}
