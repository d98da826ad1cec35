package oscmd

import (
	"procsig/internal/app/errors"
	"procsig/internal/app/process"
	"procsig/internal/config/logger"
)

// Spawner turns descriptors into process factories
type Spawner interface {
	Factory(desc *Descriptor) (process.Factory, error)
}

type spawner struct {
	lifecycle Lifecycle
	log       logger.Logger
}

// NewSpawner creates a new Spawner instance
func NewSpawner(lifecycle Lifecycle, log logger.Logger) Spawner {
	return &spawner{
		lifecycle: lifecycle,
		log:       log.WithComponent("OSCMD"),
	}
}

// Factory validates the descriptor and returns a factory producing a fresh,
// not-yet-started process handle per invocation
func (s *spawner) Factory(desc *Descriptor) (process.Factory, error) {
	if desc == nil {
		return nil, errors.ErrNilDescriptor
	}

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	return func() process.Handle {
		return newHandle(desc, s.lifecycle, s.log)
	}, nil
}
