package oscmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"procsig/internal/app/errors"
	"procsig/internal/config/logger"
)

func Test_Spawner_Factory_NilDescriptor(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := NewSpawner(NewMockLifecycle(ctrl), logger.Nop())

	_, err := s.Factory(nil)

	assert.ErrorIs(t, err, errors.ErrNilDescriptor)
}

func Test_Spawner_Factory_InvalidDescriptor(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := NewSpawner(NewMockLifecycle(ctrl), logger.Nop())

	_, err := s.Factory(&Descriptor{})

	assert.ErrorIs(t, err, errors.ErrExecutableRequired)
}

func Test_Spawner_Factory_FreshHandlePerInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := NewSpawner(NewMockLifecycle(ctrl), logger.Nop())

	factory, err := s.Factory(&Descriptor{Path: "/bin/true"})
	require.NoError(t, err)

	first := factory()
	second := factory()

	assert.NotSame(t, first, second)
}
