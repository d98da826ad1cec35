package procsig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Run_EchoProcess(t *testing.T) {
	rec, err := Run(&Descriptor{
		Path:          "sh",
		Args:          []string{"-c", "echo hello; echo world"},
		CaptureStdout: true,
	})
	require.NoError(t, err)

	assert.True(t, rec.Started)
	assert.Greater(t, rec.PID, 0)
	assert.True(t, rec.Exited)
	assert.Equal(t, 0, rec.ExitCode)
	assert.NoError(t, rec.Err)
	assert.True(t, rec.Sampled)

	require.Len(t, rec.Lines, 2)
	assert.Equal(t, "hello", rec.Lines[0].Text)
	assert.Equal(t, LineOutput, rec.Lines[0].Kind)
	assert.Equal(t, 0, rec.Lines[0].Seq)
	assert.Equal(t, "world", rec.Lines[1].Text)
	assert.Equal(t, 1, rec.Lines[1].Seq)
}

func Test_Run_NonzeroExit(t *testing.T) {
	rec, err := Run(&Descriptor{
		Path:          "sh",
		Args:          []string{"-c", "echo failing >&2; exit 7"},
		CaptureStderr: true,
	})
	require.NoError(t, err)

	assert.True(t, rec.Exited)
	assert.Equal(t, 7, rec.ExitCode)

	require.Len(t, rec.Lines, 1)
	assert.Equal(t, LineError, rec.Lines[0].Kind)
	assert.Equal(t, "failing", rec.Lines[0].Text)
}

func Test_Run_StartFailureWithoutFailfast(t *testing.T) {
	rec, err := Run(&Descriptor{Path: "/nonexistent/binary"}, WithFailfast(false))
	require.NoError(t, err)

	assert.False(t, rec.Started)
	assert.Equal(t, 0, rec.PID)
	assert.False(t, rec.Exited)
	assert.False(t, rec.Disposed)
	assert.Empty(t, rec.Lines)
	assert.ErrorIs(t, rec.Err, ErrFailedToStart)
}

func Test_Run_NilDescriptor(t *testing.T) {
	_, err := Run(nil)

	assert.ErrorIs(t, err, ErrNilDescriptor)
}

func Test_Subscribe_SignalOrdering(t *testing.T) {
	st, err := Subscribe(&Descriptor{
		Path:          "sh",
		Args:          []string{"-c", "echo a; echo b"},
		CaptureStdout: true,
	})
	require.NoError(t, err)

	var kinds []Kind
	for sig := range st.Signals() {
		kinds = append(kinds, sig.Kind)
	}

	require.NotEmpty(t, kinds)
	assert.Equal(t, KindStarted, kinds[0])
	assert.Equal(t, KindExited, kinds[len(kinds)-1])
	assert.NoError(t, st.Err())
}

func Test_Subscribe_StartFailureFailfast(t *testing.T) {
	_, err := Subscribe(&Descriptor{Path: "/nonexistent/binary"})

	assert.ErrorIs(t, err, ErrFailedToStart)
}

func Test_Subscribe_MissingExecutable(t *testing.T) {
	_, err := Subscribe(&Descriptor{})

	assert.ErrorIs(t, err, ErrExecutableMissing)
}

func Test_Subscribe_CancelLongRunningProcess(t *testing.T) {
	st, err := Subscribe(&Descriptor{
		Path:            "sleep",
		Args:            []string{"60"},
		ShutdownTimeout: 2 * time.Second,
	})
	require.NoError(t, err)

	st.Cancel()

	select {
	case <-st.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("cancelled stream did not release")
	}

	assert.ErrorIs(t, st.Err(), ErrStreamCancelled)
}

func Test_Observe_CallbacksDriven(t *testing.T) {
	done := make(chan struct{})

	var lines []string

	_, err := Observe(&Descriptor{
		Path:          "sh",
		Args:          []string{"-c", "echo observed"},
		CaptureStdout: true,
	}, Observer{
		OnSignal: func(sig Signal) {
			if sig.Kind == KindOutputData {
				lines = append(lines, sig.Text)
			}
		},
		OnComplete: func() { close(done) },
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("observer completion callback never fired")
	}

	assert.Equal(t, []string{"observed"}, lines)
}
