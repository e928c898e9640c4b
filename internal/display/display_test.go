package display

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/primespiral/spiral/internal/winsize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFound(t *testing.T) {
	m, ok, err := Lookup(func() (Monitor, error) {
		return Monitor{Name: "DP-1", Size: winsize.Size{Width: 2560, Height: 1440}}, nil
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, winsize.Size{Width: 2560, Height: 1440}, m.Resolution())
}

func TestLookupNoMonitor(t *testing.T) {
	m, ok, err := Lookup(func() (Monitor, error) {
		return Monitor{}, errors.Wrap(ErrNoMonitor, "xrandr")
	})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestLookupError(t *testing.T) {
	_, ok, err := Lookup(func() (Monitor, error) {
		return Monitor{}, errors.New("connection refused")
	})
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLookupZeroSize(t *testing.T) {
	_, ok, err := Lookup(func() (Monitor, error) {
		return Monitor{Name: "ghost"}, nil
	})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLookupNilProber(t *testing.T) {
	_, ok, err := Lookup(nil)
	assert.NoError(t, err)
	assert.False(t, ok)
}
