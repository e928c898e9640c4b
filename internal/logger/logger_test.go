package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureSplitsByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := logrus.New()
	Configure(l, &out, &errOut)
	l.SetLevel(logrus.DebugLevel)

	l.Info("drawing spiral")
	l.Debug("points computed")
	l.Warn("preferences unreadable")
	l.Error("window failed")

	assert.Contains(t, out.String(), "drawing spiral")
	assert.Contains(t, out.String(), "points computed")
	assert.NotContains(t, out.String(), "preferences unreadable")
	assert.Contains(t, errOut.String(), "preferences unreadable")
	assert.Contains(t, errOut.String(), "window failed")
	assert.NotContains(t, errOut.String(), "drawing spiral")
}

func TestConfigureRespectsLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := logrus.New()
	Configure(l, &out, &errOut)
	l.SetLevel(logrus.InfoLevel)

	l.Debug("hidden")
	assert.Empty(t, out.String())
}

func TestSetLevel(t *testing.T) {
	prev := logrus.GetLevel()
	defer logrus.SetLevel(prev)

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.Error(t, SetLevel("loud"))
}
