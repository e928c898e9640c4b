//go:build pprof

package main

import (
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

// cpuProfilePath can be overridden with SPIRAL_CPU_PROFILE.
const cpuProfilePath = "spiral-cpu.pprof"

func startProfiling() func() {
	path := cpuProfilePath
	if p := os.Getenv("SPIRAL_CPU_PROFILE"); p != "" {
		path = p
	}
	f, err := os.Create(path)
	if err != nil {
		logrus.WithError(err).Warn("could not create CPU profile")
		return func() {}
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		logrus.WithError(err).Warn("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	logrus.WithField("path", path).Info("writing CPU profile")

	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("could not close CPU profile")
		}
	}
}
