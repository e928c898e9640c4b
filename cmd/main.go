package main

import (
	"os"

	"github.com/primespiral/spiral/internal/cli"
	"github.com/primespiral/spiral/internal/logger"
	"github.com/primespiral/spiral/model"
	"github.com/sirupsen/logrus"
)

func main() {
	stopProfiling := startProfiling()
	cmd := cli.InitCLI()
	logger.SetupLogger()
	err := cmd.Execute()
	stopProfiling()

	code, cause := model.ExitCodeFromError(err)
	if code != model.NoError {
		if cause != nil {
			logrus.Error(cause)
		}
		os.Exit(int(code))
	}
}
