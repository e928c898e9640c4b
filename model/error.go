package model

import "fmt"

// ExitCode is the process exit status the application ends with.
type ExitCode int

func (e ExitCode) String() string {
	return fmt.Sprintf("Exit code %d", e)
}

func (e ExitCode) Error() string {
	return e.String()
}

const (
	NoError ExitCode = iota
	UnknownError
	ConfigError
	NoDisplay
)
