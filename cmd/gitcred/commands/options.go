package commands

import "github.com/systmms/gitcred/internal/logging"

// Options carries state shared by all commands. The logger is populated
// by the root command once the global flags are parsed.
type Options struct {
	Logger *logging.Logger

	// Workdir anchors the repository-local git config scopes. Empty means
	// the current directory.
	Workdir string
}

func (o *Options) logger() *logging.Logger {
	if o.Logger == nil {
		return logging.New(false, true)
	}
	return o.Logger
}
