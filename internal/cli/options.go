package cli

import (
	"io"
	"os"
)

// Options carries the persistent flags shared by every command.
// Empty fields fall back to the config file.
type Options struct {
	ConfigPath string
	// ConfigRequired fails when ConfigPath does not exist (set when --config is explicit).
	ConfigRequired bool
	DataDir        string
	RedisAddr      string
	Debug          bool

	Stdout io.Writer
	Stderr io.Writer
}

// RunOptions configures the run command.
type RunOptions struct {
	Options
	Format string
	Names  []string
	// Banner prints the banner before the results.
	Banner bool
}

// ServeOptions configures the serve command.
type ServeOptions struct {
	Options
	Addr string
}

func (o Options) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o Options) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}
