package config

import "os"

// FromEnv returns the defaults overridden by any GITFETCH_* variables set in
// the environment. Flags are applied on top by the caller.
func FromEnv() Options {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Options {
	opts := Default()

	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(&opts.Host, EnvHost)
	set(&opts.TemplatesDir, EnvTemplatesDir)
	set(&opts.LogLevel, EnvLogLevel)
	set(&opts.LogFormat, EnvLogFormat)
	set(&opts.LogFile, EnvLogFile)

	return opts
}
