// Package logging builds named slog loggers that write to stderr and,
// optionally, a size-rotated file.
//
// The default logger is configured from GOSHARED_* environment variables:
//
//	GOSHARED_LOG_NAME              logger name (goshared)
//	GOSHARED_LOG_FILE              rotated file (/tmp/goshared.log)
//	GOSHARED_LOG_LEVEL             DEBUG, INFO, WARNING, ERROR (DEBUG)
//	GOSHARED_LOG_JSON              JSON records (false)
//	GOSHARED_MAX_LOG_SIZE          rotation size in bytes (10 MiB)
//	GOSHARED_MAX_LOG_FILES         rotated files kept (5)
//	GOSHARED_FILE_LOGGING_ENABLED  write the file at all (true)
//
// Programs that also read a config file merge it over the environment
// before calling Init:
//
//	file, _ := config.FromFile("goshared.yaml")
//	cfg := logging.ConfigFrom(config.Merge(config.FromEnv(logging.EnvPrefix, nil), file))
//	logger, err := logging.Init(cfg)
//
// Get returns one logger per name; loggers with the same file share one
// rotating writer.
package logging
