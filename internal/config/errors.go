package config

import "github.com/ayoisaiah/fittrack/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidFormat = &apperr.Error{
		Message: "unknown output format %q (expected text, table or json)",
	}

	errInvalidWorkers = &apperr.Error{
		Message: "workers must be between %d and %d, got %d",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q",
	}
)
