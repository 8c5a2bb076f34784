package config

// DefaultLogFile is the persistent run log, relative to the working directory.
const DefaultLogFile = "make_blank_docs.log"

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	if cfg.Policy == "" {
		cfg.Policy = PolicyStrict
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = DefaultLogFile
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}
