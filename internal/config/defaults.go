package config

const (
	defaultProjectsDir       = "."
	defaultOutputDir         = "~/.local/share/clipcut/output"
	defaultLogDir            = "~/.local/share/clipcut/logs"
	defaultProjectExtension  = ".kdenlive"
	defaultAssetBinID        = "main_bin"
	defaultMediaSourcePrefix = "chain"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectsDir: defaultProjectsDir,
			OutputDir:   defaultOutputDir,
			LogDir:      defaultLogDir,
		},
		Projects: Projects{
			Extension:         defaultProjectExtension,
			AssetBinID:        defaultAssetBinID,
			MediaSourcePrefix: defaultMediaSourcePrefix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
