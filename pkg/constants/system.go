package constants

// Values shared by the settings store, the runners and the CLI

const (
	// Size units
	BinaryUnit  = 1024 // KiB, MiB, GiB
	DecimalUnit = 1000 // kB, MB, GB (si-unit setting)
)

// File permissions and modes
const (
	DefaultFileMode  = 0644 // settings and log files
	DefaultDirMode   = 0755 // configuration directories
	PrivateDirMode   = 0700 // trash directories
	SettingsFileName = "settings.yml"
	ConfigFileName   = "fmjob.yml"
)
