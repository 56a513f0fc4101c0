package pipeline

import "os"

// Mode distinguishes development from production builds.
type Mode int

const (
	ModeDevelopment Mode = iota
	ModeProduction
)

// EnvVar is the environment variable hosts set to signal a production
// build.
const EnvVar = "COMPONENTS_ENV"

// GetMode reads the build mode from the environment. Anything other than
// "production" is a development build.
func GetMode() Mode {
	if os.Getenv(EnvVar) == "production" {
		return ModeProduction
	}
	return ModeDevelopment
}

// IsProduction reports whether the current build runs in production mode.
func IsProduction() bool {
	return GetMode() == ModeProduction
}
