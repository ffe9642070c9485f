package project

// BuildSystem identifies the build system a project is generated for.
// The set of supported build systems is fixed at compile time.
type BuildSystem string

const (
	// Gradle is the Gradle build system.
	Gradle BuildSystem = "gradle"
	// Maven is the Maven build system.
	Maven BuildSystem = "maven"
)

// ID returns the build system identifier as used in catalog build tags.
func (b BuildSystem) ID() string {
	return string(b)
}
