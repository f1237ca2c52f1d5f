package gradle

import "github.com/seedctl/seedctl/internal/javabuild"

// Scope is a Gradle dependency configuration.
type Scope string

const (
	Implementation     Scope = "implementation"
	CompileOnly        Scope = "compileOnly"
	RuntimeOnly        Scope = "runtimeOnly"
	TestImplementation Scope = "testImplementation"
)

// Scopes lists every configuration a dependency can be declared in.
var Scopes = []Scope{Implementation, CompileOnly, RuntimeOnly, TestImplementation}

// ScopeOf returns the configuration used for a dependency scope.
func ScopeOf(scope javabuild.DependencyScope) Scope {
	switch scope {
	case javabuild.ScopeTest:
		return TestImplementation
	case javabuild.ScopeProvided:
		return CompileOnly
	case javabuild.ScopeRuntime:
		return RuntimeOnly
	default:
		return Implementation
	}
}
