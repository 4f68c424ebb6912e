// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business
// logic. Services receive this container instead of reaching for ambient
// singletons, so tests can substitute fakes without touching global state.
type Dependencies struct {
	// Cache provides caching functionality. May be nil; services degrade to
	// uncached operation.
	Cache Cache

	// HTTPClient provides HTTP request functionality.
	HTTPClient HTTPClient

	// Logger provides structured logging.
	Logger Logger
}
