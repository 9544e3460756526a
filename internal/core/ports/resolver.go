package ports

// SourceResolver defines the interface for resolving target source patterns.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type SourceResolver interface {
	// ResolveSources expands the given patterns relative to root into a sorted
	// list of absolute file paths. "**" matches any number of directories.
	ResolveSources(patterns []string, root string) ([]string, error)
}
