package repositories

// MirrorRepository abstracts the local git mirror of a tracked repository.
// It only inspects an existing clone; cloning and pulling belong to the
// surrounding service.
type MirrorRepository interface {
	// Head returns the commit hash the mirror's HEAD points at.
	Head(path string) (string, error)

	// OriginURL returns the URL of the mirror's origin remote.
	OriginURL(path string) (string, error)
}
