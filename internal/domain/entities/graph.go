package entities

// DependencyGraph is the raw input supplied by the graph collaborator: the
// ordered dependency occurrences of a repository at a specific commit,
// before any scoring or classification.
type DependencyGraph struct {
	Repository   string             `json:"repository"`
	Commit       string             `json:"commit"`
	Dependencies []DependencyRecord `json:"dependencies"`
}
