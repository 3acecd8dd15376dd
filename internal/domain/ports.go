package domain

// FixtureLoader reads a golden test corpus.
type FixtureLoader interface {
	Load(path string) (*Corpus, error)
}

// ReportWriter persists a finished run and returns where it was written.
type ReportWriter interface {
	Write(report *TestReport) (string, error)
}

// ConfigLoader reads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// GitInfo resolves the commit a run was made against.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(projectPath string) (string, error)
}

// RequestLoader reads a single-asset validation request.
type RequestLoader interface {
	LoadRequest(path string) (*ValidationRequest, error)
}
