package scaffold

// ArtifactResult is the outcome of one artifact step.
type ArtifactResult struct {
	Kind        ArtifactKind
	Files       []string // project-relative paths written by modularizer
	Overwritten []string // subset of Files that replaced existing content
	Command     string   // Angular CLI command line, when delegated
	Err         error
}

// OK reports whether the artifact was generated.
func (r ArtifactResult) OK() bool {
	return r.Err == nil
}

// Report summarizes a generation run.
type Report struct {
	Module      Module
	Options     Options
	CreatedDirs []string
	Artifacts   []ArtifactResult
	Trace       []State
}

// Result returns the result for kind and whether that step ran.
func (r *Report) Result(kind ArtifactKind) (ArtifactResult, bool) {
	for _, a := range r.Artifacts {
		if a.Kind == kind {
			return a, true
		}
	}
	return ArtifactResult{}, false
}

// Failed returns the artifact results that carry an error.
func (r *Report) Failed() []ArtifactResult {
	var failed []ArtifactResult
	for _, a := range r.Artifacts {
		if !a.OK() {
			failed = append(failed, a)
		}
	}
	return failed
}

// Overwritten returns every file that replaced existing content.
func (r *Report) Overwritten() []string {
	var files []string
	for _, a := range r.Artifacts {
		files = append(files, a.Overwritten...)
	}
	return files
}

func (r *Report) enter(s State) {
	r.Trace = append(r.Trace, s)
}
