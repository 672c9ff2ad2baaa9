package scaffold

// Step names a reported unit of work.
type Step string

// StepStructure is reported around directory creation; artifact steps use
// their ArtifactKind.
const StepStructure Step = "structure"

// Reporter receives progress notifications from the Orchestrator.
type Reporter interface {
	StepStarted(step Step)
	// StepDetail carries the Angular CLI command line of a delegated step
	// before it runs.
	StepDetail(step Step, detail string)
	StepSucceeded(step Step, files []string)
	StepFailed(step Step, err error)
	Summary(report *Report)
}

// nopReporter discards all notifications.
type nopReporter struct{}

func (nopReporter) StepStarted(Step)             {}
func (nopReporter) StepDetail(Step, string)      {}
func (nopReporter) StepSucceeded(Step, []string) {}
func (nopReporter) StepFailed(Step, error)       {}
func (nopReporter) Summary(*Report)              {}
