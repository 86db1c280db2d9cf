package domain

// CommitMessage is used for every automated commit.
const CommitMessage = "Auto-heal: Fix file naming and project structure issues"

// RenamedFile records one completed rename.
type RenamedFile struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// HealingReport accumulates the outcome of one heal run.
type HealingReport struct {
	RenamedFiles []RenamedFile `json:"renamed_files"`
	CreatedFiles []string      `json:"created_files"`
	Errors       []string      `json:"errors"`
}

func (r *HealingReport) HasErrors() bool { return len(r.Errors) > 0 }

// Changed reports whether the run touched the filesystem.
func (r *HealingReport) Changed() bool {
	return len(r.RenamedFiles) > 0 || len(r.CreatedFiles) > 0
}

// RunStatus is the overall outcome of a pipeline run.
type RunStatus string

const (
	RunHealthy RunStatus = "healthy"
	RunDryRun  RunStatus = "dry_run"
	RunHealed  RunStatus = "healed"
)

// RunOptions controls a single pipeline run.
type RunOptions struct {
	DryRun bool   `json:"dry_run"`
	Commit bool   `json:"commit"`
	Token  string `json:"-"`
}

// RunResult is everything one pipeline run produced.
type RunResult struct {
	Status  RunStatus      `json:"status"`
	Issues  *IssueSet      `json:"issues"`
	Report  *HealingReport `json:"report,omitempty"`
	Publish *PublishResult `json:"publish,omitempty"`
}
