package domain

// PublishStatus classifies the outcome of a publish attempt.
type PublishStatus string

const (
	PublishNoChanges  PublishStatus = "no_changes"
	PublishSuccess    PublishStatus = "success"
	PublishPushFailed PublishStatus = "push_failed"
	PublishError      PublishStatus = "error"
)

// PublishResult is returned by RepoPublisher. Failures are reported through
// Status and Error, never as a Go error.
type PublishResult struct {
	Status PublishStatus `json:"status"`
	Commit string        `json:"commit,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// PublishRequest carries what a publisher needs besides the project root.
type PublishRequest struct {
	Message string
	Token   string
	Commit  CommitConfig
}
