package domain

// IssueKind names one of the closed set of issue categories.
type IssueKind string

const (
	KindInvalidFilename IssueKind = "invalid_filename"
	KindMissingFile     IssueKind = "missing_file"
)

// InvalidFilename records a file whose name does not match the convention.
type InvalidFilename struct {
	Path         string `json:"path"`
	OriginalName string `json:"original_name"`
	Suggestion   string `json:"suggestion"`
	Reason       string `json:"reason"`
}

func (InvalidFilename) Kind() IssueKind { return KindInvalidFilename }

// MissingFile records a required root-level file that does not exist.
type MissingFile struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

func (MissingFile) Kind() IssueKind { return KindMissingFile }

// IssueSet groups issues by kind, each in discovery order.
// Empty kinds are omitted from the JSON form.
type IssueSet struct {
	InvalidFilenames []InvalidFilename `json:"invalid_filenames,omitempty"`
	MissingFiles     []MissingFile     `json:"missing_files,omitempty"`
}

// Kinds returns the non-empty issue kinds in a stable order.
func (s *IssueSet) Kinds() []IssueKind {
	var kinds []IssueKind
	if len(s.InvalidFilenames) > 0 {
		kinds = append(kinds, KindInvalidFilename)
	}
	if len(s.MissingFiles) > 0 {
		kinds = append(kinds, KindMissingFile)
	}
	return kinds
}

// Count returns the number of issues of the given kind.
func (s *IssueSet) Count(kind IssueKind) int {
	switch kind {
	case KindInvalidFilename:
		return len(s.InvalidFilenames)
	case KindMissingFile:
		return len(s.MissingFiles)
	default:
		return 0
	}
}

func (s *IssueSet) Total() int {
	return len(s.InvalidFilenames) + len(s.MissingFiles)
}

func (s *IssueSet) IsEmpty() bool { return s.Total() == 0 }

// HasMissing reports whether file is already queued as missing.
func (s *IssueSet) HasMissing(file string) bool {
	for _, m := range s.MissingFiles {
		if m.File == file {
			return true
		}
	}
	return false
}
