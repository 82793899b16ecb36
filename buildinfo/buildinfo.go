package buildinfo

import "fmt"

var (
	// GitCommit is set by govvv at build time.
	GitCommit = "n/a"
	// GitBranch is set by govvv at build time.
	GitBranch = "n/a"
	// BuildDate is set by govvv at build time.
	BuildDate = "n/a"
	// Version is set by govvv at build time.
	Version = "n/a"
)

// Summary provides a summary of git information in the binary.
type Summary struct {
	GitCommit string `json:"git_commit"`
	GitBranch string `json:"git_branch"`
	BuildDate string `json:"build_date"`
	Version   string `json:"version"`
}

// GetSummary returns a summary of git information.
func GetSummary() Summary {
	return Summary{
		GitCommit: GitCommit,
		GitBranch: GitBranch,
		BuildDate: BuildDate,
		Version:   Version,
	}
}

// String renders the summary for startup logs and the toolkit version command.
func (s Summary) String() string {
	return fmt.Sprintf("%s (%s@%s, built %s)", s.Version, s.GitBranch, s.GitCommit, s.BuildDate)
}
