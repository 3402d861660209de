package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/deary/internal/staging"
	"github.com/PolarWolf314/deary/internal/store"
)

// CheckStatus represents the result status of a health check.
type CheckStatus int

const (
	CheckPass CheckStatus = iota
	CheckWarning
	CheckError
)

// String returns a string representation of CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarning:
		return "warning"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for CheckStatus.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult holds the result of a single health check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// DoctorResult holds the complete result of the doctor workflow.
type DoctorResult struct {
	Checks      []CheckResult `json:"checks"`
	Summary     DoctorSummary `json:"summary"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

// DoctorSummary holds counts of checks by status.
type DoctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// Doctor runs health checks on the journal and its tools:
//   - the repository opens
//   - the recipient file is present
//   - gpg and the editor can be found
//   - the staging directory is memory-backed
//   - no partial ciphertext was left behind
//   - the working directory matches the last commit
func (e *Engine) Doctor(ctx context.Context) (*DoctorResult, error) {
	st, openErr := e.open()

	results := []CheckResult{e.checkRepository(openErr)}
	if openErr == nil {
		results = append(results, checkRecipient(st))
	}
	results = append(results,
		e.checkTool("gpg", e.cipher.Check()),
		e.checkTool("Editor", e.editor.Check()),
		e.checkStaging(),
	)
	if openErr == nil {
		results = append(results, checkPartials(st), checkPending(st))
	}

	var suggestions []string
	seen := make(map[string]bool)
	for _, result := range results {
		if result.Suggestion != "" && result.Status != CheckPass && !seen[result.Suggestion] {
			suggestions = append(suggestions, result.Suggestion)
			seen[result.Suggestion] = true
		}
	}

	return &DoctorResult{
		Checks:      results,
		Summary:     calculateDoctorSummary(results),
		Suggestions: suggestions,
	}, nil
}

func (e *Engine) checkRepository(err error) CheckResult {
	if err != nil {
		return CheckResult{
			Name:       "Journal repository",
			Status:     CheckError,
			Message:    err.Error(),
			Suggestion: "Run 'deary init <key-id>' to create the journal",
		}
	}
	return CheckResult{
		Name:    "Journal repository",
		Status:  CheckPass,
		Message: "Repository at " + e.repoPath,
	}
}

func checkRecipient(st *store.Store) CheckResult {
	recipient, err := st.RecipientID()
	if err != nil {
		return CheckResult{
			Name:       "Recipient",
			Status:     CheckError,
			Message:    err.Error(),
			Suggestion: "Restore " + store.RecipientFile + " from the history with 'git checkout'",
		}
	}
	if recipient == "" {
		return CheckResult{
			Name:       "Recipient",
			Status:     CheckError,
			Message:    store.RecipientFile + " is empty",
			Suggestion: "Restore " + store.RecipientFile + " from the history with 'git checkout'",
		}
	}
	return CheckResult{
		Name:    "Recipient",
		Status:  CheckPass,
		Message: "Entries are encrypted to " + recipient,
	}
}

func (e *Engine) checkTool(name string, err error) CheckResult {
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    err.Error(),
			Suggestion: "Install " + strings.ToLower(name) + " or set its path in the config file",
		}
	}
	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: name + " found",
	}
}

func (e *Engine) checkStaging() CheckResult {
	if !staging.InMemory(e.staging.Dir) {
		return CheckResult{
			Name:       "Staging directory",
			Status:     CheckWarning,
			Message:    e.staging.Dir + " is not memory-backed; plaintext may reach disk while editing",
			Suggestion: "Set [staging] dir to a tmpfs mount such as /dev/shm",
		}
	}
	return CheckResult{
		Name:    "Staging directory",
		Status:  CheckPass,
		Message: e.staging.Dir + " is memory-backed",
	}
}

func checkPartials(st *store.Store) CheckResult {
	partials, err := findPartials(st)
	if err != nil {
		return CheckResult{
			Name:    "Partial files",
			Status:  CheckError,
			Message: err.Error(),
		}
	}
	if len(partials) > 0 {
		return CheckResult{
			Name:       "Partial files",
			Status:     CheckWarning,
			Message:    fmt.Sprintf("Found %d partial ciphertext file(s) from an interrupted run", len(partials)),
			Suggestion: "Run 'deary clean' to remove them",
		}
	}
	return CheckResult{
		Name:    "Partial files",
		Status:  CheckPass,
		Message: "No partial files",
	}
}

func checkPending(st *store.Store) CheckResult {
	pending, err := st.Pending()
	if err != nil {
		return CheckResult{
			Name:    "Working directory",
			Status:  CheckError,
			Message: err.Error(),
		}
	}

	var changed []string
	for _, path := range pending {
		if !strings.HasPrefix(path, partialPrefix) {
			changed = append(changed, path)
		}
	}
	if len(changed) > 0 {
		return CheckResult{
			Name:       "Working directory",
			Status:     CheckWarning,
			Message:    fmt.Sprintf("%d path(s) differ from the last commit: %s", len(changed), strings.Join(changed, ", ")),
			Suggestion: "Inspect the journal with 'git status' and commit or restore the changes",
		}
	}
	return CheckResult{
		Name:    "Working directory",
		Status:  CheckPass,
		Message: "Matches the last commit",
	}
}

// calculateDoctorSummary calculates the counts of checks by status.
func calculateDoctorSummary(results []CheckResult) DoctorSummary {
	var summary DoctorSummary
	for _, result := range results {
		switch result.Status {
		case CheckPass:
			summary.Passed++
		case CheckWarning:
			summary.Warnings++
		case CheckError:
			summary.Errors++
		}
	}
	return summary
}
