// Package hosting creates the GitHub repository for a freshly generated
// bundle using the git and gh command-line tools.
package hosting

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner executes an external command in dir and returns its combined output.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Repo identifies the repository to create.
type Repo struct {
	Org         string
	Name        string
	Description string
}

// FullName returns "org/name".
func (r Repo) FullName() string {
	return r.Org + "/" + r.Name
}

// Step is one command in the setup sequence.
type Step struct {
	Name string
	Args []string
}

// Steps returns the commands Setup runs, in order.
func Steps(repo Repo, commitMessage string) []Step {
	create := []string{"repo", "create", repo.FullName(), "--public", "--source", ".", "--push"}
	if repo.Description != "" {
		create = append(create, "--description", repo.Description)
	}
	return []Step{
		{Name: "git", Args: []string{"init", "-b", "main"}},
		{Name: "git", Args: []string{"add", "-A"}},
		{Name: "git", Args: []string{"commit", "-m", commitMessage}},
		{Name: "gh", Args: create},
	}
}

// Setup initializes a git repository in dir, commits the generated files and
// creates plus pushes the GitHub repository. It stops at the first failing
// command.
func Setup(ctx context.Context, r Runner, dir string, repo Repo, logger *zap.Logger) error {
	if repo.Org == "" || repo.Name == "" {
		return fmt.Errorf("repository owner and name are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, step := range Steps(repo, "chore: initial scaffold") {
		logger.Debug("running", zap.String("cmd", step.Name), zap.Strings("args", step.Args))
		out, err := r.Run(ctx, dir, step.Name, step.Args...)
		if err != nil {
			return fmt.Errorf("%s %s: %w\n%s", step.Name, step.Args[0], err, strings.TrimSpace(string(out)))
		}
	}
	return nil
}
