// Package prompts collects bundle metadata interactively. Values already
// known from the bundle file or flags are used as prompt defaults, and
// questions the file already answers are skipped.
package prompts

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/minions-dev/create-minions-bundle/internal/branding"
	"github.com/minions-dev/create-minions-bundle/internal/bundle"
)

// Licenses offered by the license prompt.
var Licenses = []string{"MIT", "Apache-2.0", "AGPL-3.0"}

// ErrAborted is returned when the user declines the final confirmation.
var ErrAborted = errors.New("aborted by user")

// Asker asks a single question and stores the answer in response.
type Asker interface {
	AskOne(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error
}

// Survey asks questions on the terminal.
type Survey struct {
	Opts []survey.AskOpt
}

// AskOne implements Asker.
func (s Survey) AskOne(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	return survey.AskOne(p, response, append(s.Opts, opts...)...)
}

// Request describes what is already known before prompting.
type Request struct {
	// Options holds values from the bundle file and flags. A non-empty
	// Name or Description means that question is not asked.
	Options bundle.ProjectOptions
	// GitHub is the --github flag, nil when it was not given.
	GitHub *bool
	// SkipConfirm skips the final "proceed" question.
	SkipConfirm bool
	// Out receives the configuration summary. Nil discards it.
	Out io.Writer
}

// Answers is the result of a prompt session.
type Answers struct {
	Options     bundle.ProjectOptions
	SetupGitHub bool
}

// ValidateBundleName checks the stricter naming rule applied to names
// typed at the prompt: the bundle prefix followed by lowercase letters,
// digits or hyphens.
func ValidateBundleName(name string) error {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(branding.NamePrefix()) + `[a-z0-9-]+$`)
	if !pattern.MatchString(name) {
		return fmt.Errorf("must start with %q followed by lowercase letters/numbers/hyphens", branding.NamePrefix())
	}
	return nil
}

func nameValidator(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a string answer")
	}
	return ValidateBundleName(s)
}

// SplitKeywords splits comma-separated input, trimming blanks.
func SplitKeywords(input string) []string {
	var out []string
	for _, k := range strings.Split(input, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// Run asks for every missing or adjustable value and returns the result.
func Run(a Asker, req Request) (*Answers, error) {
	opts := req.Options

	if opts.Name == "" {
		name := ""
		prompt := &survey.Input{
			Message: "Project name:",
			Default: branding.NamePrefix() + "example",
		}
		if err := a.AskOne(prompt, &name, survey.WithValidator(nameValidator)); err != nil {
			return nil, err
		}
		opts.Name = name
	}
	slug := bundle.Slug(opts.Name)

	if opts.Description == "" {
		if err := askString(a, "Short description:", bundle.DefaultDescription(slug), &opts.Description); err != nil {
			return nil, err
		}
	}
	if err := askString(a, "Author name:", opts.AuthorName, &opts.AuthorName); err != nil {
		return nil, err
	}
	if err := askString(a, "Author email:", opts.AuthorEmail, &opts.AuthorEmail); err != nil {
		return nil, err
	}
	if err := askString(a, "GitHub org/user:", opts.Org, &opts.Org); err != nil {
		return nil, err
	}

	license := opts.License
	if !contains(Licenses, license) {
		license = Licenses[0]
	}
	if err := a.AskOne(&survey.Select{
		Message: "License:",
		Options: Licenses,
		Default: license,
	}, &opts.License); err != nil {
		return nil, err
	}

	keywords := opts.Keywords
	if len(keywords) == 0 {
		keywords = bundle.DefaultKeywords(slug)
	}
	var keywordInput string
	if err := askString(a, "Keywords (comma-separated):", strings.Join(keywords, ", "), &keywordInput); err != nil {
		return nil, err
	}
	opts.Keywords = SplitKeywords(keywordInput)

	answers := &Answers{Options: opts}
	if req.GitHub != nil {
		answers.SetupGitHub = *req.GitHub
	} else if err := a.AskOne(&survey.Confirm{
		Message: "Setup GitHub repository? (requires gh CLI)",
		Default: false,
	}, &answers.SetupGitHub); err != nil {
		return nil, err
	}

	out := req.Out
	if out == nil {
		out = io.Discard
	}
	PrintSummary(out, answers)

	if req.SkipConfirm {
		return answers, nil
	}
	confirmed := false
	if err := a.AskOne(&survey.Confirm{
		Message: "Proceed with these settings?",
		Default: true,
	}, &confirmed); err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrAborted
	}
	return answers, nil
}

// PrintSummary writes the configuration the user is asked to confirm.
func PrintSummary(w io.Writer, a *Answers) {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	cyan := color.New(color.FgCyan)
	blue := color.New(color.FgBlue)
	green := color.New(color.FgGreen)

	o := a.Options
	setup := dim.Sprint("No")
	if a.SetupGitHub {
		setup = green.Sprint("Yes")
	}

	fmt.Fprintln(w)
	bold.Fprintln(w, "  📦 Bundle Configuration:")
	dim.Fprintln(w, "  ─────────────────────────────────────")
	fmt.Fprintf(w, "  Name:         %s\n", cyan.Sprint(o.Name))
	fmt.Fprintf(w, "  Description:  %s\n", o.Description)
	fmt.Fprintf(w, "  GitHub:       %s\n", blue.Sprintf("github.com/%s/%s", o.Org, o.Name))
	fmt.Fprintf(w, "  License:      %s\n", o.License)
	fmt.Fprintf(w, "  GitHub setup: %s\n", setup)
	fmt.Fprintln(w)
}

func askString(a Asker, message, def string, dst *string) error {
	return a.AskOne(&survey.Input{Message: message, Default: def}, dst)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
