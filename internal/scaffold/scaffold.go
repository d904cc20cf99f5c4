package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/minions-dev/create-minions-bundle/internal/platform"
	"github.com/minions-dev/create-minions-bundle/internal/render"
)

//go:embed scaffolds
var scaffoldFS embed.FS

const templateRoot = "scaffolds/bundle"

// Options controls how Generate writes the project.
type Options struct {
	// DryRun renders every file but writes nothing.
	DryRun bool
	// Templates replaces the embedded template tree. Paths are relative to
	// its root.
	Templates fs.FS
	Logger    *zap.Logger
}

// File is one rendered output file.
type File struct {
	Path       string // slash-separated, relative to the output directory
	Content    []byte
	Executable bool
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Dirs      []string
	Warnings  []string
	DryRun    bool
}

// Templates returns the embedded bundle template tree.
func Templates() fs.FS {
	sub, err := fs.Sub(scaffoldFS, templateRoot)
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return sub
}

// Plan renders every template with vars. Output is sorted by path.
// Warnings list placeholders that had no value.
func Plan(templates fs.FS, vars render.Variables) ([]File, []string, error) {
	var files []File
	var warnings []string

	err := fs.WalkDir(templates, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		raw, err := fs.ReadFile(templates, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}
		out := OutputPath(p)
		content := string(raw)
		for _, name := range render.Unresolved(content, vars) {
			warnings = append(warnings, fmt.Sprintf("%s: unresolved placeholder {{%s}}", out, name))
		}
		files = append(files, File{
			Path:       out,
			Content:    []byte(render.Render(content, vars)),
			Executable: platform.IsScript(out),
		})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, warnings, nil
}

// OutputPath maps a template path to the path it is written to.
func OutputPath(templatePath string) string {
	parts := strings.Split(strings.TrimSuffix(templatePath, ".tmpl"), "/")
	for i, part := range parts {
		if strings.HasPrefix(part, "dot_") {
			parts[i] = "." + strings.TrimPrefix(part, "dot_")
		}
	}
	return path.Join(parts...)
}

// Generate renders the bundle templates with vars and writes them under
// outputDir. The directory must not exist or be empty.
func Generate(vars render.Variables, outputDir string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	templates := opts.Templates
	if templates == nil {
		templates = Templates()
	}

	files, warnings, err := Plan(templates, vars)
	if err != nil {
		return nil, err
	}
	log.Debug("rendered templates", zap.Int("files", len(files)), zap.Int("warnings", len(warnings)))

	result := &Result{
		OutputDir: outputDir,
		Warnings:  warnings,
		DryRun:    opts.DryRun,
	}

	targets := make([]string, len(files))
	for i, f := range files {
		target, err := resolve(outputDir, f.Path)
		if err != nil {
			return nil, err
		}
		targets[i] = target
		result.Files = append(result.Files, f.Path)
	}
	result.Dirs = parentDirs(result.Files)

	if opts.DryRun {
		return result, nil
	}

	// Check for existing files to prevent accidental overwrites.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	for _, dir := range result.Dirs {
		if err := os.MkdirAll(filepath.Join(outputDir, filepath.FromSlash(dir)), 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	for i, f := range files {
		if err := os.WriteFile(targets[i], f.Content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Path, err)
		}
		if f.Executable {
			if err := platform.MakeExecutable(targets[i]); err != nil {
				return nil, fmt.Errorf("marking %s executable: %w", f.Path, err)
			}
		}
		log.Debug("wrote file", zap.String("path", f.Path), zap.Int("bytes", len(f.Content)))
	}

	return result, nil
}

// resolve joins rel onto dir and rejects paths that escape dir.
func resolve(dir, rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == "." {
		return "", fmt.Errorf("invalid target path: %s attempts to write outside project directory", rel)
	}

	full := filepath.Join(dir, clean)
	inside, err := filepath.Rel(dir, full)
	if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid target path: %s attempts to write outside project directory", rel)
	}
	return full, nil
}

// parentDirs lists every directory that files live in, parents first.
func parentDirs(files []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		var chain []string
		for d := path.Dir(f); d != "." && d != "/"; d = path.Dir(d) {
			chain = append(chain, d)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			if !seen[chain[i]] {
				seen[chain[i]] = true
				dirs = append(dirs, chain[i])
			}
		}
	}
	sort.Strings(dirs)
	return dirs
}
