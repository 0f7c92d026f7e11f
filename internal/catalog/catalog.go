package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//go:embed plans/*.yaml
var builtinFS embed.FS

// BuiltinSource marks plans shipped inside the binary.
const BuiltinSource = "builtin"

// DefaultPlan is the plan started when none is named.
const DefaultPlan = "push-day"

// ErrPlanNotFound is returned when no plan matches a selector.
var ErrPlanNotFound = errors.New("plan not found")

// Entry is one listed plan. Index is the 1-based selector shown by `plan list`.
type Entry struct {
	Index  int
	Path   string
	Source string
	Schema *PlanSchema
}

// Catalog lists and resolves plans from a directory plus the built-in set.
// Plans in the directory shadow built-ins with the same id.
type Catalog struct {
	dir string
}

// New returns a catalog over dir. An empty or missing dir leaves only the
// built-in plans.
func New(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir returns the user plan directory.
func (c *Catalog) Dir() string { return c.dir }

// List returns every loadable plan. Files that fail to parse are skipped;
// `plan validate` reports them.
func (c *Catalog) List() ([]Entry, error) {
	var entries []Entry
	seen := make(map[string]bool)

	if c.dir != "" {
		files, err := planFiles(c.dir)
		if err != nil {
			return nil, fmt.Errorf("listing plans in %s: %w", c.dir, err)
		}
		for _, file := range files {
			schema, err := LoadPlanSchema(file)
			if err != nil {
				continue
			}
			entries = append(entries, Entry{Path: file, Source: file, Schema: schema})
			seen[planID(schema, file)] = true
		}
	}

	builtins, err := fs.Glob(builtinFS, "plans/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("listing builtin plans: %w", err)
	}
	sort.Strings(builtins)
	for _, name := range builtins {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading builtin plan %s: %w", name, err)
		}
		schema, err := ParsePlanSchema(data)
		if err != nil {
			return nil, fmt.Errorf("parsing builtin plan %s: %w", name, err)
		}
		if seen[planID(schema, name)] {
			continue
		}
		entries = append(entries, Entry{Path: name, Source: BuiltinSource, Schema: schema})
	}

	for i := range entries {
		entries[i].Index = i + 1
	}
	return entries, nil
}

// Resolve finds a plan by file path, file stem, filename, id or name
// (case-insensitive), or by its index from List, then validates and converts it.
func (c *Catalog) Resolve(selector string) (*Plan, error) {
	input := strings.TrimSpace(selector)
	if input == "" {
		input = DefaultPlan
	}

	if isPlanFile(input) {
		if _, err := os.Stat(input); err == nil {
			return LoadPlan(input)
		}
	}

	entries, err := c.List()
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entry := &entries[i]
		filename := path.Base(filepath.ToSlash(entry.Path))
		stem := strings.TrimSuffix(filename, path.Ext(filename))
		if strings.EqualFold(stem, input) ||
			strings.EqualFold(filename, input) ||
			strings.EqualFold(entry.Schema.ID, input) ||
			strings.EqualFold(entry.Schema.Name, input) {
			return entry.plan()
		}
	}

	if n, err := strconv.Atoi(input); err == nil {
		for i := range entries {
			if entries[i].Index == n {
				return entries[i].plan()
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrPlanNotFound, selector)
}

// LoadPlan reads, validates and converts a plan file.
func LoadPlan(path string) (*Plan, error) {
	schema, err := LoadPlanSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading plan %s: %w", path, err)
	}
	plan, err := build(schema)
	if err != nil {
		return nil, fmt.Errorf("loading plan %s: %w", path, err)
	}
	plan.Source = path
	return plan, nil
}

func (e *Entry) plan() (*Plan, error) {
	plan, err := build(e.Schema)
	if err != nil {
		return nil, fmt.Errorf("loading plan %s: %w", e.Path, err)
	}
	plan.Source = e.Source
	return plan, nil
}

func build(schema *PlanSchema) (*Plan, error) {
	if errs := ValidatePlanSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid plan: %w", errors.Join(errs...))
	}
	return Convert(schema)
}

func planFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

func planID(schema *PlanSchema, file string) string {
	if schema.ID != "" {
		return strings.ToLower(schema.ID)
	}
	base := path.Base(filepath.ToSlash(file))
	return strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
}

func isPlanFile(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}
