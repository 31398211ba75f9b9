package describe

import (
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// Tool is a tool description document.
type Tool struct {
	ID             string        `yaml:"id"`
	Name           string        `yaml:"name"`
	Version        string        `yaml:"version"`
	Description    string        `yaml:"description"`
	Command        string        `yaml:"command"`
	VersionCommand string        `yaml:"version_command"`
	Requirements   []Requirement `yaml:"requirements"`
	Inputs         []Param       `yaml:"inputs"`
	Outputs        []Output      `yaml:"outputs"`
	Tests          []Test        `yaml:"tests"`
	Help           string        `yaml:"help"`
	Citations      []Citation    `yaml:"citations"`
}

// Requirement is a runtime dependency: a package (name + version) or a
// container (image reference).
type Requirement struct {
	Type    string `yaml:"type"`
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Image   string `yaml:"image"`
}

// Param describes one input parameter.
type Param struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Argument string `yaml:"argument"`
	Label    string `yaml:"label"`
	Help     string `yaml:"help"`
	Optional bool   `yaml:"optional"`
	Default  Scalar `yaml:"default"`
	Min      string `yaml:"min"`
	Max      string `yaml:"max"`
}

// Output describes one output dataset. Filter, when present, is an
// expression deciding whether the output is produced.
type Output struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Label  string `yaml:"label"`
	Filter string `yaml:"filter"`
}

// Test describes one functional test: parameter settings and expected
// output values. Multiple expected values for one output are comma-joined
// after escaping.
type Test struct {
	Params  map[string]Scalar   `yaml:"params"`
	Expects map[string][]string `yaml:"expects"`
}

// Citation is a literature reference.
type Citation struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// Load reads one description document.
func Load(r io.Reader) (*Tool, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tool := &Tool{}
	if err := yaml.Unmarshal(d, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

// LoadFile reads one description document from path.
func LoadFile(path string) (*Tool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
