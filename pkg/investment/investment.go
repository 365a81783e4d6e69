package investment

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the request file name looked up by LoadProject.
const ProjectFile = "investment.yaml"

// Load reads an investment request from a YAML file.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	return Parse(data)
}

// Parse decodes an investment request from YAML bytes.
func Parse(data []byte) (*Request, error) {
	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request YAML: %w", err)
	}
	return &req, nil
}

// LoadProject loads the request from a project directory.
// It looks for investment.yaml in the given directory.
func LoadProject(projectDir string) (*Request, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// LoadPath accepts either a YAML file or a project directory.
func LoadPath(path string) (*Request, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}
	if info.IsDir() {
		return LoadProject(path)
	}
	return Load(path)
}
