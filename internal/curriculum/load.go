package curriculum

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// bankFile is the YAML layout of a question bank document.
type bankFile struct {
	Stages    []Stage    `yaml:"stages"`
	Questions []Question `yaml:"questions"`
}

// Parse decodes a YAML bank document and validates it. When the document
// omits the stages section, the built-in catalog is used.
func Parse(data []byte) (*Curriculum, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	stages := f.Stages
	if len(stages) == 0 {
		stages = seedStages
	}
	return New(stages, f.Questions)
}

// LoadFile reads and validates a YAML bank file.
func LoadFile(path string) (*Curriculum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes a curriculum as a YAML bank document.
func Marshal(c *Curriculum) ([]byte, error) {
	return yaml.Marshal(bankFile{
		Stages:    c.stages,
		Questions: c.questions,
	})
}
