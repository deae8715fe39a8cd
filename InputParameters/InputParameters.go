package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type ExtractParameters struct {
	Title            string `yaml:"Title"`
	InputDir         string `yaml:"InputDir"`
	MaterialAgnostic bool   `yaml:"MaterialAgnostic"`
}

func (ep *ExtractParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ep)
}

func (ep *ExtractParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ep.Title)
	fmt.Printf("[%s]\t\t= InputDir\n", ep.InputDir)
	fmt.Printf("[%v]\t\t= MaterialAgnostic\n", ep.MaterialAgnostic)
}
