package formats

import (
	"encoding/json"
	"hotkeyc/internal/core/app"

	"gopkg.in/yaml.v3"
)

type YAMLGenerator struct {
	table *app.Table
}

func NewYAMLGenerator(t *app.Table) *YAMLGenerator {
	return &YAMLGenerator{table: t}
}

func (g *YAMLGenerator) Generate() (string, error) {
	data, err := yaml.Marshal(NewDocument(g.table))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type JSONGenerator struct {
	table *app.Table
}

func NewJSONGenerator(t *app.Table) *JSONGenerator {
	return &JSONGenerator{table: t}
}

func (g *JSONGenerator) Generate() (string, error) {
	data, err := json.MarshalIndent(NewDocument(g.table), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
