package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/cambium/pkg/dto"
	"github.com/aretw0/cambium/pkg/schema"
)

var (
	schemaPath string
	inputPath  string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an input document against a DTO schema",
	Long:  `Builds the DTO definition from a YAML schema file, runs the validating factory over a YAML input document, and reports every violated field.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(schemaPath, inputPath); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Input is valid! ✅")
	},
}

func init() {
	validateCmd.Flags().StringVar(&schemaPath, "schema", "", "Path to the YAML schema definition")
	validateCmd.Flags().StringVar(&inputPath, "input", "", "Path to the YAML input document")
	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(validateCmd)
}

// schemaFile is the on-disk shape of a DTO definition.
type schemaFile struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Fields []struct {
		Name     string `yaml:"name"`
		Type     string `yaml:"type"`
		Optional bool   `yaml:"optional"`
	} `yaml:"fields"`
}

func runValidate(schemaPath, inputPath string) error {
	def, err := loadDefinition(schemaPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	if _, err := def.New(values); err != nil {
		return err
	}
	return nil
}

func loadDefinition(path string) (*dto.Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	var sf schemaFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if sf.Name == "" {
		return nil, fmt.Errorf("schema: name is required")
	}

	kind := dto.Kind(sf.Kind)
	if kind != dto.KindCreate && kind != dto.KindUpdate {
		return nil, fmt.Errorf("schema: kind must be %q or %q, got %q", dto.KindCreate, dto.KindUpdate, sf.Kind)
	}

	fields := make(schema.Fields, 0, len(sf.Fields))
	seen := make(map[string]bool, len(sf.Fields))
	for _, f := range sf.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema: field with empty name")
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("schema: duplicate field %q", f.Name)
		}
		seen[f.Name] = true

		typ, err := schema.ParseType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("schema: field %q: %w", f.Name, err)
		}
		fields = append(fields, schema.Field{Name: f.Name, Type: typ, Optional: f.Optional})
	}

	return dto.Define(sf.Name, kind, fields), nil
}
