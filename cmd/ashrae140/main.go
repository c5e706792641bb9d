// Package main provides the CLI entry point for ashrae140-go.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/models"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/parser"
)

var (
	outputPath string
	pretty     bool
	schemaPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ashrae140 [submittal.xlsx]",
		Short: "Extract ASHRAE Standard 140 result tables from submittal workbooks",
		Long: `ashrae140-go classifies a submittal workbook by its file name, extracts
the fixed result regions for that report section, and outputs the merged
result mapping as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "YAML file overriding the builtin region schema")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// report is the JSON shape written by the CLI.
type report struct {
	Section  parser.Section           `json:"section"`
	Software ashrae140.Identification `json:"software"`
	Data     models.Mapping           `json:"data"`
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := ashrae140.DefaultOptions()
	opts.Logger = logger
	if schemaPath != "" {
		schema, err := loadSchemaFile(schemaPath)
		if err != nil {
			return fmt.Errorf("load schema override: %w", err)
		}
		opts.Schema = schema
	}

	res, err := ashrae140.Process(inputPath, opts)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	out := report{Section: res.Section, Software: res.Software, Data: res.Data}
	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(out, "", "  ")
	} else {
		jsonData, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
	}
}

// schemaFile is the YAML layout of a region schema override. Regions are
// extracted in file order.
type schemaFile struct {
	Regions []regionEntry `yaml:"regions" validate:"required,min=1,dive"`
}

type regionEntry struct {
	Name     string `yaml:"name" validate:"required"`
	Sheet    string `yaml:"sheet" validate:"required"`
	SkipRows int    `yaml:"skip_rows" validate:"gte=0"`
	Columns  string `yaml:"columns" validate:"required"`
	Rows     int    `yaml:"rows" validate:"gt=0"`
	Raw      bool   `yaml:"raw"`
}

// loadSchemaFile reads and validates a YAML schema override. The pipeline
// itself uses an override verbatim, so the well-formedness checks happen
// here, on the caller's side of that contract.
func loadSchemaFile(path string) (*parser.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf schemaFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validator.New().Struct(&sf); err != nil {
		return nil, fmt.Errorf("invalid schema file %s: %w", path, err)
	}
	schema := parser.NewSchema()
	for _, r := range sf.Regions {
		schema.Add(r.Name, parser.RegionDescriptor{
			Sheet:    r.Sheet,
			SkipRows: r.SkipRows,
			Columns:  r.Columns,
			NumRows:  r.Rows,
			Raw:      r.Raw,
		})
	}
	return schema, nil
}
