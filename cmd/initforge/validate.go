package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/initforge/initforge/internal/convert"
	"github.com/initforge/initforge/internal/metadata"
	"github.com/initforge/initforge/internal/project"
)

var validateMetadataSource string

var validateCmd = &cobra.Command{
	Use:   "validate <request.json>",
	Short: "Validate a project request against the metadata catalog",
	Long: `Read a project-generation request from a JSON file (or stdin when the
argument is "-") and convert it, printing the resolved project description
or the validation failure.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readRequest(args[0])
		if err != nil {
			return err
		}

		catalog, err := loadCatalog(cmd, validateMetadataSource)
		if err != nil {
			return err
		}

		req := project.NewRequest(catalog)
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("request is not valid JSON: %w", err)
		}

		desc, err := convert.NewConverter().Convert(req, catalog)
		if err != nil {
			var invalid *convert.InvalidRequestError
			if errors.As(err, &invalid) {
				red := color.New(color.FgRed, color.Bold)
				red.Fprintln(cmd.ErrOrStderr(), "✗ invalid project request")
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", invalid.Error())
				os.Exit(1)
			}
			return err
		}

		green := color.New(color.FgGreen, color.Bold)
		green.Fprintln(cmd.OutOrStdout(), "✓ request is valid")

		out, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateMetadataSource, "metadata", "",
		"metadata source (file path or URL); defaults to the built-in catalog")
}

func readRequest(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to read request: %w", err)
	}
	return data, nil
}

func loadCatalog(cmd *cobra.Command, source string) (*metadata.Catalog, error) {
	if source == "" {
		return metadata.NewCatalogBuilder().WithDefaults().Build(), nil
	}
	loader := metadata.NewLoader(source, zap.NewNop())
	return loader.Load(cmd.Context())
}
