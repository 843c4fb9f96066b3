package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/pegasus-wms/tc/internal/errors"
	"github.com/pegasus-wms/tc/internal/output"
	"github.com/pegasus-wms/tc/pkg/catalog"
)

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	var (
		outputFlag string
		outFlag    string
	)

	cmd := &cobra.Command{
		Use:   "convert <catalog>",
		Short: "Convert a catalog between YAML and JSON",
		Long: `Convert a transformation catalog between YAML and JSON.

The input format is detected from the file extension. Without --output
the catalog is converted to the other format; without --out the result
lands next to the input with the target extension.

The catalog is loaded into the model and written back out, so the
output is always normalized: entries sorted, defaults dropped,
comments not carried over.

Examples:
  # tc.yml -> tc.json
  tc convert tc.yml

  # Explicit target format and path
  tc convert tc.json -o yaml --out catalogs/tc.yml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args, outputFlag, outFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "",
		"Target format: yaml or json (default: the opposite of the input)")
	cmd.Flags().StringVar(&outFlag, "out", "",
		"Output file path (default: input name with the target extension)")

	return cmd
}

// runConvert executes the convert command.
func runConvert(args []string, outputFlag, outFlag string) error {
	inputPath := args[0]

	targetFormat, err := convertTarget(inputPath, outputFlag)
	if err != nil {
		return err
	}

	outPath := outFlag
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + targetFormat.Ext()
	}

	if outPath == inputPath {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("output path %s is the input file; pass --out to write elsewhere", outPath),
		}
	}

	cat, err := catalog.Load(inputPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}

	output.Debug("converting catalog",
		"input", inputPath,
		"out", outPath,
		"format", targetFormat.String(),
	)

	if err := cat.Write(outPath, targetFormat); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Converted %s to %s", inputPath, outPath)))
	return nil
}

// convertTarget picks the target file format: the --output flag when
// given, otherwise the opposite of the input's format.
func convertTarget(inputPath, outputFlag string) (catalog.FileFormat, error) {
	if outputFlag == "" {
		if catalog.DetectFileFormat(inputPath) == catalog.FormatJSON {
			return catalog.FormatYAML, nil
		}
		return catalog.FormatJSON, nil
	}

	format, err := catalog.ParseFileFormat(outputFlag)
	if err != nil {
		return "", &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("invalid target format %q (valid: %s)", outputFlag, strings.Join(output.ValidConvertFormats(), ", ")),
		}
	}
	return format, nil
}
