package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pegasus-wms/tc/internal/config"
	oerrors "github.com/pegasus-wms/tc/internal/errors"
	"github.com/pegasus-wms/tc/internal/output"
	"github.com/pegasus-wms/tc/internal/schema"
	"github.com/pegasus-wms/tc/pkg/catalog"
)

// Names of the checks vet runs per catalog, in order.
const (
	checkReadable = "catalog readable"
	checkSchema   = "schema"
	checkModel    = "model loads"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "vet [catalog...]",
		Short: "Validate transformation catalogs",
		Long: `Validate transformation catalogs against the catalog schema.

Checks performed per catalog:
  1. File is readable
  2. Document satisfies the schema (strict: typos and unknown
     fields are errors)
  3. Document loads into the catalog model

A format version other than ` + catalog.FormatVersion + ` is reported as a warning, not an
error, so newer catalogs still get the remaining checks.

With no arguments the default catalog path is validated, resolved the
same way as for show. Purely a pass/fail tool: nothing is modified.

Examples:
  # Validate the default catalog
  tc vet

  # Validate several catalogs at once
  tc vet workflows/*.yml

  # Machine-readable results
  tc vet tc.yml --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVet(cmd, args, jsonFlag)
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false,
		"Output results as JSON")

	return cmd
}

// runVet executes the vet command.
func runVet(cmd *cobra.Command, args []string, jsonOut bool) error {
	paths := args
	if len(paths) == 0 {
		var configValue string
		if cfg := GetConfig(); cfg != nil {
			configValue = cfg.Catalog
		}
		resolved := config.ResolveCatalogPath(config.ResolveCatalogPathOptions{
			ConfigValue: configValue,
		})
		paths = []string{resolved.Value}
		output.Debug("validating default catalog", "path", resolved.Value, "source", resolved.Source)
	}

	var results []*output.VetResultInfo
	validate := func() error {
		var err error
		results, err = vetAllCatalogs(paths)
		return err
	}

	// The spinner is worth showing only for interactive multi-catalog
	// runs; JSON output must stay clean for piping.
	if len(paths) > 1 && output.IsTTY() && !jsonOut {
		if err := output.RunWithSpinner(context.Background(), validate,
			output.WithTitle(fmt.Sprintf("Validating %s...", output.FormatCount(len(paths), "catalog")))); err != nil {
			return err
		}
	} else {
		if err := validate(); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	failed := 0
	for _, result := range results {
		valid := vetResultValid(result)
		if !valid {
			failed++
		}

		if err := output.WriteVetResult(result, output.VetOptions{JSON: jsonOut, Writer: w}); err != nil {
			return fmt.Errorf("writing vet result: %w", err)
		}

		if !jsonOut && valid {
			summary := output.FormatCount(len(result.Transformations), "transformation")
			if len(result.Containers) > 0 {
				summary += ", " + output.FormatCount(len(result.Containers), "container")
			}
			fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Catalog valid (%s)", summary)))
		}
	}

	if failed > 0 {
		return &oerrors.ExitError{
			Code:    oerrors.ExitValidationError,
			Err:     fmt.Errorf("%d of %d catalogs failed validation", failed, len(paths)),
			Printed: true,
		}
	}

	return nil
}

// vetAllCatalogs validates every path, one goroutine and one Validator
// per catalog. The cue.Context inside a Validator is not safe for
// concurrent use, so workers never share one. Results keep argument
// order regardless of which worker finishes first.
func vetAllCatalogs(paths []string) ([]*output.VetResultInfo, error) {
	validators := make([]*schema.Validator, len(paths))
	for i := range paths {
		v, err := schema.NewValidator()
		if err != nil {
			return nil, fmt.Errorf("loading catalog schema: %w", err)
		}
		validators[i] = v
	}

	results := make([]*output.VetResultInfo, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(v *schema.Validator, i int, path string) {
			defer wg.Done()
			results[i] = vetCatalog(v, path)
		}(validators[i], i, path)
	}
	wg.Wait()

	return results, nil
}

// vetCatalog runs every check against one catalog file. Check failures
// land in the result, not in an error return, so one bad catalog never
// stops the remaining ones.
func vetCatalog(validator *schema.Validator, path string) *output.VetResultInfo {
	logger := output.FileLogger(path)
	logger.Debug("vetting catalog")

	info := &output.VetResultInfo{File: path}

	data, err := os.ReadFile(path)
	if err != nil {
		info.Checks = append(info.Checks, output.VetCheckInfo{
			Name:   checkReadable,
			Status: output.StatusError,
			Detail: err.Error(),
		})
		return info
	}
	info.Checks = append(info.Checks, output.VetCheckInfo{
		Name:   checkReadable,
		Status: output.StatusValid,
		Detail: fmt.Sprintf("%d bytes", len(data)),
	})

	// The envelope version only warns. Vetting a newer catalog should
	// still run the remaining checks.
	var envelope struct {
		Pegasus string `yaml:"pegasus"`
	}
	if err := yaml.Unmarshal(data, &envelope); err == nil {
		info.FormatVersion = envelope.Pegasus
		if envelope.Pegasus != "" && envelope.Pegasus != catalog.FormatVersion {
			info.Warnings = append(info.Warnings,
				fmt.Sprintf("format version %q differs from %q", envelope.Pegasus, catalog.FormatVersion))
		}
	}

	schemaStatus := output.StatusValid
	if err := validator.Validate(data); err != nil {
		schemaStatus = output.StatusInvalid
		var fieldErrs schema.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				info.Errors = append(info.Errors, fmt.Errorf("%s: %s", fe.Field, fe.Message))
			}
		} else {
			info.Errors = append(info.Errors, err)
		}
	}
	info.Checks = append(info.Checks, output.VetCheckInfo{
		Name:   checkSchema,
		Status: schemaStatus,
	})

	cat, err := catalog.Parse(data)
	if err != nil {
		info.Checks = append(info.Checks, output.VetCheckInfo{
			Name:   checkModel,
			Status: output.StatusError,
			Detail: strings.TrimSpace(err.Error()),
		})
		return info
	}

	transformations := cat.Transformations()
	containers := cat.Containers()
	detail := output.FormatCount(len(transformations), "transformation")
	if len(containers) > 0 {
		detail += ", " + output.FormatCount(len(containers), "container")
	}
	info.Checks = append(info.Checks, output.VetCheckInfo{
		Name:   checkModel,
		Status: output.StatusValid,
		Detail: detail,
	})

	// Entry lists would contradict the field errors above, so they are
	// only attached when the schema check passed.
	if schemaStatus == output.StatusValid {
		for _, tr := range transformations {
			info.Transformations = append(info.Transformations, output.VetEntryInfo{
				ID:     tr.Key().String(),
				Status: output.StatusValid,
			})
		}
		for _, c := range containers {
			info.Containers = append(info.Containers, output.VetEntryInfo{
				ID:     c.Name,
				Status: output.StatusValid,
			})
		}
	}

	return info
}

// vetResultValid reports whether every check passed and no field errors
// were recorded.
func vetResultValid(info *output.VetResultInfo) bool {
	if len(info.Errors) > 0 {
		return false
	}
	for _, c := range info.Checks {
		if c.Status != output.StatusValid {
			return false
		}
	}
	return true
}
