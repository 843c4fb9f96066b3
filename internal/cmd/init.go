package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/pegasus-wms/tc/internal/errors"
	"github.com/pegasus-wms/tc/internal/output"
	"github.com/pegasus-wms/tc/internal/templates"
	"github.com/pegasus-wms/tc/pkg/catalog"
)

// initOptions holds the init command flags.
type initOptions struct {
	template  string
	name      string
	namespace string
	version   string
	site      string
	force     bool
}

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter transformation catalog",
		Long: `Create a starter transformation catalog from a template.

Templates:
  minimal        One transformation, one site
  standard       Namespaced transformation with platform attributes
                 and profiles (default)
  containerized  Transformation running inside a container image

The file is written to tc.yml unless a path is given. A path ending in
.json produces a JSON catalog instead; the starter comments only
survive in YAML.

Examples:
  # Create tc.yml with the standard template
  tc init

  # Minimal catalog under a different name
  tc init catalogs/tc.yml --template minimal

  # Seed the starter entry with a real transformation
  tc init --name fraction --namespace diamond --version 4.0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", string(templates.DefaultTemplate),
		fmt.Sprintf("Template to use (%s)", strings.Join(templates.ValidTemplates(), ", ")))
	cmd.Flags().StringVar(&opts.name, "name", "keg",
		"Name of the starter transformation")
	cmd.Flags().StringVar(&opts.namespace, "namespace", "",
		"Namespace of the starter transformation")
	cmd.Flags().StringVar(&opts.version, "version", "",
		"Version of the starter transformation")
	cmd.Flags().StringVar(&opts.site, "site", "condorpool",
		"Site name for the starter transformation")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false,
		"Overwrite an existing catalog")

	return cmd
}

// runInit executes the init command.
func runInit(args []string, opts *initOptions) error {
	path := "tc.yml"
	if len(args) > 0 {
		path = args[0]
	}

	if !templates.IsValidTemplate(opts.template) {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown template: %s", opts.template),
			Hint:    fmt.Sprintf("Valid templates: %s", strings.Join(templates.ValidTemplates(), ", ")),
			Cause:   oerrors.ErrValidation,
		}
	}

	if _, err := os.Stat(path); err == nil && !opts.force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "catalog already exists",
			Location: path,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrValidation,
		}
	}

	rendered, err := templates.Render(templates.TemplateName(opts.template), templates.TemplateData{
		Name:      opts.name,
		Namespace: opts.namespace,
		Version:   opts.version,
		Site:      opts.site,
	})
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}

	// Whatever init writes must load, or the first follow-up command
	// fails on a file we produced ourselves.
	cat, err := catalog.Parse(rendered)
	if err != nil {
		return fmt.Errorf("rendered catalog does not load: %w", err)
	}

	output.Debug("writing starter catalog",
		"path", path,
		"template", opts.template,
	)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	if catalog.DetectFileFormat(path) == catalog.FormatJSON {
		if err := cat.Write(path, catalog.FormatJSON); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	} else {
		// Raw template bytes, not a model round-trip: the starter
		// comments are the point of the YAML templates.
		if err := os.WriteFile(path, rendered, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s (%s template)", path, opts.template)))
	output.Println("")
	output.Println("Next:")
	output.Println("  tc show " + path)
	output.Println("  tc vet " + path)

	return nil
}
