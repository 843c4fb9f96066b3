package catalog

import (
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/yaml"
)

// Load reads a catalog file and rebuilds the in-memory model. Both YAML
// and JSON files are accepted — JSON is a YAML subset, so no format hint
// is needed. The catalog's FilePath is left at its default; Load does not
// remember where the file came from.
func Load(path string) (*TransformationCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Read rebuilds a catalog from serialized document bytes on r.
func Read(r io.Reader) (*TransformationCatalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog document: %w", err)
	}
	return Parse(data)
}

// Parse rebuilds a catalog from serialized document bytes, re-running the
// constructor validation: enum values and duplicate identities fail the
// same way they would when building the model by hand.
//
// The serialized requires list names required transformations without
// their namespace or version, so requirement edges come back as name-only
// keys. Parse does not guess which namespaced transformation was meant.
func Parse(data []byte) (*TransformationCatalog, error) {
	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog document: %w", err)
	}
	if doc.Pegasus == "" {
		return nil, fmt.Errorf("not a transformation catalog document, missing pegasus version: %w", ErrInvalidValue)
	}

	c := NewTransformationCatalog()

	for _, td := range doc.Transformations {
		t := NewTransformation(td.Name, td.Namespace, td.Version)

		for _, site := range td.Sites {
			err := t.AddSite(site.Name, site.PFN, site.Type, SiteOptions{
				Arch:      site.Arch,
				OSType:    site.OSType,
				OSRelease: site.OSRelease,
				OSVersion: site.OSVersion,
				Glibc:     site.Glibc,
				Container: site.Container,
			})
			if err != nil {
				return nil, fmt.Errorf("transformation %q: %w", t, err)
			}
			if len(site.Profiles) > 0 {
				t.sites[site.Name].Profiles = site.Profiles
			}
		}

		for _, name := range td.Requires {
			t.addRequirementKey(TransformationKey{Name: name})
		}

		for _, hooks := range td.Hooks {
			for _, h := range hooks {
				if !h.On.IsValid() {
					return nil, fmt.Errorf("transformation %q: hook event %q: %w", t, h.On, ErrInvalidValue)
				}
			}
		}
		if len(td.Hooks) > 0 {
			t.hooks = td.Hooks
		}
		if len(td.Profiles) > 0 {
			t.profiles = td.Profiles
		}

		if err := c.AddTransformations(t); err != nil {
			return nil, err
		}
	}

	for _, container := range doc.Containers {
		if container == nil {
			continue
		}
		if err := c.AddContainer(container.Name, container.Type, container.Image, container.Mount, container.ImageSite); err != nil {
			return nil, err
		}
		if len(container.Profiles) > 0 {
			c.containers[container.Name].Profiles = container.Profiles
		}
	}

	return c, nil
}
