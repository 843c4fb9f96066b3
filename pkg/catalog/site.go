package catalog

import "fmt"

// TransformationType specifies how a transformation is deployed at a site.
type TransformationType string

const (
	// Stageable transformations are files that can be shipped to and run
	// on arbitrary sites.
	Stageable TransformationType = "stageable"

	// Installed transformations are bound to an existing installation on
	// one site and cannot be shipped elsewhere.
	Installed TransformationType = "installed"
)

// String returns the string representation of the transformation type.
func (t TransformationType) String() string {
	return string(t)
}

// IsValid checks if the transformation type is valid.
func (t TransformationType) IsValid() bool {
	switch t {
	case Stageable, Installed:
		return true
	default:
		return false
	}
}

// TransformationSite carries the site-specific information about one
// transformation: where its physical file lives and what platform it was
// built for. A transformation holds at least one of these, keyed by site
// name. Serialized field names follow the catalog file format, including
// the dotted os.* keys.
type TransformationSite struct {
	Name      string             `json:"name"`
	PFN       string             `json:"pfn"`
	Type      TransformationType `json:"type"`
	Arch      Arch               `json:"arch,omitempty"`
	OSType    string             `json:"os.type,omitempty"`
	OSRelease string             `json:"os.release,omitempty"`
	OSVersion string             `json:"os.version,omitempty"`
	Glibc     string             `json:"glibc,omitempty"`
	Container string             `json:"container,omitempty"`
	Profiles  Profiles           `json:"profiles,omitempty"`
}

// SiteOptions contains the optional platform attributes of a
// TransformationSite. The zero value leaves them all unset; unset fields
// are omitted from serialized output. Only Arch is validated — the OS,
// glibc and container attributes are free-form.
type SiteOptions struct {
	Arch      Arch
	OSType    string
	OSRelease string
	OSVersion string
	Glibc     string
	Container string
}

// NewTransformationSite builds a site entry for a transformation. The
// deployment type must be Stageable or Installed, and opts.Arch, when set,
// must be a recognized architecture; otherwise an error wrapping
// ErrInvalidValue is returned and no site is produced.
func NewTransformationSite(name, pfn string, transformationType TransformationType, opts SiteOptions) (*TransformationSite, error) {
	if !transformationType.IsValid() {
		return nil, fmt.Errorf("transformation type %q: %w", transformationType, ErrInvalidValue)
	}
	if opts.Arch != "" && !opts.Arch.IsValid() {
		return nil, fmt.Errorf("architecture %q: %w", opts.Arch, ErrInvalidValue)
	}

	return &TransformationSite{
		Name:      name,
		PFN:       pfn,
		Type:      transformationType,
		Arch:      opts.Arch,
		OSType:    opts.OSType,
		OSRelease: opts.OSRelease,
		OSVersion: opts.OSVersion,
		Glibc:     opts.Glibc,
		Container: opts.Container,
	}, nil
}

// AddProfile records a namespaced key/value annotation on this site.
// Writing the same (namespace, key) again overwrites the prior value.
func (s *TransformationSite) AddProfile(namespace, key string, value any) {
	if s.Profiles == nil {
		s.Profiles = Profiles{}
	}
	s.Profiles.Set(namespace, key, value)
}
