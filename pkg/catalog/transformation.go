package catalog

import (
	"fmt"
	"sort"
)

// TransformationKey is the composite identity of a transformation:
// (name, namespace, version). It is comparable, so it serves directly as a
// map key for catalog lookups and requirement edges. Namespace and version
// may be empty.
type TransformationKey struct {
	Name      string
	Namespace string
	Version   string
}

// String renders the key as namespace::name:version, eliding the namespace
// and version parts when empty.
func (k TransformationKey) String() string {
	s := k.Name
	if k.Namespace != "" {
		s = k.Namespace + "::" + s
	}
	if k.Version != "" {
		s = s + ":" + k.Version
	}
	return s
}

// Transformation is a registered executable: a named, optionally
// namespaced and versioned program, the sites it is deployed at, and the
// other transformations it requires at execution time. Site entries are
// owned by the transformation; requirement edges are non-owning references
// by identity key.
//
// The identity fields are fixed at construction. Transformations with
// equal keys are interchangeable as far as catalogs and requirement edges
// are concerned, regardless of their sites or profiles.
type Transformation struct {
	name      string
	namespace string
	version   string

	sites     map[string]*TransformationSite
	siteOrder []string

	requires map[TransformationKey]struct{}

	profiles Profiles
	hooks    map[string][]ShellHook
}

// NewTransformation creates a transformation with the given logical name.
// Namespace and version are optional; pass "" to leave them unset. The
// name is required — it is the only mandatory part of the identity key.
func NewTransformation(name, namespace, version string) *Transformation {
	return &Transformation{
		name:      name,
		namespace: namespace,
		version:   version,
	}
}

// Name returns the transformation's logical name.
func (t *Transformation) Name() string {
	return t.name
}

// Namespace returns the transformation's namespace, or "" if unset.
func (t *Transformation) Namespace() string {
	return t.namespace
}

// Version returns the transformation's version, or "" if unset.
func (t *Transformation) Version() string {
	return t.version
}

// Key returns the transformation's identity key.
func (t *Transformation) Key() TransformationKey {
	return TransformationKey{Name: t.name, Namespace: t.namespace, Version: t.version}
}

// Equal reports whether t and other share the same identity key. Sites,
// requirements and profiles do not participate in equality.
func (t *Transformation) Equal(other *Transformation) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Key() == other.Key()
}

// String renders the transformation's identity key.
func (t *Transformation) String() string {
	return t.Key().String()
}

// AddSite registers a deployment site for this transformation. It fails
// with an error wrapping ErrDuplicate if a site of that name already
// exists here, and with ErrInvalidValue if the type or opts.Arch is not
// recognized; on failure nothing is stored.
func (t *Transformation) AddSite(name, pfn string, transformationType TransformationType, opts SiteOptions) error {
	if _, ok := t.sites[name]; ok {
		return fmt.Errorf("site %q already exists for transformation %q: %w", name, t.name, ErrDuplicate)
	}

	site, err := NewTransformationSite(name, pfn, transformationType, opts)
	if err != nil {
		return err
	}

	if t.sites == nil {
		t.sites = make(map[string]*TransformationSite)
	}
	t.sites[name] = site
	t.siteOrder = append(t.siteOrder, name)
	return nil
}

// GetSite returns the site entry with the given name, or an error wrapping
// ErrNotFound if no such site was added.
func (t *Transformation) GetSite(name string) (*TransformationSite, error) {
	site, ok := t.sites[name]
	if !ok {
		return nil, fmt.Errorf("site %q not found for transformation %q: %w", name, t.name, ErrNotFound)
	}
	return site, nil
}

// HasSite reports whether a site with the given name was added.
func (t *Transformation) HasSite(name string) bool {
	_, ok := t.sites[name]
	return ok
}

// RemoveSite deletes the site entry with the given name. It fails with an
// error wrapping ErrNotFound if no such site exists.
func (t *Transformation) RemoveSite(name string) error {
	if _, ok := t.sites[name]; !ok {
		return fmt.Errorf("site %q not found for transformation %q: %w", name, t.name, ErrNotFound)
	}

	delete(t.sites, name)
	for i, n := range t.siteOrder {
		if n == name {
			t.siteOrder = append(t.siteOrder[:i], t.siteOrder[i+1:]...)
			break
		}
	}
	return nil
}

// AddSiteProfile records a profile on the named site. It fails with an
// error wrapping ErrNotFound if the site is unknown.
func (t *Transformation) AddSiteProfile(siteName, namespace, key string, value any) error {
	site, ok := t.sites[siteName]
	if !ok {
		return fmt.Errorf("site %q not found for transformation %q: %w", siteName, t.name, ErrNotFound)
	}

	site.AddProfile(namespace, key, value)
	return nil
}

// Sites returns the site entries in the order they were added.
func (t *Transformation) Sites() []*TransformationSite {
	sites := make([]*TransformationSite, 0, len(t.siteOrder))
	for _, name := range t.siteOrder {
		sites = append(sites, t.sites[name])
	}
	return sites
}

// AddRequirement declares that this transformation needs required at
// execution time. The edge is recorded by identity key only — the required
// transformation is not owned and need not live in the same catalog. It
// fails with an error wrapping ErrDuplicate if the edge already exists.
// No cycle or self-reference detection is performed.
func (t *Transformation) AddRequirement(required *Transformation) error {
	if required == nil {
		return fmt.Errorf("requirement for transformation %q: %w: nil transformation", t.name, ErrInvalidValue)
	}

	key := required.Key()
	if _, ok := t.requires[key]; ok {
		return fmt.Errorf("transformation %q already requires %q: %w", t.name, key, ErrDuplicate)
	}

	if t.requires == nil {
		t.requires = make(map[TransformationKey]struct{})
	}
	t.requires[key] = struct{}{}
	return nil
}

// addRequirementKey records a requirement edge by key alone, silently
// collapsing duplicates. Reload uses it: the serialized format carries
// required names only.
func (t *Transformation) addRequirementKey(key TransformationKey) {
	if t.requires == nil {
		t.requires = make(map[TransformationKey]struct{})
	}
	t.requires[key] = struct{}{}
}

// HasRequirement reports whether this transformation requires the given
// one, matched by identity key.
func (t *Transformation) HasRequirement(required *Transformation) bool {
	if required == nil {
		return false
	}
	_, ok := t.requires[required.Key()]
	return ok
}

// RemoveRequirement deletes the requirement edge to the given
// transformation. It fails with an error wrapping ErrNotFound if no such
// edge exists.
func (t *Transformation) RemoveRequirement(required *Transformation) error {
	if required == nil {
		return fmt.Errorf("requirement for transformation %q: %w: nil transformation", t.name, ErrInvalidValue)
	}

	key := required.Key()
	if _, ok := t.requires[key]; !ok {
		return fmt.Errorf("transformation %q does not require %q: %w", t.name, key, ErrNotFound)
	}

	delete(t.requires, key)
	return nil
}

// Requires returns the identity keys of all required transformations,
// sorted for deterministic output.
func (t *Transformation) Requires() []TransformationKey {
	keys := make([]TransformationKey, 0, len(t.requires))
	for key := range t.requires {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Namespace != b.Namespace {
			return a.Namespace < b.Namespace
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Version < b.Version
	})
	return keys
}

// AddProfile records a namespaced key/value annotation on this
// transformation. Writing the same (namespace, key) again overwrites the
// prior value.
func (t *Transformation) AddProfile(namespace, key string, value any) {
	if t.profiles == nil {
		t.profiles = Profiles{}
	}
	t.profiles.Set(namespace, key, value)
}

// Profiles returns the live profile mapping. Mutating it is equivalent to
// calling AddProfile.
func (t *Transformation) Profiles() Profiles {
	return t.profiles
}

// AddShellHook attaches a shell command to the named lifecycle event. It
// fails with an error wrapping ErrInvalidValue if the event is not
// recognized. Multiple hooks may fire on the same event; they are kept in
// the order added.
func (t *Transformation) AddShellHook(on EventType, cmd string) error {
	hook, err := newShellHook(on, cmd)
	if err != nil {
		return fmt.Errorf("hook for transformation %q: %w", t.name, err)
	}

	if t.hooks == nil {
		t.hooks = make(map[string][]ShellHook)
	}
	t.hooks[shellHookKind] = append(t.hooks[shellHookKind], hook)
	return nil
}
