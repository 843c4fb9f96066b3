// Package catalog models a workflow management system's transformation
// catalog: the executables (transformations) known to the planner, the
// sites where each is deployed, and the container images used to run them.
// A TransformationCatalog aggregates transformations and containers under
// uniqueness constraints and serializes to the YAML/JSON catalog file
// consumed by the planner.
//
// The model is plain in-memory data with no synchronization: build,
// mutate and write a catalog from one goroutine at a time.
package catalog

import "fmt"

// DefaultFilePath is the output path stem Write falls back to when called
// with an empty path; the format's extension is appended.
const DefaultFilePath = "TransformationCatalog"

// TransformationCatalog is the root aggregate: all transformations keyed
// by identity and all containers keyed by name. Insertion order is
// preserved and drives serialization order.
type TransformationCatalog struct {
	// FilePath is the output stem used by Write when it is given an
	// empty path. NewTransformationCatalog sets it to DefaultFilePath.
	FilePath string

	transformations     map[TransformationKey]*Transformation
	transformationOrder []TransformationKey

	containers     map[string]*Container
	containerOrder []string
}

// NewTransformationCatalog creates an empty catalog.
func NewTransformationCatalog() *TransformationCatalog {
	return &TransformationCatalog{FilePath: DefaultFilePath}
}

// AddTransformations registers the given transformations. Each is checked
// in turn: a nil entry fails with ErrInvalidValue and an identity key
// already present fails with ErrDuplicate. There is no batch atomicity —
// entries added before a failing one stay in the catalog.
func (c *TransformationCatalog) AddTransformations(transformations ...*Transformation) error {
	for _, t := range transformations {
		if t == nil {
			return fmt.Errorf("add transformation: %w: nil transformation", ErrInvalidValue)
		}

		key := t.Key()
		if _, ok := c.transformations[key]; ok {
			return fmt.Errorf("transformation %q already exists in catalog: %w", key, ErrDuplicate)
		}

		if c.transformations == nil {
			c.transformations = make(map[TransformationKey]*Transformation)
		}
		c.transformations[key] = t
		c.transformationOrder = append(c.transformationOrder, key)
	}
	return nil
}

// HasTransformation reports whether a transformation with the same
// identity key is registered.
func (c *TransformationCatalog) HasTransformation(t *Transformation) bool {
	if t == nil {
		return false
	}
	_, ok := c.transformations[t.Key()]
	return ok
}

// GetTransformation returns the registered transformation with the given
// identity key, or an error wrapping ErrNotFound.
func (c *TransformationCatalog) GetTransformation(key TransformationKey) (*Transformation, error) {
	t, ok := c.transformations[key]
	if !ok {
		return nil, fmt.Errorf("transformation %q does not exist in this catalog: %w", key, ErrNotFound)
	}
	return t, nil
}

// RemoveTransformation deletes the transformation with the given identity
// key. It fails with an error wrapping ErrNotFound if absent. Requirement
// edges in other transformations that point at the removed one are left
// untouched.
func (c *TransformationCatalog) RemoveTransformation(key TransformationKey) error {
	if _, ok := c.transformations[key]; !ok {
		return fmt.Errorf("transformation %q does not exist in this catalog: %w", key, ErrNotFound)
	}

	delete(c.transformations, key)
	for i, k := range c.transformationOrder {
		if k == key {
			c.transformationOrder = append(c.transformationOrder[:i], c.transformationOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Transformations returns the registered transformations in insertion
// order.
func (c *TransformationCatalog) Transformations() []*Transformation {
	transformations := make([]*Transformation, 0, len(c.transformationOrder))
	for _, key := range c.transformationOrder {
		transformations = append(transformations, c.transformations[key])
	}
	return transformations
}

// AddContainer registers a container description under its name. It fails
// with an error wrapping ErrDuplicate if the name is taken, and with
// ErrInvalidValue if the container type is not recognized.
func (c *TransformationCatalog) AddContainer(name string, containerType ContainerType, image, mount, imageSite string) error {
	if _, ok := c.containers[name]; ok {
		return fmt.Errorf("container %q already exists: %w", name, ErrDuplicate)
	}

	container, err := NewContainer(name, containerType, image, mount, imageSite)
	if err != nil {
		return err
	}

	if c.containers == nil {
		c.containers = make(map[string]*Container)
	}
	c.containers[name] = container
	c.containerOrder = append(c.containerOrder, name)
	return nil
}

// HasContainer reports whether a container with the given name is
// registered.
func (c *TransformationCatalog) HasContainer(name string) bool {
	_, ok := c.containers[name]
	return ok
}

// GetContainer returns the registered container with the given name, or
// an error wrapping ErrNotFound.
func (c *TransformationCatalog) GetContainer(name string) (*Container, error) {
	container, ok := c.containers[name]
	if !ok {
		return nil, fmt.Errorf("container %q does not exist in this catalog: %w", name, ErrNotFound)
	}
	return container, nil
}

// RemoveContainer deletes the container with the given name. It fails
// with an error wrapping ErrNotFound if absent. Sites that reference the
// container by name are left untouched.
func (c *TransformationCatalog) RemoveContainer(name string) error {
	if _, ok := c.containers[name]; !ok {
		return fmt.Errorf("container %q does not exist in this catalog: %w", name, ErrNotFound)
	}

	delete(c.containers, name)
	for i, n := range c.containerOrder {
		if n == name {
			c.containerOrder = append(c.containerOrder[:i], c.containerOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Containers returns the registered containers in insertion order.
func (c *TransformationCatalog) Containers() []*Container {
	containers := make([]*Container, 0, len(c.containerOrder))
	for _, name := range c.containerOrder {
		containers = append(containers, c.containers[name])
	}
	return containers
}
