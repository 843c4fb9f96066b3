package catalog

import "fmt"

// ContainerType identifies the container engine an image targets.
type ContainerType string

const (
	Docker      ContainerType = "docker"
	Singularity ContainerType = "singularity"
	Shifter     ContainerType = "shifter"
)

// String returns the string representation of the container type.
func (c ContainerType) String() string {
	return string(c)
}

// IsValid checks if the container type is valid.
func (c ContainerType) IsValid() bool {
	switch c {
	case Docker, Singularity, Shifter:
		return true
	default:
		return false
	}
}

// Container describes a container image transformations can execute in.
// Names are unique within a catalog; sites reference containers by name.
type Container struct {
	Name  string        `json:"name"`
	Type  ContainerType `json:"type"`
	Image string        `json:"image"`

	// Mount is a bind-mount spec in src:dest[:options] form, for example
	// "/Volumes/Work/lfs1:/shared-data/:ro".
	Mount string `json:"mount"`

	// ImageSite optionally names the site where the image file resides.
	ImageSite string   `json:"imageSite,omitempty"`
	Profiles  Profiles `json:"profiles,omitempty"`
}

// NewContainer builds a container description. The container type must be
// one of Docker, Singularity or Shifter; otherwise an error wrapping
// ErrInvalidValue is returned. imageSite may be empty.
func NewContainer(name string, containerType ContainerType, image, mount, imageSite string) (*Container, error) {
	if !containerType.IsValid() {
		return nil, fmt.Errorf("container type %q: %w", containerType, ErrInvalidValue)
	}

	return &Container{
		Name:      name,
		Type:      containerType,
		Image:     image,
		Mount:     mount,
		ImageSite: imageSite,
	}, nil
}

// AddProfile records a namespaced key/value annotation on this container.
// Writing the same (namespace, key) again overwrites the prior value.
func (c *Container) AddProfile(namespace, key string, value any) {
	if c.Profiles == nil {
		c.Profiles = Profiles{}
	}
	c.Profiles.Set(namespace, key, value)
}
