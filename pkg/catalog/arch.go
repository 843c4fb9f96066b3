package catalog

// Arch identifies the processor architecture a transformation was compiled
// for. The value set mirrors the architectures recognized by the site
// catalog; sites treat it as an opaque validated string.
type Arch string

const (
	ArchX86     Arch = "x86"
	ArchX8664   Arch = "x86_64"
	ArchPPC     Arch = "ppc"
	ArchPPC64   Arch = "ppc64"
	ArchIA64    Arch = "ia64"
	ArchSparcV7 Arch = "sparcv7"
	ArchSparcV9 Arch = "sparcv9"
	ArchAMD64   Arch = "amd64"
)

// Arches returns the recognized architecture values.
func Arches() []Arch {
	return []Arch{
		ArchX86, ArchX8664, ArchPPC, ArchPPC64,
		ArchIA64, ArchSparcV7, ArchSparcV9, ArchAMD64,
	}
}

// IsValid reports whether a is a recognized architecture.
func (a Arch) IsValid() bool {
	switch a {
	case ArchX86, ArchX8664, ArchPPC, ArchPPC64,
		ArchIA64, ArchSparcV7, ArchSparcV9, ArchAMD64:
		return true
	default:
		return false
	}
}

// String returns the string representation of the architecture.
func (a Arch) String() string {
	return string(a)
}
