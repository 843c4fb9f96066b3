package catalog

// Well-known profile namespaces consumed by the planner. Profile namespaces
// are not validated — any string is accepted — but catalogs in the wild use
// these.
const (
	ProfileEnv      = "env"
	ProfilePegasus  = "pegasus"
	ProfileCondor   = "condor"
	ProfileDagman   = "dagman"
	ProfileGlobus   = "globus"
	ProfileHints    = "hints"
	ProfileSelector = "selector"
	ProfileStat     = "stat"
)

// Profiles is a two-level annotation mapping: namespace -> key -> value.
// Values are free-form and pass through to the serialized catalog untouched.
type Profiles map[string]map[string]any

// Set stores value under (namespace, key), allocating the namespace level
// on first use. Repeated writes to the same key overwrite — last write wins.
func (p Profiles) Set(namespace, key string, value any) {
	ns, ok := p[namespace]
	if !ok {
		ns = make(map[string]any)
		p[namespace] = ns
	}
	ns[key] = value
}

// Get returns the value stored under (namespace, key) and whether it exists.
func (p Profiles) Get(namespace, key string) (any, bool) {
	ns, ok := p[namespace]
	if !ok {
		return nil, false
	}
	v, ok := ns[key]
	return v, ok
}
