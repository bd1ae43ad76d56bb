package scriptdetect

// Hook identifies one of the npm lifecycle scripts that execute automatically
// when a package is installed. These are the classic supply-chain attack
// vectors this tool audits for.
type Hook string

const (
	HookPreinstall  Hook = "preinstall"
	HookInstall     Hook = "install"
	HookPostinstall Hook = "postinstall"
)

// Hooks returns the audited lifecycle hooks in their canonical order.
// Findings always report scripts in this order, never in the order the keys
// happened to appear in the source manifest.
func Hooks() []Hook {
	return []Hook{HookPreinstall, HookInstall, HookPostinstall}
}

// LifecycleScripts holds the lifecycle commands declared by a single package.
// A field is nil when the manifest does not declare that hook, so the JSON
// and YAML forms contain exactly the hooks that were present.
type LifecycleScripts struct {
	Preinstall  *string `json:"preinstall,omitempty" yaml:"preinstall,omitempty"`
	Install     *string `json:"install,omitempty" yaml:"install,omitempty"`
	Postinstall *string `json:"postinstall,omitempty" yaml:"postinstall,omitempty"`
}

// Get returns the command string for the given hook and whether it is set.
func (s LifecycleScripts) Get(hook Hook) (string, bool) {
	var cmd *string
	switch hook {
	case HookPreinstall:
		cmd = s.Preinstall
	case HookInstall:
		cmd = s.Install
	case HookPostinstall:
		cmd = s.Postinstall
	}
	if cmd == nil {
		return "", false
	}
	return *cmd, true
}

// Len returns the number of hooks that are set.
func (s LifecycleScripts) Len() int {
	n := 0
	for _, hook := range Hooks() {
		if _, ok := s.Get(hook); ok {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no hook is set.
func (s LifecycleScripts) IsEmpty() bool {
	return s.Preinstall == nil && s.Install == nil && s.Postinstall == nil
}

// HookCommand pairs a lifecycle hook with its literal command string.
type HookCommand struct {
	Hook    Hook
	Command string
}

// Commands returns the set hooks as (hook, command) pairs in canonical order.
func (s LifecycleScripts) Commands() []HookCommand {
	var out []HookCommand
	for _, hook := range Hooks() {
		if cmd, ok := s.Get(hook); ok {
			out = append(out, HookCommand{Hook: hook, Command: cmd})
		}
	}
	return out
}

// FilterLifecycleScripts intersects a manifest's scripts map with the audited
// hook set. The result carries exactly the lifecycle entries found in the
// map, with their literal command strings; every other script name is
// dropped. Pure function, independent of any filesystem.
func FilterLifecycleScripts(scripts map[string]string) LifecycleScripts {
	var out LifecycleScripts
	for _, hook := range Hooks() {
		cmd, ok := scripts[string(hook)]
		if !ok {
			continue
		}
		c := cmd
		switch hook {
		case HookPreinstall:
			out.Preinstall = &c
		case HookInstall:
			out.Install = &c
		case HookPostinstall:
			out.Postinstall = &c
		}
	}
	return out
}

// Finding reports one package that declares at least one lifecycle script.
// Findings are immutable value records; the scanner never mutates one after
// creation.
type Finding struct {
	// Name is the declared package name. May be empty for pathological
	// manifests that omit it.
	Name string `json:"name" yaml:"name"`

	// Version is the declared package version. May be empty.
	Version string `json:"version" yaml:"version"`

	// Scripts carries exactly the lifecycle hooks the manifest declares.
	Scripts LifecycleScripts `json:"scripts" yaml:"scripts"`

	// Path is the path to the source manifest file. Preserved so callers can
	// distinguish hoisted from nested installs of the same package name.
	Path string `json:"path" yaml:"path"`
}

// ManifestScanner discovers lifecycle-script findings beneath a directory
// tree. Each call re-walks the filesystem; results are in deterministic
// lexicographic path order.
type ManifestScanner interface {
	Scan(rootPath string) ([]Finding, error)
}
