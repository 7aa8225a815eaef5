package hooks

// HookType represents the type of hooks.
type HookType string

// Supported hooks types.
const (
	PreHarvest  HookType = "pre-harvest"
	PostGranule HookType = "post-granule"
	PostHarvest HookType = "post-harvest"
)

// Hook represents a hooks script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext contains information passed to hooks.
type HookContext struct {
	DatasetName string
	BaseDir     string
	GranuleURL  string
	LocalPath   string
	RelPath     string
	Vars        map[string]interface{}
}

// HookManager defines the interface for managing hooks.
type HookManager interface {
	// Execute runs the specified hooks type with the given context
	Execute(hookType HookType, ctx HookContext) error

	// AddScript adds or updates a script for the specified hooks type
	AddScript(hookType HookType, script string)

	// RemoveScript removes the script for the specified hooks type
	RemoveScript(hookType HookType)

	// HasScript checks if a script of the specified type exists
	HasScript(hookType HookType) bool
}
