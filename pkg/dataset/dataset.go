// Package dataset loads and validates the per-dataset harvest
// configuration. A dataset config names the remote URL pattern, the local
// directory layout and the time cadence of the archive, plus optional
// authentication, hooks and post-processing settings.
package dataset

import (
	"os"

	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/gleaner/pkg/errors"
	"github.com/glorpus-work/gleaner/pkg/timestep"
)

// DefaultFileName is the expected name of a dataset config file.
const DefaultFileName = "dataset.yaml"

// AuthConfig describes how fetch requests authenticate against the archive.
type AuthConfig struct {
	// Type is one of "basic", "bearer" or "header". Empty means no auth.
	Type     string            `yaml:"type,omitempty"`
	Username string            `yaml:"username,omitempty"`
	Password string            `yaml:"password,omitempty"`
	Token    string            `yaml:"token,omitempty"`
	Headers  map[string]string `yaml:"headers,omitempty"`
}

// HookScripts holds the optional lifecycle scripts of a dataset.
type HookScripts struct {
	PreHarvest  string `yaml:"pre_harvest,omitempty"`
	PostGranule string `yaml:"post_granule,omitempty"`
	PostHarvest string `yaml:"post_harvest,omitempty"`
}

// Spec is the dataset configuration. Read-only after Load.
type Spec struct {
	// Name identifies the dataset in logs.
	Name string `yaml:"name,omitempty"`

	// URLTemplate is the remote URL pattern with date tokens. It may
	// contain a single wildcard, restricted to the filename component.
	URLTemplate string `yaml:"url_template"`

	// LocalPathTemplate is the local layout pattern with date tokens,
	// relative to the harvest base directory. Never absolute.
	LocalPathTemplate string `yaml:"local_path_template"`

	// TimeRes is the archive cadence as a compact duration ("1d", "6h").
	TimeRes string `yaml:"time_res"`

	// Decompress unpacks single-file compressed granules (.gz, .bz2, .xz)
	// before committing them.
	Decompress bool `yaml:"decompress,omitempty"`

	// MinToolVersion pins the oldest harvester release allowed to run
	// this dataset.
	MinToolVersion string `yaml:"min_tool_version,omitempty"`

	Auth  AuthConfig  `yaml:"auth,omitempty"`
	Hooks HookScripts `yaml:"hooks,omitempty"`
}

// Load reads and validates a dataset config file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrConfigMissing, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read dataset config %s", path)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the spec for the errors that must abort a run before any
// network activity.
func (s *Spec) Validate() error {
	if s.URLTemplate == "" {
		return errors.Wrap(errors.ErrConfigValidation, "url_template is required")
	}
	if s.LocalPathTemplate == "" {
		return errors.Wrap(errors.ErrConfigValidation, "local_path_template is required")
	}
	if isAbsTemplate(s.LocalPathTemplate) {
		return errors.Wrapf(errors.ErrAbsoluteTemplate,
			"local_path_template %q must be relative to the base directory", s.LocalPathTemplate)
	}
	if _, err := timestep.Parse(s.TimeRes); err != nil {
		return err
	}
	if s.MinToolVersion != "" {
		if _, err := goversion.NewVersion(s.MinToolVersion); err != nil {
			return errors.Wrapf(errors.ErrConfigValidation, "min_tool_version %q is not a valid version", s.MinToolVersion)
		}
	}
	switch s.Auth.Type {
	case "", "basic", "bearer", "header":
	default:
		return errors.Wrapf(errors.ErrConfigValidation, "unknown auth type %q", s.Auth.Type)
	}
	return nil
}

// Step parses the dataset cadence. Validate has already established that
// this succeeds.
func (s *Spec) Step() (timestep.Step, error) {
	return timestep.Parse(s.TimeRes)
}

// CheckToolVersion fails when the running harvester is older than the
// dataset's pinned minimum.
func (s *Spec) CheckToolVersion(current string) error {
	if s.MinToolVersion == "" {
		return nil
	}
	minVer, err := goversion.NewVersion(s.MinToolVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrConfigValidation, "min_tool_version %q is not a valid version", s.MinToolVersion)
	}
	curVer, err := goversion.NewVersion(current)
	if err != nil {
		return errors.Wrapf(err, "tool version %q is not a valid version", current)
	}
	if curVer.LessThan(minVer) {
		return errors.Wrapf(errors.ErrToolTooOld, "have %s, need at least %s", curVer, minVer)
	}
	return nil
}

// isAbsTemplate reports whether the template names an absolute path. The
// check is textual so that a template starting with a token still counts as
// relative.
func isAbsTemplate(tmpl string) bool {
	return len(tmpl) > 0 && tmpl[0] == '/'
}
