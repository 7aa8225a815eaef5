package hooks

import (
	"github.com/glorpus-work/gleaner/pkg/dataset"
)

// NewFromSpec builds an executor loaded with the dataset's lifecycle
// scripts. Empty scripts are skipped.
func NewFromSpec(scripts dataset.HookScripts) *TengoExecutor {
	executor := NewTengoExecutor()
	if scripts.PreHarvest != "" {
		executor.AddScript(PreHarvest, scripts.PreHarvest)
	}
	if scripts.PostGranule != "" {
		executor.AddScript(PostGranule, scripts.PostGranule)
	}
	if scripts.PostHarvest != "" {
		executor.AddScript(PostHarvest, scripts.PostHarvest)
	}
	return executor
}
