package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/glorpus-work/gleaner/internal/logger"
	"github.com/glorpus-work/gleaner/pkg/archive"
	"github.com/glorpus-work/gleaner/pkg/config"
	"github.com/glorpus-work/gleaner/pkg/dataset"
	"github.com/glorpus-work/gleaner/pkg/daterange"
	"github.com/glorpus-work/gleaner/pkg/enumerate"
	"github.com/glorpus-work/gleaner/pkg/fetch"
	"github.com/glorpus-work/gleaner/pkg/fsutil"
	"github.com/glorpus-work/gleaner/pkg/harvest"
	"github.com/glorpus-work/gleaner/pkg/hooks"
	"github.com/glorpus-work/gleaner/pkg/mirror"
	"github.com/glorpus-work/gleaner/pkg/validate"
)

type harvestFlags struct {
	baseDir     string
	s3BaseDir   string
	startDate   string
	endDate     string
	numDays     int
	profile     string
	datasetPath string
	noProgress  bool
}

// NewHarvestCmd creates the harvest command.
func NewHarvestCmd() *cobra.Command {
	flags := &harvestFlags{}

	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Harvest dated granules from a remote archive",
		Long: `Harvest dated granules from a remote archive into a local
date-partitioned tree, validating each download and optionally mirroring
committed files to S3. The date range is resolved from the start date, end
date and day count arguments; with no arguments the current day is
harvested.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHarvest(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.baseDir, "basedir", "b", "", "base directory of the local archive tree")
	cmd.Flags().StringVarP(&flags.s3BaseDir, "s3-basedir", "B", "", "S3 base path to mirror committed granules to (s3://bucket/prefix)")
	cmd.Flags().StringVarP(&flags.startDate, "start-date", "s", "", "start date (YYYYMMDD)")
	cmd.Flags().StringVarP(&flags.endDate, "end-date", "e", "", "end date (YYYYMMDD)")
	cmd.Flags().IntVarP(&flags.numDays, "num-days", "n", 0, "number of days to harvest")
	cmd.Flags().StringVarP(&flags.profile, "profile", "p", "", "AWS credentials profile for the S3 mirror")
	cmd.Flags().StringVar(&flags.datasetPath, "dataset", "", "dataset config path (default: <staging dir>/dataset.yaml)")
	cmd.Flags().BoolVar(&flags.noProgress, "no-progress", false, "disable the progress bar")
	_ = cmd.MarkFlagRequired("basedir")

	return cmd
}

func runHarvest(cmd *cobra.Command, flags *harvestFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.InitLogger(cfg.Settings.LogLevel)

	rng, err := resolveRange(cmd, flags)
	if err != nil {
		return err
	}

	stagingDir := config.StagingDir(flags.baseDir)
	if err := fsutil.EnsureDir(stagingDir); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}

	datasetPath := flags.datasetPath
	if datasetPath == "" {
		datasetPath = config.DatasetConfigPath(flags.baseDir)
	}
	spec, err := dataset.Load(datasetPath)
	if err != nil {
		return err
	}
	if err := spec.CheckToolVersion(Version); err != nil {
		return err
	}

	step, err := spec.Step()
	if err != nil {
		return err
	}
	it, err := enumerate.New(rng, step, flags.baseDir, spec)
	if err != nil {
		return err
	}

	h, err := buildHarvester(cmd.Context(), cfg, flags, spec, it.Count())
	if err != nil {
		return err
	}

	logger.Infof("harvesting %s from %s to %s (%d granules)",
		spec.Name, rng.Start.Format(time.RFC3339), rng.End.Format(time.RFC3339), it.Count())

	sum, err := h.Run(cmd.Context(), it, spec, harvest.Options{
		BaseDir:    flags.baseDir,
		StagingDir: stagingDir,
	})
	if err != nil {
		return err
	}

	logger.Success("harvest complete", logger.Fields{
		"committed": sum.Committed,
		"skipped":   sum.Skipped,
		"no_match":  sum.NoMatch,
		"discarded": sum.Discarded,
		"mirrored":  sum.Mirrored,
	})
	return nil
}

// resolveRange turns the date flags into a concrete harvest interval. The
// day count flag only participates when the user actually set it, so that
// an explicit "-n 0" still fails the way it should.
func resolveRange(cmd *cobra.Command, flags *harvestFlags) (daterange.Range, error) {
	var numDays *int
	if cmd.Flags().Changed("num-days") {
		numDays = &flags.numDays
	}
	opts, err := daterange.ParseOptions(flags.startDate, flags.endDate, numDays)
	if err != nil {
		return daterange.Range{}, err
	}
	return daterange.Resolve(opts, time.Now())
}

// buildHarvester assembles the pipeline collaborators from the config and
// flags.
func buildHarvester(ctx context.Context, cfg *config.Config, flags *harvestFlags, spec *dataset.Spec, total int) (*harvest.Harvester, error) {
	auth, err := fetch.AuthFromConfig(spec.Auth)
	if err != nil {
		return nil, err
	}

	h := &harvest.Harvester{
		Fetcher: fetch.NewHTTPFetcher(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent, auth),
		Checker: validate.New(),
	}
	if spec.Decompress {
		h.Decompressor = archive.NewManager()
	}
	if spec.Hooks != (dataset.HookScripts{}) {
		h.HookRunner = hooks.NewFromSpec(spec.Hooks)
	}

	remoteBase := flags.s3BaseDir
	if remoteBase == "" {
		remoteBase = cfg.Settings.RemoteBasePath
	}
	if remoteBase != "" {
		remote, err := mirror.ParseRemotePath(remoteBase)
		if err != nil {
			return nil, err
		}
		clientCfg := mirror.ClientConfig{
			Profile:         cfg.Settings.AWS.Profile,
			Region:          cfg.Settings.AWS.Region,
			AccessKeyID:     cfg.Settings.AWS.AccessKeyID,
			SecretAccessKey: cfg.Settings.AWS.SecretAccessKey,
			SessionToken:    cfg.Settings.AWS.SessionToken,
			Endpoint:        cfg.Settings.AWS.Endpoint,
			UsePathStyle:    cfg.Settings.AWS.UsePathStyle,
		}
		if flags.profile != "" {
			clientCfg.Profile = flags.profile
		}
		client, err := mirror.NewClient(ctx, clientCfg)
		if err != nil {
			return nil, err
		}
		h.Mirrorer = mirror.NewAdapter(client, remote)
	}

	if !flags.noProgress {
		h.Hooks = progressHooks(total)
	}
	return h, nil
}

// progressHooks drives a progress bar from pipeline events. Every granule
// reaches exactly one terminal phase, so the bar advances once per granule.
func progressHooks(total int) harvest.Hooks {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("harvesting"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return harvest.Hooks{
		OnEvent: func(e harvest.Event) {
			switch e.Phase {
			case "committed", "skipped", "no-match", "discarded":
				_ = bar.Add(1)
			case "done":
				_ = bar.Finish()
			}
		},
	}
}
