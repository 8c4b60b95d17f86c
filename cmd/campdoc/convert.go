package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/campstation/campdoc"
	"github.com/campstation/campdoc/internal/assets"
	"github.com/campstation/campdoc/internal/config"
	"github.com/campstation/campdoc/internal/fileutil"
	"github.com/campstation/campdoc/internal/hints"
	"github.com/campstation/campdoc/internal/status"
)

// Sentinel errors for CLI operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// job is one profile conversion with its resolved paths.
type job struct {
	profile campdoc.Profile
	input   string
	output  string
	css     string
}

// jobResult holds the outcome of a single job.
type jobResult struct {
	job      job
	report   status.Report
	headings int
	duration time.Duration
	err      error
}

// runConvertCommand parses flags for cmd and converts the selected profiles.
func runConvertCommand(ctx context.Context, cmd string, args []string, env *Environment) error {
	flags, err := parseConvertFlags(cmd, args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printConvertUsage(env.Stdout, cmd)
			return nil
		}
		return err
	}

	names := []string{cmd}
	if cmd == "all" {
		names = []string{campdoc.ProfileReport, campdoc.ProfileAPI}
	}
	return runConvert(ctx, names, flags, env)
}

// runConvert loads config, builds jobs and converts them.
func runConvert(ctx context.Context, names []string, flags *convertFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	assetPath := env.lookup(flags.features.assetPath, envAssetPath)
	if assetPath == "" {
		assetPath = cfg.Assets.BasePath
	}
	conv, err := campdoc.NewConverter(
		campdoc.WithAssetPath(assetPath),
		campdoc.WithClock(env.Now),
	)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	jobs := make([]job, 0, len(names))
	for _, name := range names {
		j, err := buildJob(name, cfg.Profile(name), flags)
		if err != nil {
			return err
		}
		jobs = append(jobs, j)
	}

	results := convertJobs(ctx, conv, jobs)
	return reportResults(results, flags, env)
}

// loadConfig resolves the config path from the flag, then the environment,
// then campdoc.yaml in the working directory.
func loadConfig(flagValue string, env *Environment) (*config.Config, error) {
	explicit := env.lookup(flagValue, envConfigPath)

	dir := "."
	if env.Getwd != nil {
		if wd, err := env.Getwd(); err == nil {
			dir = wd
		}
	}

	cfg, _, err := config.Load(explicit, dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(explicit))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	for name := range cfg.Profiles {
		if _, err := campdoc.LookupProfile(name); err != nil {
			return nil, fmt.Errorf("config profiles: %w%s", err, hints.ForUnknownProfile(campdoc.ProfileNames()))
		}
	}
	return cfg, nil
}

// buildJob applies config overrides, then flags, to a built-in profile.
func buildJob(name string, pc config.ProfileConfig, flags *convertFlags) (job, error) {
	p, err := campdoc.LookupProfile(name)
	if err != nil {
		return job{}, fmt.Errorf("%w%s", err, hints.ForUnknownProfile(campdoc.ProfileNames()))
	}

	applyProfileConfig(&p, pc)
	applyFlags(&p, flags)

	return job{
		profile: p,
		input:   p.InputPath,
		output:  p.OutputPath,
		css:     pc.CSS,
	}, nil
}

// convertJobs runs jobs concurrently, at most GOMAXPROCS at a time.
// Results keep the order of jobs.
func convertJobs(ctx context.Context, conv *campdoc.Converter, jobs []job) []jobResult {
	results := make([]jobResult, len(jobs))
	if len(jobs) == 1 {
		results[0] = convertOne(ctx, conv, jobs[0])
		return results
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		g.Go(func() error {
			results[i] = convertOne(ctx, conv, j)
			return results[i].err
		})
	}
	// Every error is kept in results; Wait only joins the goroutines.
	_ = g.Wait()
	return results
}

// convertOne reads the Markdown file, converts it and writes the page.
// Nothing is written when reading or converting fails.
func convertOne(ctx context.Context, conv *campdoc.Converter, j job) (res jobResult) {
	start := time.Now()
	res.job = j
	defer func() { res.duration = time.Since(start) }()

	markdown, err := fileutil.ReadText(j.input)
	if err != nil {
		res.err = readError(j.input, err)
		return res
	}

	in := j.profile.Input(markdown)
	in.CSS = j.css
	in.SourceDir = absDir(j.input)
	in.OutputDir = absDir(j.output)

	out, err := conv.Convert(ctx, in)
	if err != nil {
		res.err = convertError(j, err)
		return res
	}

	size, err := fileutil.WriteText(j.output, string(out.HTML))
	if err != nil {
		res.err = fmt.Errorf("%w: %s: %w%s", ErrWriteHTML, j.output, err, hints.ForOutputDirectory())
		return res
	}

	abs, err := filepath.Abs(j.output)
	if err != nil {
		abs = j.output
	}
	res.report = status.Report{Name: j.output, Path: abs, Size: size}
	res.headings = len(out.Headings)
	return res
}

// reportResults prints each result in job order and joins the failures.
func reportResults(results []jobResult, flags *convertFlags, env *Environment) error {
	printer := status.NewPrinter(env.Stdout, flags.common.quiet)
	multi := len(results) > 1

	var errs []error
	for i, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			if multi {
				printer.Failed(r.job.profile.Name, r.err)
			}
			continue
		}
		if i > 0 && !flags.common.quiet {
			fmt.Fprintln(env.Stdout)
		}
		printer.Created(r.report)
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, "%s: %s -> %s (%d headings, %s)\n",
				r.job.profile.Name, r.job.input, r.job.output, r.headings, r.duration.Round(time.Millisecond))
		}
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return fmt.Errorf("%d conversion(s) failed: %w", len(errs), errors.Join(errs...))
	}
}

func readError(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w%s", ErrReadMarkdown, path, err, hints.ForInputNotFound(path))
	}
	return fmt.Errorf("%w: %s: %w", ErrReadMarkdown, path, err)
}

func convertError(j job, err error) error {
	if errors.Is(err, campdoc.ErrStyleNotFound) {
		return fmt.Errorf("%s: %w%s", j.profile.Name, err, hints.ForStyleNotFound(assets.NewEmbeddedLoader().StyleNames()))
	}
	return fmt.Errorf("%s: %w", j.profile.Name, err)
}

func absDir(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(abs)
}
