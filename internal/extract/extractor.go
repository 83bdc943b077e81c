package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"clipcut/internal/config"
	"clipcut/internal/fileutil"
	"clipcut/internal/logging"
	"clipcut/internal/project"
	"clipcut/internal/timecode"
	"clipcut/internal/timeline"
)

// Extractor runs configured jobs against their project files.
type Extractor struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Result captures one completed job.
type Result struct {
	Job        Job
	Output     Output
	OutputPath string
}

// New constructs an extractor. A nil logger falls back to a no-op logger.
func New(cfg *config.Config, logger *slog.Logger) (*Extractor, error) {
	if cfg == nil {
		return nil, errors.New("extractor requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Extractor{cfg: cfg, logger: logger}, nil
}

// Run processes jobs strictly in order, holding the run lock so concurrent
// invocations cannot interleave output writes. The first job failure aborts
// the batch.
func (e *Extractor) Run(jobs []Job) ([]Result, error) {
	if err := e.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	lock := flock.New(e.cfg.LockFilePath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another extraction run holds %s", e.cfg.LockFilePath())
	}
	defer func() {
		_ = lock.Unlock()
	}()

	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		result, err := e.runJob(job)
		if err != nil {
			return results, fmt.Errorf("job %s: %w", job.Label, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (e *Extractor) runJob(job Job) (Result, error) {
	started := time.Now()
	jobLogger := e.logger.With(
		logging.String("run_id", uuid.NewString()),
		logging.String("day", job.Label),
	)
	jobLogger.Info("extracting window",
		logging.String("start", timecode.Format(job.Window.Start)),
		logging.String("end", timecode.Format(job.Window.End)),
	)

	projectPath := e.cfg.ProjectFile(job.Label)
	proj, err := project.Load(projectPath, project.Options{
		AssetBinID:        e.cfg.Projects.AssetBinID,
		MediaSourcePrefix: e.cfg.Projects.MediaSourcePrefix,
	})
	if err != nil {
		return Result{}, err
	}

	visible, err := timeline.FilterVisible(proj.Tracks, proj.HideModes)
	if err != nil {
		return Result{}, err
	}
	jobLogger.Debug("filtered tracks",
		logging.Int("total", len(proj.Tracks)),
		logging.Int("visible", len(visible)),
	)

	output := Output{}
	clips := 0
	for _, track := range visible {
		segments, err := track.Query(job.Window)
		if err != nil {
			return Result{}, err
		}
		for _, segment := range segments {
			filename, err := proj.Registry.Resolve(segment.Clip.SourceID)
			if err != nil {
				return Result{}, err
			}
			output.Add(filename, TrimInstruction{Clip: ClipRange{
				Start: timecode.Format(segment.SourceStart),
				End:   timecode.Format(segment.SourceEnd),
			}})
			clips++
		}
	}

	outputPath := e.cfg.OutputFile(job.Label)
	data, err := output.Marshal()
	if err != nil {
		return Result{}, err
	}
	if err := fileutil.WriteFileAtomic(outputPath, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("write output: %w", err)
	}

	jobLogger.Info("extraction complete",
		logging.Int("files", len(output)),
		logging.Int("clips", clips),
		logging.String("output", outputPath),
		logging.Duration("elapsed", time.Since(started)),
	)
	return Result{Job: job, Output: output, OutputPath: outputPath}, nil
}
