package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"kdc/internal/buildpipeline"
	"kdc/internal/cache"
	"kdc/internal/diag"
	"kdc/internal/diagfmt"
	"kdc/internal/source"
)

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path) // #nosec G304 -- path comes from a directory walk the caller chose
}

// FileResult is one file's outcome from a directory build.
type FileResult struct {
	Path     string
	Result   Result
	CacheHit bool
}

// ListKDFiles returns a sorted list of every *.kd file under dir, for a
// deterministic build order.
func ListKDFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".kd") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// BuildDir compiles every *.kd file under dir independently (this
// pipeline never resolves cross-file imports, so the files carry no
// ordering dependency on one another) using up to jobs goroutines,
// reporting progress through sink if non-nil and consulting disk for a
// cached "this content already type-checked cleanly" result.
func BuildDir(ctx context.Context, dir string, jobs int, disk *cache.Disk, sink buildpipeline.ProgressSink) ([]FileResult, error) {
	files, err := ListKDFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	emit := func(ev buildpipeline.Event) {
		if sink != nil {
			sink.OnEvent(ev)
		}
	}
	for _, f := range files {
		emit(buildpipeline.Event{File: f, Stage: buildpipeline.StageLex, Status: buildpipeline.StatusQueued})
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = buildOne(path, disk, emit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func buildOne(path string, disk *cache.Disk, emit func(buildpipeline.Event)) FileResult {
	start := time.Now()
	emit(buildpipeline.Event{File: path, Stage: buildpipeline.StageLex, Status: buildpipeline.StatusWorking})

	content, err := readFile(path)
	if err != nil {
		emit(buildpipeline.Event{File: path, Stage: buildpipeline.StageLex, Status: buildpipeline.StatusError, Err: err})
		return FileResult{Path: path, Result: Result{Aborted: true}}
	}

	key := cache.KeyOf(content)
	if disk != nil {
		if payload, ok, _ := disk.Get(key); ok && payload.Succeeded {
			emit(buildpipeline.Event{File: path, Stage: buildpipeline.StageIR, Status: buildpipeline.StatusDone, Elapsed: time.Since(start), CacheHit: true})
			return FileResult{Path: path, Result: Result{Aborted: false}, CacheHit: true}
		}
	}

	fs := source.NewFileSetWithBase(filepath.Dir(path))
	fileID := fs.Add(path, content, 0)
	em := diag.NewEmitter(discardWriter{}, fs, diagfmt.Pretty{})

	var timings buildpipeline.Timings
	var curStage buildpipeline.Stage
	stageStart := start
	onStage := func(s buildpipeline.Stage) {
		if curStage != "" {
			timings.Set(curStage, time.Since(stageStart))
		}
		curStage = s
		stageStart = time.Now()
		emit(buildpipeline.Event{File: path, Stage: s, Status: buildpipeline.StatusWorking})
	}
	res := Compile(fs, fs.Get(fileID), source.NewInterner(), em, onStage)
	if curStage != "" {
		timings.Set(curStage, time.Since(stageStart))
	}

	stage := buildpipeline.StageIR
	status := buildpipeline.StatusDone
	if res.Aborted {
		status = buildpipeline.StatusError
	}
	emit(buildpipeline.Event{File: path, Stage: stage, Status: status, Elapsed: time.Since(start), Timings: &timings})

	if disk != nil && !res.Aborted {
		_ = disk.Put(key, cache.Payload{Succeeded: true})
	}
	return FileResult{Path: path, Result: res}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
