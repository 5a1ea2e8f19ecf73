package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"nesclex/internal/diag"
	"nesclex/internal/source"
	"nesclex/internal/trace"
)

// ListSources returns the sorted source files under dir whose extension
// has a dialect in the configuration.
func ListSources(dir string, opts Options) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := opts.Config.DialectFor(path); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeFiles lexes paths in parallel, one session per file. Results are
// returned in input order. Files that fail to load get a result carrying a
// diag.IOLoadFileError diagnostic. The only error returned is ctx's.
func TokenizeFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []*FileResult, error) {
	tracer := trace.FromContext(ctx)
	run := trace.Begin(tracer, trace.ScopeDriver, "tokenize", 0).WithExtra("files", itoa(len(paths)))
	defer run.End("")

	// FileSet не потокобезопасен: загружаем всё заранее, дальше только чтение
	fileSet := source.NewFileSet()
	fileIDs := make([]source.FileID, len(paths))
	loadErrors := make([]error, len(paths))
	loaded := opts.Timer.Start("load")
	for i, path := range paths {
		fileIDs[i], loadErrors[i] = loadFile(fileSet, path, opts)
		opts.Progress.emit(ProgressEvent{Path: path, Status: ProgressQueued})
	}
	loaded(itoa(len(paths)) + " files")

	if len(paths) == 0 {
		return fileSet, nil, nil
	}

	results := make([]*FileResult, len(paths))
	defer opts.Timer.Start("lex")("")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			started := time.Now()
			opts.Progress.emit(ProgressEvent{Path: path, Status: ProgressWorking})

			if err := loadErrors[i]; err != nil {
				bag := diag.NewBag(opts.maxDiagnostics())
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, source.NewLocation(path, 0),
					"failed to load file: "+err.Error())
				results[i] = &FileResult{Path: path, Bag: bag, Fatal: true}
			} else {
				results[i] = TokenizeFile(gctx, fileSet.Get(fileIDs[i]), opts)
			}

			opts.Progress.emit(ProgressEvent{
				Path:    path,
				Status:  ProgressDone,
				Cached:  results[i].Cached,
				Errors:  results[i].ErrorCount(),
				Elapsed: time.Since(started),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
