package driver

import (
	"context"
	"errors"
	"time"

	"nesclex/internal/diag"
	"nesclex/internal/lexer"
	"nesclex/internal/source"
	"nesclex/internal/token"
	"nesclex/internal/trace"
)

// Tokenize loads and lexes a single file.
func Tokenize(ctx context.Context, path string, opts Options) (*source.FileSet, *FileResult, error) {
	fs := source.NewFileSet()
	fileID, err := loadFile(fs, path, opts)
	if err != nil {
		return nil, nil, err
	}
	res := TokenizeFile(ctx, fs.Get(fileID), opts)
	return fs, res, nil
}

func loadFile(fs *source.FileSet, path string, opts Options) (source.FileID, error) {
	var flags source.FileFlags
	if opts.Config.IsSystemHeader(path) {
		flags |= source.FileSystemHeader
	}
	return fs.Load(path, flags)
}

// TokenizeFile runs one lexical session over file. The session is private
// to this call.
func TokenizeFile(ctx context.Context, file *source.File, opts Options) *FileResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file", 0).WithExtra("path", file.Path)
	began := time.Now()

	d, reason := chooseDialect(file.Path, file.Content, opts)
	res := &FileResult{
		Path:          file.Path,
		FileID:        file.ID,
		Dialect:       d,
		DialectReason: reason,
		SystemHeader:  file.IsSystemHeader(),
		Bag:           diag.NewBag(opts.maxDiagnostics()),
	}

	key := cacheKey(file, d, res.SystemHeader)
	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			trace.Error(tracer, "cache-get", err)
		}
		if hit {
			payload.restore(res)
			// путь и файл берём текущие, а не из кэша
			res.Path, res.FileID = file.Path, file.ID
			span.WithExtra("cache", "hit").End(d.String())
			opts.Timer.Add("cache-hit", time.Since(began))
			return res
		}
	}

	lexed := opts.Timer.Start("session")
	lexFile(file, res, tracer)
	lexed("")

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, payloadFromResult(res)); err != nil {
			trace.Error(tracer, "cache-put", err)
			diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.ProjCacheFailed, source.Location{},
				"could not store lexing result: "+err.Error())
		}
	}
	span.WithExtra("tokens", itoa(len(res.Tokens))).End(d.String())
	return res
}

func lexFile(file *source.File, res *FileResult, tracer trace.Tracer) {
	reporter := diag.SystemHeaderFilter{Next: diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})}
	s := lexer.New(lexer.Options{Reporter: reporter, Tracer: tracer})
	s.Start(res.Dialect)
	s.EnterFile(file, res.SystemHeader)

	for {
		tok, err := s.Next()
		if err != nil {
			var lexErr *lexer.Error
			if errors.As(err, &lexErr) {
				diag.Emit(reporter, lexErr.Diagnostic())
			} else {
				diag.ReportError(reporter, diag.UnknownCode, s.Last, err.Error())
			}
			res.Fatal = true
			res.Tokens = append(res.Tokens, tok)
			return
		}
		if _, ok := s.Docstring(); ok && tok.Kind != token.EOF {
			short, long, loc := s.LatestDocstring()
			res.Docs = append(res.Docs, DocEntry{
				Short:    short,
				Long:     long,
				Loc:      *loc,
				Token:    tok.Text,
				TokenLoc: tok.Loc,
			})
		}
		res.Tokens = append(res.Tokens, tok)
		if tok.Kind == token.EOF {
			return
		}
	}
}
