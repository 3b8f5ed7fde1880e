// Package service wraps the glossary pipeline for the outer surfaces,
// adding logging and a bounded cache of recent results.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	glossary "github.com/hihighsh/glossary-app"
)

// Input is one glossary generation request.
type Input struct {
	Text        string
	GlossaryCSV []byte
	Options     glossary.Options
}

type cachedResult struct {
	res *glossary.Result
	err error
}

// Service generates glossaries. It is safe for concurrent use.
type Service struct {
	gen   *glossary.Generator
	cache *lru.Cache[string, cachedResult]
	log   *slog.Logger
}

// New creates a Service. A cacheSize of 0 disables result caching.
func New(gen *glossary.Generator, cacheSize int, logger *slog.Logger) *Service {
	s := &Service{gen: gen, log: logger.With("component", "glossary")}
	if cacheSize > 0 {
		// lru.New only fails for a non-positive size
		s.cache, _ = lru.New[string, cachedResult](cacheSize)
	}
	return s
}

// Generate runs the pipeline for in. Results may be served from the cache
// and are shared: callers must treat them as read-only.
//
// glossary.ErrNoGlossLines and glossary.ErrNoAbbreviations are returned
// with a non-nil Result; glossary.ErrInvalidOptions with a nil one.
func (s *Service) Generate(ctx context.Context, in Input) (*glossary.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.Options.Validate(); err != nil {
		return nil, err
	}

	key := cacheKey(in)
	if s.cache != nil {
		if c, ok := s.cache.Get(key); ok {
			s.log.DebugContext(ctx, "glossary cache hit", slog.String("key", key[:12]))
			return c.res, c.err
		}
	}

	res, err := s.gen.GenerateText(in.Text, in.GlossaryCSV, in.Options)
	if res == nil {
		return nil, err
	}

	s.logResult(ctx, res, err)
	if s.cache != nil {
		s.cache.Add(key, cachedResult{res: res, err: err})
	}
	return res, err
}

// BaseEntries lists the generator's base glossary.
func (s *Service) BaseEntries() []glossary.Entry {
	return glossary.Entries(s.gen.Base())
}

func (s *Service) logResult(ctx context.Context, res *glossary.Result, err error) {
	if res.SourceErr != nil {
		s.log.WarnContext(ctx, "uploaded glossary rejected, using base glossary",
			slog.String("error", res.SourceErr.Error()),
		)
	}
	if err != nil {
		s.log.InfoContext(ctx, "glossary not generated",
			slog.String("reason", err.Error()),
			slog.Int("gloss_lines", len(res.GlossLines)),
		)
		return
	}
	s.log.DebugContext(ctx, "glossary generated",
		slog.Int("gloss_lines", len(res.GlossLines)),
		slog.Int("occurrences", res.Summary.Occurrences),
		slog.Int("rows", res.Summary.Distinct),
		slog.Int("missing_meaning", res.Summary.MissingMeaning),
	)
}

// cacheKey hashes every input that influences the result.
func cacheKey(in Input) string {
	h := sha256.New()
	var flags [12]byte
	binary.BigEndian.PutUint64(flags[:8], uint64(int64(in.Options.MinMarkedTokens)))
	for i, b := range []bool{
		in.Options.Decompose,
		in.Options.UseUploadedGlossary,
		in.Options.PreferUploaded,
		in.Options.NormalizeWidth,
	} {
		if b {
			flags[8+i] = 1
		}
	}
	h.Write(flags[:])
	writeField(h, []byte(in.Text))
	writeField(h, in.GlossaryCSV)
	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h hash.Hash, b []byte) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(b)))
	h.Write(n[:])
	h.Write(b)
}
