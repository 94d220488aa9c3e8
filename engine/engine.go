package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/formulang/formula/lexer"
	"github.com/formulang/formula/number"
	"github.com/formulang/formula/parser"
)

// ErrNotCached is wrapped by EvaluateCached for unregistered keys; it
// never falls back to implicit compilation.
var ErrNotCached = errors.New("expression key not cached")

// CacheStats tracks cache counters.
type CacheStats struct {
	Hits     int64 // Cache lookups that found a compiled expression.
	Misses   int64 // Cache lookups that had to compile.
	Compiles int64 // Total compilations performed by the engine.
}

// Engine is the expression engine facade: it compiles expressions over
// one numeric representation and owns a per-instance compiled
// expression cache. The cache is guarded for concurrent use; contexts
// are not, see Context.
type Engine[T comparable] struct {
	ops number.Ops[T]

	mu        sync.RWMutex
	cache     map[string]*Compiled[T]
	stats     CacheStats
	autoCache bool

	// Lifecycle hooks, fired around every evaluation routed through a
	// Compiled expression. The string is the cache key when the
	// expression was compiled under one, the source text otherwise.
	OnBeforeEvaluate func(label string, ctx *Context[T])
	OnAfterEvaluate  func(label string, ctx *Context[T], result T)
}

// New creates an engine for the given numeric representation with
// auto-caching enabled.
func New[T comparable](ops number.Ops[T]) *Engine[T] {
	return &Engine[T]{
		ops:       ops,
		cache:     make(map[string]*Compiled[T]),
		autoCache: true,
	}
}

// Ops returns the engine's numeric capability set.
func (e *Engine[T]) Ops() number.Ops[T] { return e.ops }

// SetAutoCache toggles caching of expressions evaluated by text. When
// disabled, Evaluate compiles fresh on every call.
func (e *Engine[T]) SetAutoCache(enabled bool) {
	e.mu.Lock()
	e.autoCache = enabled
	e.mu.Unlock()
}

// compile tokenizes and parses without touching the cache or stats.
func (e *Engine[T]) compile(label, text string) (*Compiled[T], error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", text, err)
	}
	root, err := parser.Parse(tokens, e.ops)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", text, err)
	}
	return &Compiled[T]{root: root, ops: e.ops, source: text, label: label, engine: e}, nil
}

// Compile compiles an expression without touching the cache.
func (e *Engine[T]) Compile(text string) (*Compiled[T], error) {
	c, err := e.compile(text, text)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.stats.Compiles++
	e.mu.Unlock()
	return c, nil
}

// Evaluate compiles (or fetches from cache, when auto-caching is on)
// and evaluates the expression against the given context.
func (e *Engine[T]) Evaluate(text string, ctx *Context[T]) (T, error) {
	e.mu.RLock()
	auto := e.autoCache
	e.mu.RUnlock()

	var c *Compiled[T]
	var err error
	if auto {
		c, err = e.lookupOrCompile(text, text)
	} else {
		c, err = e.Compile(text)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Evaluate(ctx)
}

// lookupOrCompile is the check-then-insert step, atomic with respect to
// other engine users.
func (e *Engine[T]) lookupOrCompile(key, text string) (*Compiled[T], error) {
	e.mu.RLock()
	c, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		e.mu.Lock()
		e.stats.Hits++
		e.mu.Unlock()
		return c, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.cache[key]; ok {
		e.stats.Hits++
		return c, nil
	}
	c, err := e.compile(key, text)
	if err != nil {
		return nil, err
	}
	e.stats.Misses++
	e.stats.Compiles++
	e.cache[key] = c
	return c, nil
}

// CompileAndCache compiles the expression and stores it under a
// caller-chosen key, replacing any previous entry.
func (e *Engine[T]) CompileAndCache(key, text string) (*Compiled[T], error) {
	c, err := e.compile(key, text)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.stats.Compiles++
	e.cache[key] = c
	e.mu.Unlock()
	return c, nil
}

// Precompile compiles and caches a whole key->expression catalog,
// reporting every failing entry.
func (e *Engine[T]) Precompile(exprs map[string]string) error {
	var errs []error
	for key, text := range exprs {
		if _, err := e.CompileAndCache(key, text); err != nil {
			errs = append(errs, fmt.Errorf("precompile %q: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// Cached returns the compiled expression stored under key, if any.
func (e *Engine[T]) Cached(key string) (*Compiled[T], bool) {
	e.mu.RLock()
	c, ok := e.cache[key]
	e.mu.RUnlock()
	return c, ok
}

// EvaluateCached evaluates the expression registered under key. An
// unregistered key is an error.
func (e *Engine[T]) EvaluateCached(key string, ctx *Context[T]) (T, error) {
	c, ok := e.Cached(key)
	if !ok {
		var zero T
		return zero, fmt.Errorf("evaluate %q: %w", key, ErrNotCached)
	}
	e.mu.Lock()
	e.stats.Hits++
	e.mu.Unlock()
	return c.Evaluate(ctx)
}

// RemoveFromCache drops the entry stored under key.
func (e *Engine[T]) RemoveFromCache(key string) {
	e.mu.Lock()
	delete(e.cache, key)
	e.mu.Unlock()
}

// ClearCache drops every cache entry. Counters are kept.
func (e *Engine[T]) ClearCache() {
	e.mu.Lock()
	e.cache = make(map[string]*Compiled[T])
	e.mu.Unlock()
}

// Stats returns a snapshot of the cache counters.
func (e *Engine[T]) Stats() CacheStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}
