package bridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"
)

// Bridge holds one compiled guest module and the host functions it may
// call. Construction compiles and validates the guest; Call
// instantiates a fresh module instance per invocation, so a single
// instance never runs two calls at once while independent calls and
// bridges proceed concurrently.
type Bridge struct {
	runtime  wazero.Runtime
	cache    wazero.CompilationCache
	compiled wazero.CompiledModule
	state    *State
	registry map[string]HostFunc
	logger   *zap.Logger

	mu     sync.Mutex
	closed bool
}

// Option configures a Bridge at construction time.
type Option func(*config)

type config struct {
	logger           *zap.Logger
	cacheDir         string
	diskCache        bool
	memoryLimitPages uint32
}

// WithLogger sets the structured logger. The default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCompilationCacheDir enables a persistent compilation cache so
// repeated loads of the same guest skip recompilation.
func WithCompilationCacheDir(dir string) Option {
	return func(c *config) {
		c.diskCache = true
		c.cacheDir = dir
	}
}

// WithMemoryLimit caps guest memory. Each page is 64KB; zero keeps the
// wazero default.
func WithMemoryLimit(pages uint32) Option {
	return func(c *config) { c.memoryLimitPages = pages }
}

// New compiles moduleBytes, registers the host functions enabled by
// state, and validates the guest against them. A guest that imports an
// unknown or disabled host function, or one with the wrong signature,
// or that does not export the allocator, fails here rather than at
// first call.
func New(ctx context.Context, moduleBytes []byte, state *State, opts ...Option) (*Bridge, error) {
	if state == nil {
		return nil, fmt.Errorf("bridge: state is required")
	}
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	registry, err := buildRegistry(state.hostFuncs())
	if err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	if len(registry) == 0 {
		return nil, fmt.Errorf("bridge: state enables no host functions")
	}

	var cache wazero.CompilationCache
	if cfg.diskCache {
		cache, err = wazero.NewCompilationCacheWithDir(cfg.cacheDir)
		if err != nil {
			return nil, fmt.Errorf("bridge: create compilation cache: %w", err)
		}
	}

	rtConfig := wazero.NewRuntimeConfig().WithCloseOnContextDone(true)
	if cache != nil {
		rtConfig = rtConfig.WithCompilationCache(cache)
	}
	if cfg.memoryLimitPages > 0 {
		rtConfig = rtConfig.WithMemoryLimitPages(cfg.memoryLimitPages)
	}

	rt := wazero.NewRuntimeWithConfig(ctx, rtConfig)
	b := &Bridge{
		runtime:  rt,
		cache:    cache,
		state:    state,
		registry: registry,
		logger:   cfg.logger,
	}

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		b.Close(ctx)
		return nil, fmt.Errorf("bridge: instantiate WASI: %w", err)
	}

	hostModule := rt.NewHostModuleBuilder(importModule)
	for _, fn := range registry {
		hostModule = hostModule.NewFunctionBuilder().
			WithGoModuleFunction(wasmFunc(fn, state), paramTypes(fn.Arity), resultTypes).
			Export(fn.Name)
	}
	if _, err := hostModule.Instantiate(ctx); err != nil {
		b.Close(ctx)
		return nil, fmt.Errorf("bridge: instantiate host module: %w", err)
	}

	compiled, err := rt.CompileModule(ctx, moduleBytes)
	if err != nil {
		b.Close(ctx)
		return nil, fmt.Errorf("bridge: compile guest: %w", err)
	}
	b.compiled = compiled

	if err := validateImports(compiled.ImportedFunctions(), registry); err != nil {
		b.Close(ctx)
		return nil, fmt.Errorf("bridge: %w", err)
	}
	if _, ok := compiled.ExportedFunctions()[allocExport]; !ok {
		b.Close(ctx)
		return nil, fmt.Errorf("bridge: guest does not export %s", allocExport)
	}

	b.logger.Debug("bridge ready", zap.Int("host_functions", len(registry)))
	return b, nil
}

// Functions lists the registered host function names, for diagnostics.
func (b *Bridge) Functions() []string {
	names := make([]string, 0, len(b.registry))
	for name := range b.registry {
		names = append(names, name)
	}
	return names
}

// Call invokes the guest export fn with input and returns the guest's
// raw response bytes.
//
// Host functions run synchronously on the goroutine driving the guest:
// the blocking remote call happens inline, and Go's scheduler gives
// every invocation independent forward progress, so concurrent calls
// on different instances never starve each other. The caller's ctx
// flows into the guest and into every remote call the guest triggers;
// cancelling it closes the running instance.
func (b *Bridge) Call(ctx context.Context, fn string, input []byte) ([]byte, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, fmt.Errorf("bridge: closed")
	}
	b.mu.Unlock()

	ctx, fault := withCallFault(ctx)

	modConfig := wazero.NewModuleConfig().
		WithName("").
		WithStartFunctions("_initialize")
	mod, err := b.runtime.InstantiateModule(ctx, b.compiled, modConfig)
	if err != nil {
		return nil, fmt.Errorf("bridge: instantiate guest: %w", err)
	}
	defer mod.Close(ctx)

	entry := mod.ExportedFunction(fn)
	if entry == nil {
		return nil, fmt.Errorf("bridge: guest does not export %q", fn)
	}

	var args []uint64
	if len(input) > 0 {
		packed, err := writeGuestBytes(ctx, mod, fn, input)
		if err != nil {
			return nil, err
		}
		args = append(args, packed)
	} else {
		args = append(args, packPtr(0, 0))
	}

	results, err := entry.Call(ctx, args...)
	if fault.err != nil {
		return nil, fault.err
	}
	if err != nil {
		return nil, fmt.Errorf("bridge: call %s: %w", fn, err)
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("bridge: call %s: guest returned %d values, want 1", fn, len(results))
	}

	output, ok := readGuestBytes(mod, results[0])
	if !ok {
		return nil, &ABIError{Fn: fn, Op: "read", Err: fmt.Errorf("response region is outside guest memory")}
	}
	return output, nil
}

// Close releases the runtime and the compilation cache. It is safe to
// call more than once.
func (b *Bridge) Close(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	var errs *multierror.Error
	if err := b.runtime.Close(ctx); err != nil {
		errs = multierror.Append(errs, err)
	}
	if b.cache != nil {
		if err := b.cache.Close(ctx); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}
