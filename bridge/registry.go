package bridge

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/tetratelabs/wazero/api"
)

// Arity is the number of packed-pointer arguments a host function
// takes. Every host function returns exactly one packed u64.
type Arity int

const (
	// Arity0 takes no input; the operation has no request record.
	Arity0 Arity = iota
	// Arity1 takes one packed u64 naming the JSON request buffer.
	Arity1
)

// HostFunc describes one registered host function. Call never panics
// on a reachable failure path; it always produces a JSON result
// envelope.
type HostFunc struct {
	Name  string
	Arity Arity
	Call  CallFunc
}

// CallFunc runs an operation against the State and returns the encoded
// result envelope.
type CallFunc func(ctx context.Context, state *State, input []byte) []byte

// hostFuncs assembles the descriptor set enabled by the State's
// clients. The set is fixed at construction; there is no runtime
// registration.
func (s *State) hostFuncs() []HostFunc {
	var out []HostFunc
	if s.Rest != nil {
		out = append(out, restCoreFuncs()...)
		out = append(out, compositeFuncs()...)
		out = append(out, collectionFuncs()...)
		out = append(out, processFuncs()...)
		out = append(out, listViewFuncs()...)
		out = append(out, quickActionFuncs()...)
		out = append(out, invocableActionFuncs()...)
		out = append(out, layoutFuncs()...)
		out = append(out, knowledgeFuncs()...)
		out = append(out, standaloneFuncs()...)
		out = append(out, passwordFuncs()...)
		out = append(out, schedulerFuncs()...)
		out = append(out, consentFuncs()...)
		out = append(out, binaryFuncs()...)
		out = append(out, embeddedServiceFuncs()...)
		out = append(out, searchFuncs()...)
	}
	if s.Bulk != nil {
		out = append(out, bulkFuncs()...)
	}
	if s.Tooling != nil {
		out = append(out, toolingFuncs()...)
	}
	if s.Metadata != nil {
		out = append(out, metadataFuncs()...)
	}
	return out
}

// buildRegistry indexes descriptors by name, rejecting duplicates.
func buildRegistry(funcs []HostFunc) (map[string]HostFunc, error) {
	registry := make(map[string]HostFunc, len(funcs))
	var errs *multierror.Error
	for _, fn := range funcs {
		if _, dup := registry[fn.Name]; dup {
			errs = multierror.Append(errs, fmt.Errorf("duplicate host function name %q", fn.Name))
			continue
		}
		registry[fn.Name] = fn
	}
	return registry, errs.ErrorOrNil()
}

// validateImports checks every "env" import of the compiled module
// against the enabled registry, by name and by signature. This runs at
// construction so a guest linked against a disabled or unknown
// operation fails fast instead of at first call.
func validateImports(imports []api.FunctionDefinition, registry map[string]HostFunc) error {
	var errs *multierror.Error
	for _, def := range imports {
		module, name, ok := def.Import()
		if !ok || module != importModule {
			continue
		}
		fn, known := registry[name]
		if !known {
			errs = multierror.Append(errs,
				fmt.Errorf("guest imports %s.%s, which is not a registered host function", module, name))
			continue
		}
		wantParams := 0
		if fn.Arity == Arity1 {
			wantParams = 1
		}
		if len(def.ParamTypes()) != wantParams || len(def.ResultTypes()) != 1 {
			errs = multierror.Append(errs,
				fmt.Errorf("guest imports %s.%s with %d params and %d results, want %d and 1",
					module, name, len(def.ParamTypes()), len(def.ResultTypes()), wantParams))
		}
	}
	return errs.ErrorOrNil()
}
