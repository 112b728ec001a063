package cellgrid

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Compiled mask conditions are cached by expression string, so repeated
// mask queries with the same expression compile once.
var conditionCache sync.Map // expression string → *vm.Program

// maskProgram is a compiled boolean mask condition.
type maskProgram struct {
	expression string
	program    *vm.Program
}

// compileCondition compiles a mask expression. Attributes that a given cell
// object does not carry evaluate as undefined rather than failing the whole
// query, so one expression can run against heterogeneous payloads.
func compileCondition(expression string) (*maskProgram, error) {
	if cached, ok := conditionCache.Load(expression); ok {
		return &maskProgram{expression: expression, program: cached.(*vm.Program)}, nil
	}
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("cellgrid: compile mask expression %q: %w", expression, err)
	}
	conditionCache.Store(expression, program)
	return &maskProgram{expression: expression, program: program}, nil
}

// isTrue evaluates the condition against the environment derived from obj.
// A nil result counts as false; any other non-boolean result is an error.
func (p *maskProgram) isTrue(obj any) (bool, error) {
	result, err := expr.Run(p.program, conditionEnv(obj))
	if err != nil {
		return false, fmt.Errorf("cellgrid: evaluate mask expression %q: %w", p.expression, err)
	}
	if result == nil {
		return false, nil
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("cellgrid: mask expression %q evaluated to %T, expected bool: %w",
			p.expression, result, ErrValue)
	}
	return b, nil
}

// conditionEnv derives the expression environment from a stored object: tag
// bag entries and map keys become variables directly, exported struct
// fields become variables by name, and the object itself is always bound to
// "value".
func conditionEnv(obj any) map[string]any {
	env := map[string]any{"value": obj}
	switch o := obj.(type) {
	case Tags:
		for k, v := range o {
			env[k] = v
		}
		return env
	case map[string]any:
		for k, v := range o {
			env[k] = v
		}
		return env
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return env
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return env
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		env[rt.Field(i).Name] = f.Interface()
	}
	return env
}
