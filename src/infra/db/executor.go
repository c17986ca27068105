package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ErrExecFailed is the generic error surfaced for any statement that fails
// to execute. The driver message is logged where the failure happens and
// never reaches callers. No retry is performed.
var ErrExecFailed = errors.New("statement execution failed")

// Param is a bound statement parameter, restricted to the scalar kinds the
// service persists: integer, text, boolean, or null.
type Param struct {
	value any
}

// Int builds an integer parameter.
func Int(v int64) Param { return Param{value: v} }

// Text builds a text parameter.
func Text(s string) Param { return Param{value: s} }

// Bool builds a boolean parameter.
func Bool(b bool) Param { return Param{value: b} }

// Null builds a null parameter.
func Null() Param { return Param{} }

// Value converts an arbitrary scalar into a Param, rejecting anything
// outside the supported union. Nil pointers become null parameters.
func Value(v any) (Param, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case int:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case string:
		return Text(x), nil
	case bool:
		return Bool(x), nil
	case *int64:
		if x == nil {
			return Null(), nil
		}
		return Int(*x), nil
	case *string:
		if x == nil {
			return Null(), nil
		}
		return Text(*x), nil
	case *bool:
		if x == nil {
			return Null(), nil
		}
		return Bool(*x), nil
	default:
		return Param{}, fmt.Errorf("unsupported parameter type %T", v)
	}
}

// Params maps statement parameter names to bound values.
type Params map[string]Param

// named converts the params into the driver's native named-argument form.
// Binding never goes through string concatenation.
func (p Params) named() pgx.NamedArgs {
	args := make(pgx.NamedArgs, len(p))
	for name, param := range p {
		args[name] = param.value
	}
	return args
}

// Row is a result row keyed by column name.
type Row map[string]any

// Executor runs parameterized statements through the managed pool.
// Obtaining the pool on every call is what triggers lazy initialization
// on the first statement of the process.
type Executor struct {
	mgr *Manager
	log *slog.Logger
}

// NewExecutor creates an Executor on top of the pool manager.
func NewExecutor(mgr *Manager, log *slog.Logger) *Executor {
	return &Executor{mgr: mgr, log: log}
}

// Query executes a statement and returns its rows in result order.
func (e *Executor) Query(ctx context.Context, statement string, params Params) ([]Row, error) {
	pg, err := e.mgr.Get(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pg.Pool.Query(ctx, statement, params.named())
	if err != nil {
		return nil, e.fail(statement, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, e.fail(statement, err)
		}
		row := make(Row, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, e.fail(statement, err)
	}
	return out, nil
}

// Exec executes a mutation statement and returns the affected-row count.
func (e *Executor) Exec(ctx context.Context, statement string, params Params) (int64, error) {
	pg, err := e.mgr.Get(ctx)
	if err != nil {
		return 0, err
	}

	tag, err := pg.Pool.Exec(ctx, statement, params.named())
	if err != nil {
		return 0, e.fail(statement, err)
	}
	return tag.RowsAffected(), nil
}

// Ping verifies the database is reachable through the pool.
func (e *Executor) Ping(ctx context.Context) error {
	pg, err := e.mgr.Get(ctx)
	if err != nil {
		return err
	}
	return pg.Health(ctx)
}

func (e *Executor) fail(statement string, err error) error {
	e.log.Error("statement execution failed",
		"verb", statementVerb(statement),
		"error", err,
	)
	return ErrExecFailed
}

// statementVerb extracts the leading SQL keyword for log labelling.
func statementVerb(statement string) string {
	fields := strings.Fields(statement)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
