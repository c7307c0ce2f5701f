// Package sqlite implements kv.Backend on a single SQLite file through the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/kwokm/mk-todo/internal/adapter/migrations"
	"github.com/kwokm/mk-todo/internal/adapter/sqlkv"
	"github.com/kwokm/mk-todo/internal/kv"
)

// Store is a kv.Backend over SQLite. Every batch runs in one transaction.
type Store struct {
	db *sql.DB
	sb sqlkv.Builder
}

var _ kv.Backend = (*Store)(nil)

// Open opens (creating if needed) the database at path and, when migrate
// is set, applies the kv schema.
func Open(ctx context.Context, path string, migrate bool) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One writer at a time; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	if migrate {
		if err := migrations.Up(ctx, db, goose.DialectSQLite3); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Store{db: db, sb: sqlkv.Question()}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Exec runs cmds in a single transaction.
func (s *Store) Exec(ctx context.Context, cmds []kv.Cmd) (_ []kv.Result, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	results := make([]kv.Result, len(cmds))
	for i, cmd := range cmds {
		res, err := s.apply(ctx, tx, cmd)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", cmd.Op, cmd.Key, err)
		}
		results[i] = res
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return results, nil
}

func (s *Store) apply(ctx context.Context, tx *sql.Tx, cmd kv.Cmd) (kv.Result, error) {
	if sqlkv.Skip(cmd) {
		return kv.Result{}, nil
	}

	switch cmd.Op {
	case kv.OpGet:
		st, err := s.sb.GetString(cmd.Key)
		if err != nil {
			return kv.Result{}, err
		}
		var v string
		err = tx.QueryRowContext(ctx, st.SQL, st.Args...).Scan(&v)
		if errors.Is(err, sql.ErrNoRows) {
			return kv.Result{}, nil
		}
		if err != nil {
			return kv.Result{}, err
		}
		return kv.Result{Value: v, Found: true}, nil

	case kv.OpSet:
		st, err := s.sb.SetString(cmd.Key, cmd.Value)
		if err != nil {
			return kv.Result{}, err
		}
		return kv.Result{}, exec(ctx, tx, st)

	case kv.OpDel:
		stmts, err := s.sb.Delete(cmd.Key)
		if err != nil {
			return kv.Result{}, err
		}
		for _, st := range stmts {
			if err := exec(ctx, tx, st); err != nil {
				return kv.Result{}, err
			}
		}
		return kv.Result{}, nil

	case kv.OpZRange:
		st, err := s.sb.ZRange(cmd.Key)
		if err != nil {
			return kv.Result{}, err
		}
		var rows []sqlkv.ZRow
		if err := sqlscan.Select(ctx, tx, &rows, st.SQL, st.Args...); err != nil {
			return kv.Result{}, err
		}
		return sqlkv.RangeResult(rows, cmd.Start, cmd.Stop), nil

	case kv.OpZAdd:
		st, err := s.sb.ZAdd(cmd.Key, cmd.Members)
		if err != nil {
			return kv.Result{}, err
		}
		return kv.Result{}, exec(ctx, tx, st)

	case kv.OpZRem:
		st, err := s.sb.ZRem(cmd.Key, cmd.Names)
		if err != nil {
			return kv.Result{}, err
		}
		return kv.Result{}, exec(ctx, tx, st)

	case kv.OpHSet:
		st, err := s.sb.HSet(cmd.Key, cmd.Fields)
		if err != nil {
			return kv.Result{}, err
		}
		return kv.Result{}, exec(ctx, tx, st)

	case kv.OpHGetAll:
		st, err := s.sb.HGetAll(cmd.Key)
		if err != nil {
			return kv.Result{}, err
		}
		var rows []sqlkv.FieldRow
		if err := sqlscan.Select(ctx, tx, &rows, st.SQL, st.Args...); err != nil {
			return kv.Result{}, err
		}
		return sqlkv.HashResult(rows), nil
	}

	return kv.Result{}, kv.ErrUnknownOp
}

func exec(ctx context.Context, tx *sql.Tx, st sqlkv.Statement) error {
	_, err := tx.ExecContext(ctx, st.SQL, st.Args...)
	return err
}

// Keys lists keys starting with prefix.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	st, err := s.sb.Keys(prefix)
	if err != nil {
		return nil, err
	}
	var keys []string
	if err := sqlscan.Select(ctx, s.db, &keys, st.SQL, st.Args...); err != nil {
		return nil, fmt.Errorf("KEYS %s: %w", prefix, err)
	}
	return keys, nil
}

// Ping checks the database file is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
