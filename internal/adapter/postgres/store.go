package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/kwokm/mk-todo/internal/adapter/sqlkv"
	"github.com/kwokm/mk-todo/internal/kv"
)

// Store is a kv.Backend over PostgreSQL. Every batch runs in one
// transaction, so a pipeline is applied entirely or not at all.
type Store struct {
	db DB
	tx *TxManager
	sb sqlkv.Builder
}

var _ kv.Backend = (*Store)(nil)

// NewStore creates a Store. The kv schema must already be migrated.
func NewStore(db DB) *Store {
	return &Store{db: db, tx: NewTxManager(db), sb: sqlkv.Dollar()}
}

// Exec runs cmds in a single transaction.
func (s *Store) Exec(ctx context.Context, cmds []kv.Cmd) ([]kv.Result, error) {
	results := make([]kv.Result, len(cmds))

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := QuerierFromCtx(ctx, s.db)
		for i, cmd := range cmds {
			res, err := s.apply(ctx, q, cmd)
			if err != nil {
				return mapError(err, string(cmd.Op), cmd.Key)
			}
			results[i] = res
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Store) apply(ctx context.Context, q Querier, cmd kv.Cmd) (kv.Result, error) {
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
		err = q.QueryRow(ctx, st.SQL, st.Args...).Scan(&v)
		if errors.Is(err, pgx.ErrNoRows) {
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
		return kv.Result{}, s.exec(ctx, q, st)

	case kv.OpDel:
		stmts, err := s.sb.Delete(cmd.Key)
		if err != nil {
			return kv.Result{}, err
		}
		for _, st := range stmts {
			if err := s.exec(ctx, q, st); err != nil {
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
		if err := pgxscan.Select(ctx, q, &rows, st.SQL, st.Args...); err != nil {
			return kv.Result{}, err
		}
		return sqlkv.RangeResult(rows, cmd.Start, cmd.Stop), nil

	case kv.OpZAdd:
		st, err := s.sb.ZAdd(cmd.Key, cmd.Members)
		if err != nil {
			return kv.Result{}, err
		}
		return kv.Result{}, s.exec(ctx, q, st)

	case kv.OpZRem:
		st, err := s.sb.ZRem(cmd.Key, cmd.Names)
		if err != nil {
			return kv.Result{}, err
		}
		return kv.Result{}, s.exec(ctx, q, st)

	case kv.OpHSet:
		st, err := s.sb.HSet(cmd.Key, cmd.Fields)
		if err != nil {
			return kv.Result{}, err
		}
		return kv.Result{}, s.exec(ctx, q, st)

	case kv.OpHGetAll:
		st, err := s.sb.HGetAll(cmd.Key)
		if err != nil {
			return kv.Result{}, err
		}
		var rows []sqlkv.FieldRow
		if err := pgxscan.Select(ctx, q, &rows, st.SQL, st.Args...); err != nil {
			return kv.Result{}, err
		}
		return sqlkv.HashResult(rows), nil
	}

	return kv.Result{}, fmt.Errorf("%w: %s", kv.ErrUnknownOp, cmd.Op)
}

func (s *Store) exec(ctx context.Context, q Querier, st sqlkv.Statement) error {
	_, err := q.Exec(ctx, st.SQL, st.Args...)
	return err
}

// Keys lists keys starting with prefix.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	st, err := s.sb.Keys(prefix)
	if err != nil {
		return nil, err
	}
	var keys []string
	if err := pgxscan.Select(ctx, s.db, &keys, st.SQL, st.Args...); err != nil {
		return nil, mapError(err, "KEYS", prefix)
	}
	return keys, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
