// Package sqlkv builds the SQL statements shared by the relational kv
// backends. Values live in three tables: kv_strings, kv_hashes and
// kv_zsets (see package migrations).
package sqlkv

import (
	"sort"
	"strings"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"

	"github.com/kwokm/mk-todo/internal/kv"
)

const (
	stringsTable = "kv_strings"
	hashesTable  = "kv_hashes"
	zsetsTable   = "kv_zsets"
)

// Statement is a rendered SQL statement.
type Statement struct {
	SQL  string
	Args []any
}

// Builder renders statements for one placeholder format.
type Builder struct {
	sb     sq.StatementBuilderType
	format sq.PlaceholderFormat
}

// Dollar is the PostgreSQL builder.
func Dollar() Builder {
	return Builder{sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), format: sq.Dollar}
}

// Question is the SQLite builder.
func Question() Builder {
	return Builder{sb: sq.StatementBuilder.PlaceholderFormat(sq.Question), format: sq.Question}
}

func render(b sq.Sqlizer) (Statement, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return Statement{}, err
	}
	return Statement{SQL: sql, Args: args}, nil
}

// GetString selects the value of a string key.
func (b Builder) GetString(key string) (Statement, error) {
	return render(b.sb.Select("value").From(stringsTable).Where(sq.Eq{"key": key}))
}

// SetString upserts a string key.
func (b Builder) SetString(key, value string) (Statement, error) {
	return render(b.sb.Insert(stringsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value"))
}

// Delete removes key from every table.
func (b Builder) Delete(key string) ([]Statement, error) {
	stmts := make([]Statement, 0, 3)
	for _, table := range []string{stringsTable, hashesTable, zsetsTable} {
		st, err := render(b.sb.Delete(table).Where(sq.Eq{"key": key}))
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return stmts, nil
}

// ZRange selects every member of a set ordered by score then member.
// Index slicing happens in Go (kv.RangeBounds).
func (b Builder) ZRange(key string) (Statement, error) {
	return render(b.sb.Select("member", "score").
		From(zsetsTable).
		Where(sq.Eq{"key": key}).
		OrderBy("score", "member"))
}

// ZAdd upserts members of a set.
func (b Builder) ZAdd(key string, members []kv.Z) (Statement, error) {
	ins := b.sb.Insert(zsetsTable).Columns("key", "member", "score")
	for _, z := range dedupeZ(members) {
		ins = ins.Values(key, z.Member, z.Score)
	}
	return render(ins.Suffix("ON CONFLICT (key, member) DO UPDATE SET score = excluded.score"))
}

// ZRem deletes members of a set.
func (b Builder) ZRem(key string, members []string) (Statement, error) {
	return render(b.sb.Delete(zsetsTable).Where(sq.Eq{"key": key, "member": members}))
}

// HSet upserts hash fields. Fields are written in name order.
func (b Builder) HSet(key string, fields map[string]string) (Statement, error) {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)

	ins := b.sb.Insert(hashesTable).Columns("key", "field", "value")
	for _, f := range names {
		ins = ins.Values(key, f, fields[f])
	}
	return render(ins.Suffix("ON CONFLICT (key, field) DO UPDATE SET value = excluded.value"))
}

// HGetAll selects every field of a hash.
func (b Builder) HGetAll(key string) (Statement, error) {
	return render(b.sb.Select("field", "value").From(hashesTable).Where(sq.Eq{"key": key}))
}

// Keys selects the distinct keys of all tables starting with prefix.
func (b Builder) Keys(prefix string) (Statement, error) {
	parts := make([]string, 0, 3)
	var args []any
	for _, table := range []string{stringsTable, hashesTable, zsetsTable} {
		sel := sq.Select("key").From(table)
		if prefix != "" {
			sel = sel.Where(sq.Expr("substr(key, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix))
		}
		sql, selArgs, err := sel.ToSql()
		if err != nil {
			return Statement{}, err
		}
		parts = append(parts, sql)
		args = append(args, selArgs...)
	}

	sql, err := b.format.ReplacePlaceholders(strings.Join(parts, " UNION ") + " ORDER BY key")
	if err != nil {
		return Statement{}, err
	}
	return Statement{SQL: sql, Args: args}, nil
}

// dedupeZ keeps the last score of each member; a multi-row upsert may not
// touch the same row twice.
func dedupeZ(members []kv.Z) []kv.Z {
	idx := make(map[string]int, len(members))
	out := make([]kv.Z, 0, len(members))
	for _, z := range members {
		if i, ok := idx[z.Member]; ok {
			out[i] = z
			continue
		}
		idx[z.Member] = len(out)
		out = append(out, z)
	}
	return out
}

// ZRow is a scanned kv_zsets row.
type ZRow struct {
	Member string  `db:"member"`
	Score  float64 `db:"score"`
}

// FieldRow is a scanned kv_hashes row.
type FieldRow struct {
	Field string `db:"field"`
	Value string `db:"value"`
}

// RangeResult slices ordered rows into a ZRANGE result.
func RangeResult(rows []ZRow, start, stop int) kv.Result {
	lo, hi, ok := kv.RangeBounds(len(rows), start, stop)
	if !ok {
		return kv.Result{Members: []kv.Z{}}
	}
	members := make([]kv.Z, 0, hi-lo)
	for _, r := range rows[lo:hi] {
		members = append(members, kv.Z{Score: r.Score, Member: r.Member})
	}
	return kv.Result{Members: members}
}

// HashResult folds field rows into a HGETALL result.
func HashResult(rows []FieldRow) kv.Result {
	if len(rows) == 0 {
		return kv.Result{}
	}
	fields := make(map[string]string, len(rows))
	for _, r := range rows {
		fields[r.Field] = r.Value
	}
	return kv.Result{Fields: fields, Found: true}
}

// Skip reports whether cmd is a no-op that needs no statement.
func Skip(cmd kv.Cmd) bool {
	switch cmd.Op {
	case kv.OpZAdd:
		return len(cmd.Members) == 0
	case kv.OpZRem:
		return len(cmd.Names) == 0
	case kv.OpHSet:
		return len(cmd.Fields) == 0
	}
	return false
}
