// Package kv defines the storage primitives the ordering engine is written
// against: string values, flat hashes and score-ordered sets, plus a
// pipeline that batches commands into one round trip.
//
// Backends implement Backend (a command executor); Client layers the
// Store convenience API over any Backend.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownOp is returned by backends for an unsupported command.
var ErrUnknownOp = errors.New("kv: unknown op")

// Z is a member of an ordered set with its score.
type Z struct {
	Score  float64
	Member string
}

// Store is the storage interface consumed by the services.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error

	// ZRange returns members ordered by (score, member). start and stop are
	// inclusive indexes; negative values count from the end (-1 = last).
	ZRange(ctx context.Context, key string, start, stop int) ([]string, error)
	ZRangeWithScores(ctx context.Context, key string, start, stop int) ([]Z, error)
	ZAdd(ctx context.Context, key string, members ...Z) error
	ZRem(ctx context.Context, key string, members ...string) error

	HSet(ctx context.Context, key string, fields map[string]string) error
	// HGetAll returns nil when the hash does not exist.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// Keys lists every key starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error

	Pipeline() *Pipeline
}

// Backend executes batches of commands in order and returns one Result per
// command. A backend reports a per-command failure in Result.Err, or fails
// the whole batch with a non-nil error. Whether a batch is atomic is
// backend-specific: the memory, PostgreSQL and SQLite backends all apply a
// batch atomically.
type Backend interface {
	Exec(ctx context.Context, cmds []Cmd) ([]Result, error)
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
}

// Client implements Store on top of a Backend.
type Client struct {
	backend Backend
}

var _ Store = (*Client)(nil)

// NewClient wraps backend.
func NewClient(backend Backend) *Client {
	return &Client{backend: backend}
}

func (c *Client) do(ctx context.Context, cmd Cmd) (Result, error) {
	results, err := c.backend.Exec(ctx, []Cmd{cmd})
	if err != nil {
		return Result{}, err
	}
	if len(results) != 1 {
		return Result{}, fmt.Errorf("kv: %s %s: expected 1 result, got %d", cmd.Op, cmd.Key, len(results))
	}
	return results[0], results[0].Err
}

func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	res, err := c.do(ctx, Cmd{Op: OpGet, Key: key})
	if err != nil {
		return "", false, err
	}
	return res.Value, res.Found, nil
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	_, err := c.do(ctx, Cmd{Op: OpSet, Key: key, Value: value})
	return err
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	p := c.Pipeline()
	for _, k := range keys {
		p.Del(k)
	}
	_, err := p.Exec(ctx)
	return err
}

func (c *Client) ZRange(ctx context.Context, key string, start, stop int) ([]string, error) {
	res, err := c.do(ctx, Cmd{Op: OpZRange, Key: key, Start: start, Stop: stop})
	if err != nil {
		return nil, err
	}
	return res.MemberNames(), nil
}

func (c *Client) ZRangeWithScores(ctx context.Context, key string, start, stop int) ([]Z, error) {
	res, err := c.do(ctx, Cmd{Op: OpZRange, Key: key, Start: start, Stop: stop})
	if err != nil {
		return nil, err
	}
	return res.Members, nil
}

func (c *Client) ZAdd(ctx context.Context, key string, members ...Z) error {
	if len(members) == 0 {
		return nil
	}
	_, err := c.do(ctx, Cmd{Op: OpZAdd, Key: key, Members: members})
	return err
}

func (c *Client) ZRem(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	_, err := c.do(ctx, Cmd{Op: OpZRem, Key: key, Names: members})
	return err
}

func (c *Client) HSet(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := c.do(ctx, Cmd{Op: OpHSet, Key: key, Fields: fields})
	return err
}

func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	res, err := c.do(ctx, Cmd{Op: OpHGetAll, Key: key})
	if err != nil {
		return nil, err
	}
	if len(res.Fields) == 0 {
		return nil, nil
	}
	return res.Fields, nil
}

func (c *Client) Keys(ctx context.Context, prefix string) ([]string, error) {
	return c.backend.Keys(ctx, prefix)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.backend.Ping(ctx)
}

func (c *Client) Pipeline() *Pipeline {
	return &Pipeline{backend: c.backend}
}

// GetJSON decodes the JSON value stored at key into v. found is false when
// the key does not exist; v is then left untouched.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores v as JSON under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(raw))
}
