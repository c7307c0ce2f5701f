package kv

import (
	"context"
	"errors"
	"fmt"
)

// Pipeline queues commands and sends them in one Exec. It is a batch,
// not a transaction: see Backend for atomicity.
type Pipeline struct {
	backend Backend
	cmds    []Cmd
}

// Len returns the number of queued commands.
func (p *Pipeline) Len() int { return len(p.cmds) }

func (p *Pipeline) Get(key string) *Pipeline {
	p.cmds = append(p.cmds, Cmd{Op: OpGet, Key: key})
	return p
}

func (p *Pipeline) Set(key, value string) *Pipeline {
	p.cmds = append(p.cmds, Cmd{Op: OpSet, Key: key, Value: value})
	return p
}

func (p *Pipeline) Del(key string) *Pipeline {
	p.cmds = append(p.cmds, Cmd{Op: OpDel, Key: key})
	return p
}

func (p *Pipeline) ZRange(key string, start, stop int) *Pipeline {
	p.cmds = append(p.cmds, Cmd{Op: OpZRange, Key: key, Start: start, Stop: stop})
	return p
}

func (p *Pipeline) ZAdd(key string, members ...Z) *Pipeline {
	p.cmds = append(p.cmds, Cmd{Op: OpZAdd, Key: key, Members: members})
	return p
}

func (p *Pipeline) ZRem(key string, members ...string) *Pipeline {
	p.cmds = append(p.cmds, Cmd{Op: OpZRem, Key: key, Names: members})
	return p
}

func (p *Pipeline) HSet(key string, fields map[string]string) *Pipeline {
	p.cmds = append(p.cmds, Cmd{Op: OpHSet, Key: key, Fields: fields})
	return p
}

func (p *Pipeline) HGetAll(key string) *Pipeline {
	p.cmds = append(p.cmds, Cmd{Op: OpHGetAll, Key: key})
	return p
}

// Exec sends the queued commands and resets the pipeline. The returned
// results line up with the queued commands; the error joins every
// per-command failure.
func (p *Pipeline) Exec(ctx context.Context) ([]Result, error) {
	if len(p.cmds) == 0 {
		return nil, nil
	}
	cmds := p.cmds
	p.cmds = nil

	results, err := p.backend.Exec(ctx, cmds)
	if err != nil {
		return results, err
	}

	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", cmds[i].Op, cmds[i].Key, r.Err))
		}
	}
	return results, errors.Join(errs...)
}
