package kv

import "sort"

// Op names a storage command.
type Op string

const (
	OpGet     Op = "GET"
	OpSet     Op = "SET"
	OpDel     Op = "DEL"
	OpZRange  Op = "ZRANGE"
	OpZAdd    Op = "ZADD"
	OpZRem    Op = "ZREM"
	OpHSet    Op = "HSET"
	OpHGetAll Op = "HGETALL"
)

// Cmd is one queued storage command. Only the fields relevant to Op are set.
type Cmd struct {
	Op      Op
	Key     string
	Value   string
	Start   int
	Stop    int
	Members []Z
	Names   []string
	Fields  map[string]string
}

// Result is the outcome of one Cmd.
type Result struct {
	Value   string
	Found   bool
	Members []Z
	Fields  map[string]string
	Err     error
}

// MemberNames returns the member names of a ZRANGE result.
func (r Result) MemberNames() []string {
	names := make([]string, len(r.Members))
	for i, z := range r.Members {
		names[i] = z.Member
	}
	return names
}

// RangeBounds converts inclusive, possibly negative ZRANGE indexes over a set
// of n members into a half-open slice range. ok is false for an empty range.
func RangeBounds(n, start, stop int) (lo, hi int, ok bool) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return 0, 0, false
	}
	return start, stop + 1, true
}

// SortZ orders members by score, then member name.
func SortZ(members []Z) {
	sort.Slice(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			return members[i].Score < members[j].Score
		}
		return members[i].Member < members[j].Member
	})
}
