package domain

import (
	"fmt"
	"strings"
)

// SourceKind tags the variant of a Source.
type SourceKind uint8

const (
	SourceInvalid SourceKind = iota
	SourceDay
	SourceList
)

func (k SourceKind) String() string {
	switch k {
	case SourceDay:
		return "day"
	case SourceList:
		return "list"
	default:
		return "invalid"
	}
}

// Source identifies an ordered collection of todos: a calendar day or a
// list inside a tab. The zero value is invalid.
//
// Source is the only in-process representation. The wire string
// ("day:2025-01-15", "list:tab:list") is produced by String and parsed by
// ParseSource; the client cache key is produced by QueryKey.
type Source struct {
	Kind   SourceKind
	Date   string
	TabID  string
	ListID string
}

// DaySource returns the source of a calendar day.
func DaySource(date string) Source {
	return Source{Kind: SourceDay, Date: date}
}

// ListSource returns the source of a list.
func ListSource(tabID, listID string) Source {
	return Source{Kind: SourceList, TabID: tabID, ListID: listID}
}

// ParseSource parses the wire form. Any shape other than day:YYYY-MM-DD or
// list:<id>:<id> fails with a ValidationError on field "source".
func ParseSource(s string) (Source, error) {
	if rest, ok := strings.CutPrefix(s, "day:"); ok {
		if IsValidDateKey(rest) {
			return DaySource(rest), nil
		}
	} else if rest, ok := strings.CutPrefix(s, "list:"); ok {
		parts := strings.Split(rest, ":")
		if len(parts) == 2 && IsValidID(parts[0]) && IsValidID(parts[1]) {
			return ListSource(parts[0], parts[1]), nil
		}
	}
	return Source{}, NewValidationError("source", fmt.Sprintf("invalid source key %q", s))
}

// IsValidSourceKey reports whether s parses as a Source.
func IsValidSourceKey(s string) bool {
	_, err := ParseSource(s)
	return err == nil
}

// Valid reports whether the source satisfies the source key grammar.
func (s Source) Valid() bool {
	switch s.Kind {
	case SourceDay:
		return IsValidDateKey(s.Date)
	case SourceList:
		return IsValidID(s.TabID) && IsValidID(s.ListID)
	default:
		return false
	}
}

// IsDay reports whether s is a day source.
func (s Source) IsDay() bool { return s.Kind == SourceDay }

// IsList reports whether s is a list source.
func (s Source) IsList() bool { return s.Kind == SourceList }

// String returns the wire form, which is also the ordered-set storage key.
func (s Source) String() string {
	switch s.Kind {
	case SourceDay:
		return "day:" + s.Date
	case SourceList:
		return "list:" + s.TabID + ":" + s.ListID
	default:
		return ""
	}
}

// MarshalText encodes the wire form; invalid sources fail.
func (s Source) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, NewValidationError("source", "invalid source")
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes the wire form.
func (s *Source) UnmarshalText(b []byte) error {
	parsed, err := ParseSource(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Cache key tags.
const (
	DayTodosTag  = "dayTodos"
	ListTodosTag = "listTodos"
)

// QueryKey is the structured client cache key of a source: a 2-tuple
// (dayTodos, date) or a 3-tuple (listTodos, tabId, listId).
type QueryKey struct {
	Tag string
	A   string
	B   string
}

// Tuple returns the key elements; day keys have two, list keys three.
func (k QueryKey) Tuple() []string {
	if k.Tag == DayTodosTag {
		return []string{k.Tag, k.A}
	}
	return []string{k.Tag, k.A, k.B}
}

func (k QueryKey) String() string {
	return strings.Join(k.Tuple(), "/")
}

// HasPrefix reports whether the leading elements of k equal prefix.
func (k QueryKey) HasPrefix(prefix ...string) bool {
	tuple := k.Tuple()
	if len(prefix) > len(tuple) {
		return false
	}
	for i, p := range prefix {
		if tuple[i] != p {
			return false
		}
	}
	return true
}

// QueryKey returns the cache key of s.
func (s Source) QueryKey() QueryKey {
	switch s.Kind {
	case SourceDay:
		return QueryKey{Tag: DayTodosTag, A: s.Date}
	case SourceList:
		return QueryKey{Tag: ListTodosTag, A: s.TabID, B: s.ListID}
	default:
		return QueryKey{}
	}
}

// SourceFromQueryKey is the inverse of Source.QueryKey.
func SourceFromQueryKey(k QueryKey) (Source, error) {
	var s Source
	switch k.Tag {
	case DayTodosTag:
		if k.B == "" {
			s = DaySource(k.A)
		}
	case ListTodosTag:
		s = ListSource(k.A, k.B)
	}
	if !s.Valid() {
		return Source{}, NewValidationError("key", fmt.Sprintf("invalid cache key %s", k))
	}
	return s, nil
}

// QueryKeyFromSourceString maps a wire source directly to its cache key.
func QueryKeyFromSourceString(s string) (QueryKey, error) {
	src, err := ParseSource(s)
	if err != nil {
		return QueryKey{}, err
	}
	return src.QueryKey(), nil
}
