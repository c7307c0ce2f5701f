package domain

import (
	"strconv"
	"time"
)

// TimestampLayout is the wire and storage format for todo timestamps
// (ISO-8601 in UTC with millisecond precision).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Todo is a single item owned by exactly one Source.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TodoUpdateParams holds the partial update applied by Update.
// Nil fields are left unchanged.
type TodoUpdateParams struct {
	Text      *string
	Completed *bool
}

// Empty reports whether no field is set.
func (p TodoUpdateParams) Empty() bool {
	return p.Text == nil && p.Completed == nil
}

// Apply returns a copy of t with the set fields overwritten.
// UpdatedAt is not touched.
func (p TodoUpdateParams) Apply(t Todo) Todo {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// TodoKey is the content record key of a todo.
func TodoKey(id string) string {
	return "todo:" + id
}

// Fields encodes t as the flat string hash stored under TodoKey.
func (t Todo) Fields() map[string]string {
	return map[string]string{
		"id":        t.ID,
		"text":      t.Text,
		"completed": strconv.FormatBool(t.Completed),
		"createdAt": FormatTimestamp(t.CreatedAt),
		"updatedAt": FormatTimestamp(t.UpdatedAt),
	}
}

// TodoFromFields decodes a stored hash. ok is false when the hash is empty
// or lacks an id; unparsable timestamps decode as the zero time.
func TodoFromFields(fields map[string]string) (Todo, bool) {
	if len(fields) == 0 || fields["id"] == "" {
		return Todo{}, false
	}
	completed, _ := strconv.ParseBool(fields["completed"])
	created, _ := time.Parse(time.RFC3339Nano, fields["createdAt"])
	updated, _ := time.Parse(time.RFC3339Nano, fields["updatedAt"])
	return Todo{
		ID:        fields["id"],
		Text:      fields["text"],
		Completed: completed,
		CreatedAt: created,
		UpdatedAt: updated,
	}, true
}

// FormatTimestamp renders t in TimestampLayout (UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Now returns the current time truncated to the stored precision, so that a
// value survives a storage round trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// DayTodos is the response body of a day source read.
type DayTodos struct {
	Date  string `json:"date"`
	Todos []Todo `json:"todos"`
}

// ListTodos is the response body of a list source read.
type ListTodos struct {
	TabID  string `json:"tabId"`
	ListID string `json:"listId"`
	Todos  []Todo `json:"todos"`
}

// CloneTodos returns an independent copy of todos. A nil slice stays nil.
func CloneTodos(todos []Todo) []Todo {
	if todos == nil {
		return nil
	}
	out := make([]Todo, len(todos))
	copy(out, todos)
	return out
}

// IndexOfTodo returns the position of id in todos or -1.
func IndexOfTodo(todos []Todo, id string) int {
	for i := range todos {
		if todos[i].ID == id {
			return i
		}
	}
	return -1
}

// TodoIDs returns the ids of todos in order.
func TodoIDs(todos []Todo) []string {
	ids := make([]string, len(todos))
	for i := range todos {
		ids[i] = todos[i].ID
	}
	return ids
}
