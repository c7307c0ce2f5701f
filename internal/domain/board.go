package domain

// ReservedTabID is the tab seeded with default lists on first read.
const ReservedTabID = "underlying"

// TabsKey holds the JSON array of all tabs.
const TabsKey = "tabs"

// Tab is a named grouping of lists.
type Tab struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// TodoList is a named list owned by exactly one Tab.
type TodoList struct {
	ID        string `json:"id"`
	TabID     string `json:"tabId"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// TabListsKey holds the JSON array of lists of a tab.
func TabListsKey(tabID string) string {
	return "tab:" + tabID + ":lists"
}

// DefaultTabs returns the tabs seeded into an empty store.
func DefaultTabs() []Tab {
	return []Tab{
		{ID: "underlying", Name: "UNDERLYING", SortOrder: 0},
		{ID: "thoughts", Name: "THOUGHTS", SortOrder: 1},
		{ID: "planning", Name: "PLANNING", SortOrder: 2},
	}
}

// DefaultLists returns the lists seeded into tabID when it has none.
// Only the reserved tab has defaults.
func DefaultLists(tabID string) []TodoList {
	if tabID != ReservedTabID {
		return nil
	}
	return []TodoList{
		{ID: "chores", TabID: ReservedTabID, Name: "CHORES & LIFE", SortOrder: 0},
		{ID: "benefits", TabID: ReservedTabID, Name: "BENEFITS & ONBOARDING", SortOrder: 1},
		{ID: "oneshot", TabID: ReservedTabID, Name: "UNDERLYING - ONE-SHOT", SortOrder: 2},
		{ID: "longpersonal", TabID: ReservedTabID, Name: "UNDERLYING - LONGTERM PERSONAL", SortOrder: 3},
		{ID: "longwork", TabID: ReservedTabID, Name: "UNDERLYING - LONGTERM WORK", SortOrder: 4},
	}
}

// NextTabOrder returns max(sortOrder)+1, or 0 for no tabs.
func NextTabOrder(tabs []Tab) int {
	next := 0
	for _, t := range tabs {
		if t.SortOrder+1 > next {
			next = t.SortOrder + 1
		}
	}
	return next
}

// NextListOrder returns max(sortOrder)+1, or 0 for no lists.
func NextListOrder(lists []TodoList) int {
	next := 0
	for _, l := range lists {
		if l.SortOrder+1 > next {
			next = l.SortOrder + 1
		}
	}
	return next
}
