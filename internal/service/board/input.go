package board

import (
	"github.com/kwokm/mk-todo/internal/domain"
)

func collect(errs []domain.FieldError, fe *domain.FieldError) []domain.FieldError {
	if fe != nil {
		return append(errs, *fe)
	}
	return errs
}

func result(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateTabInput holds the parameters for creating a tab.
type CreateTabInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateTabInput) Validate() error {
	return result(collect(nil, domain.ValidateName("name", i.Name)))
}

// RenameTabInput holds the parameters for renaming a tab.
type RenameTabInput struct {
	TabID string
	Name  string
}

// Validate checks all fields and collects all errors.
func (i RenameTabInput) Validate() error {
	var errs []domain.FieldError
	errs = collect(errs, domain.ValidateID("tabId", i.TabID))
	errs = collect(errs, domain.ValidateName("name", i.Name))
	return result(errs)
}

// DeleteTabInput holds the parameters for deleting a tab.
type DeleteTabInput struct {
	TabID string
}

// Validate checks all fields and collects all errors.
func (i DeleteTabInput) Validate() error {
	return result(collect(nil, domain.ValidateID("tabId", i.TabID)))
}

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	TabID string
	Name  string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError
	errs = collect(errs, domain.ValidateID("tabId", i.TabID))
	errs = collect(errs, domain.ValidateName("name", i.Name))
	return result(errs)
}

// RenameListInput holds the parameters for renaming a list.
type RenameListInput struct {
	TabID  string
	ListID string
	Name   string
}

// Validate checks all fields and collects all errors.
func (i RenameListInput) Validate() error {
	var errs []domain.FieldError
	errs = collect(errs, domain.ValidateID("tabId", i.TabID))
	errs = collect(errs, domain.ValidateID("listId", i.ListID))
	errs = collect(errs, domain.ValidateName("name", i.Name))
	return result(errs)
}

// DeleteListInput holds the parameters for deleting a list.
type DeleteListInput struct {
	TabID  string
	ListID string
}

// Validate checks all fields and collects all errors.
func (i DeleteListInput) Validate() error {
	var errs []domain.FieldError
	errs = collect(errs, domain.ValidateID("tabId", i.TabID))
	errs = collect(errs, domain.ValidateID("listId", i.ListID))
	return result(errs)
}

// ReorderListsInput holds the desired order of a tab's lists.
type ReorderListsInput struct {
	TabID   string
	ListIDs []string
}

// Validate checks all fields and collects all errors.
func (i ReorderListsInput) Validate() error {
	var errs []domain.FieldError
	errs = collect(errs, domain.ValidateID("tabId", i.TabID))
	if len(i.ListIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "listIds", Message: "must be a non-empty array"})
	}
	for _, id := range i.ListIDs {
		if !domain.IsValidID(id) {
			errs = append(errs, domain.FieldError{Field: "listIds", Message: "invalid id"})
			break
		}
	}
	return result(errs)
}
