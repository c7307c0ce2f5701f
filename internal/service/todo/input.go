package todo

import (
	"github.com/kwokm/mk-todo/internal/domain"
)

// CreateInput holds the parameters for creating a todo.
type CreateInput struct {
	Source domain.Source
	Text   string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Source.Valid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid source"})
	}
	if fe := domain.ValidateText("text", i.Text); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating a todo.
type UpdateInput struct {
	ID        string
	Text      *string
	Completed *bool
}

// Params returns the partial update.
func (i UpdateInput) Params() domain.TodoUpdateParams {
	return domain.TodoUpdateParams{Text: i.Text, Completed: i.Completed}
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if fe := domain.ValidateID("id", i.ID); fe != nil {
		errs = append(errs, *fe)
	}
	if i.Params().Empty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Text != nil {
		if fe := domain.ValidateText("text", *i.Text); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteInput holds the parameters for deleting a todo. Source must name the
// collection the todo currently belongs to.
type DeleteInput struct {
	ID     string
	Source domain.Source
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	var errs []domain.FieldError

	if fe := domain.ValidateID("id", i.ID); fe != nil {
		errs = append(errs, *fe)
	}
	if !i.Source.Valid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid source"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// MoveInput holds the parameters for moving a todo between sources.
// A nil Position appends to To; otherwise the todo lands at that index
// (clamped to the destination length).
type MoveInput struct {
	ID       string
	From     domain.Source
	To       domain.Source
	Position *int
}

// Validate checks all fields and collects all errors.
func (i MoveInput) Validate() error {
	var errs []domain.FieldError

	if fe := domain.ValidateID("todoId", i.ID); fe != nil {
		errs = append(errs, *fe)
	}
	if !i.From.Valid() {
		errs = append(errs, domain.FieldError{Field: "fromSource", Message: "invalid source"})
	}
	if !i.To.Valid() {
		errs = append(errs, domain.FieldError{Field: "toSource", Message: "invalid source"})
	}
	if i.Position != nil && *i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReorderInput holds the desired order of a source.
type ReorderInput struct {
	Source domain.Source
	IDs    []string
}

// Validate checks all fields and collects all errors.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError

	if !i.Source.Valid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid source"})
	}
	if len(i.IDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "todoIds", Message: "required"})
	}

	seen := make(map[string]struct{}, len(i.IDs))
	for _, id := range i.IDs {
		if !domain.IsValidID(id) {
			errs = append(errs, domain.FieldError{Field: "todoIds", Message: "invalid id"})
			break
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "todoIds", Message: "duplicate id " + id})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
