package dashboard

import (
	"errors"
	"strings"
	"sync"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

var (
	// ErrNoDraft is returned when a draft operation runs with no record
	// in edit.
	ErrNoDraft = errors.New("no record is being edited")
	// ErrUnknownField is returned for a draft field the record does not
	// expose for editing.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned for a draft value outside the field's
	// allowed set.
	ErrInvalidValue = errors.New("invalid value")
)

// Record is any domain record with a stable identity key.
type Record interface {
	RecordID() string
}

// ListView is the local edit session behind a list widget. It owns a copy
// of the snapshot slice; saves mutate only this copy and never propagate
// back to the reconciler's snapshot or to other widgets. At most one row is
// expanded and at most one draft exists at a time.
type ListView[T Record] struct {
	mu         sync.Mutex
	items      []T
	expandedID string
	draft      *T
	match      func(rec T, term string) bool
	set        func(rec *T, field, value string) error
}

// NewListView creates a view over a copy of items. match implements the
// widget's search filter; set applies one named draft-field edit.
func NewListView[T Record](items []T, match func(T, string) bool, set func(*T, string, string) error) *ListView[T] {
	v := &ListView[T]{match: match, set: set}
	v.Reset(items)
	return v
}

// Reset replaces the view's local copy with a fresh snapshot slice and
// discards any expansion or draft. Called when the canonical snapshot is
// replaced.
func (v *ListView[T]) Reset(items []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = make([]T, len(items))
	copy(v.items, items)
	v.expandedID = ""
	v.draft = nil
}

// Items returns the view's local list copy.
func (v *ListView[T]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Filtered returns the rows matching the case-insensitive search term,
// without mutating the underlying list. An empty term matches everything.
func (v *ListView[T]) Filtered(term string) []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	term = strings.ToLower(term)
	out := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if term == "" || v.match(item, term) {
			out = append(out, item)
		}
	}
	return out
}

// ExpandedID returns the id of the currently expanded row, or "".
func (v *ListView[T]) ExpandedID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.expandedID
}

// ToggleExpand expands the row, or collapses it if already expanded.
// Clicking the row under edit is ignored; expanding a different row closes
// any open editor.
func (v *ListView[T]) ToggleExpand(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.draft != nil && (*v.draft).RecordID() == id {
		return
	}
	if v.expandedID == id {
		v.expandedID = ""
	} else {
		v.expandedID = id
	}
	v.draft = nil
}

// BeginEdit clones the record into the draft buffer and forces its row to
// be the expanded one. It reports whether the record exists.
func (v *ListView[T]) BeginEdit(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, item := range v.items {
		if item.RecordID() == id {
			clone := item
			v.draft = &clone
			v.expandedID = id
			return true
		}
	}
	return false
}

// UpdateDraft applies one field edit to the draft only; the displayed list
// is untouched until Save.
func (v *ListView[T]) UpdateDraft(field, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.draft == nil {
		return ErrNoDraft
	}
	return v.set(v.draft, field, value)
}

// Draft returns a copy of the current draft, if any.
func (v *ListView[T]) Draft() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.draft == nil {
		var zero T
		return zero, false
	}
	return *v.draft, true
}

// Save replaces the matching record in the local list with the draft,
// clears the draft, and exits edit mode. It reports whether a save
// happened.
func (v *ListView[T]) Save() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.draft == nil {
		return false
	}
	for i, item := range v.items {
		if item.RecordID() == (*v.draft).RecordID() {
			v.items[i] = *v.draft
			break
		}
	}
	v.draft = nil
	return true
}

// Cancel discards the draft without mutating the list.
func (v *ListView[T]) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft = nil
}

// NewVehicleView creates the vehicle-list edit session: search matches
// name, driver, or license plate; editable fields are name, driver, and
// status.
func NewVehicleView(items []models.Vehicle) *ListView[models.Vehicle] {
	match := func(v models.Vehicle, term string) bool {
		if strings.Contains(strings.ToLower(v.Name), term) ||
			strings.Contains(strings.ToLower(v.LicensePlate), term) {
			return true
		}
		return v.Driver != nil && strings.Contains(strings.ToLower(*v.Driver), term)
	}
	set := func(v *models.Vehicle, field, value string) error {
		switch field {
		case "name":
			v.Name = value
		case "driver":
			if value == "" {
				v.Driver = nil
			} else {
				v.Driver = &value
			}
		case "status":
			status := models.VehicleStatus(value)
			if !status.IsValid() {
				return ErrInvalidValue
			}
			v.Status = status
		default:
			return ErrUnknownField
		}
		return nil
	}
	return NewListView(items, match, set)
}

// NewDriverView creates the driver-list edit session: search matches name
// or phone; editable fields are name, phone, and status.
func NewDriverView(items []models.Driver) *ListView[models.Driver] {
	match := func(d models.Driver, term string) bool {
		return strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Phone), term)
	}
	set := func(d *models.Driver, field, value string) error {
		switch field {
		case "name":
			d.Name = value
		case "phone":
			d.Phone = value
		case "status":
			status := models.DriverStatus(value)
			if !status.IsValid() {
				return ErrInvalidValue
			}
			d.Status = status
		default:
			return ErrUnknownField
		}
		return nil
	}
	return NewListView(items, match, set)
}
