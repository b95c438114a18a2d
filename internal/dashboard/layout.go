// Package dashboard holds the per-session view state: the widget layout,
// the list-widget edit sessions, the maintenance board, and the session
// registry. Everything here is a local shadow of the reconciler's snapshot
// and is discarded whenever the company selection changes.
package dashboard

import (
	"sync"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// Layout maintains the ordered list of active widgets for one dashboard.
// While edit mode is off the layout is frozen for display only.
type Layout struct {
	mu       sync.Mutex
	widgets  []models.WidgetType
	editMode bool
}

// NewLayout creates a layout with the default widget order.
func NewLayout() *Layout {
	return &Layout{widgets: models.DefaultWidgets()}
}

// Widgets returns the current widget order.
func (l *Layout) Widgets() []models.WidgetType {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.WidgetType, len(l.widgets))
	copy(out, l.widgets)
	return out
}

// EditMode reports whether the layout is currently editable.
func (l *Layout) EditMode() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.editMode
}

// ToggleEditMode flips edit mode and returns the new value.
func (l *Layout) ToggleEditMode() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.editMode = !l.editMode
	return l.editMode
}

// Reorder moves the widget at from to position to, drag-and-drop style: a
// single remove-then-insert, not a swap. It is a no-op unless edit mode is
// on and both indices are distinct and in range. It reports whether the
// order changed.
func (l *Layout) Reorder(from, to int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.editMode {
		return false
	}
	if from == to || from < 0 || to < 0 || from >= len(l.widgets) || to >= len(l.widgets) {
		return false
	}
	moved := l.widgets[from]
	rest := append(l.widgets[:from], l.widgets[from+1:]...)
	l.widgets = append(rest[:to], append([]models.WidgetType{moved}, rest[to:]...)...)
	return true
}

// Remove drops the widget from the layout. Removing an absent widget is a
// no-op; it reports whether anything was removed.
func (l *Layout) Remove(w models.WidgetType) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, existing := range l.widgets {
		if existing == w {
			l.widgets = append(l.widgets[:i], l.widgets[i+1:]...)
			return true
		}
	}
	return false
}
