// pattern: Imperative Shell

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"repodeck/internal/registry"
)

// openAddForm opens an empty source form.
func (m *Model) openAddForm() {
	m.formOpen = true
	m.formEditing = false
	m.formTarget = ""
	m.formLabel = ""
	m.formPath = ""
	m.formFocus = fieldLabel
	m.formError = ""
}

// openEditForm opens the form pre-filled from an existing source.
func (m *Model) openEditForm(s registry.Source) {
	m.formOpen = true
	m.formEditing = true
	m.formTarget = s.Label
	m.formLabel = s.Label
	m.formPath = s.Path
	m.formFocus = fieldLabel
	m.formError = ""
}

// resetForm closes the form and clears all of its state.
func (m *Model) resetForm() {
	m.formOpen = false
	m.formEditing = false
	m.formTarget = ""
	m.formLabel = ""
	m.formPath = ""
	m.formFocus = fieldLabel
	m.formError = ""
}

// submitForm validates the form against the registry and, on success,
// persists the change and triggers a rescan.
func (m *Model) submitForm() tea.Cmd {
	var err error
	if m.formEditing {
		err = m.registry.Rename(m.formTarget, m.formLabel, m.formPath)
	} else {
		err = m.registry.Add(m.formLabel, m.formPath)
	}
	if err != nil {
		m.formError = friendlyError(err)
		return nil
	}

	if m.formEditing {
		m.logger.Info("source updated", "label", m.formLabel, "path", m.formPath)
		m.setStatus("Source updated: " + m.formLabel)
	} else {
		m.logger.Info("source added", "label", m.formLabel, "path", m.formPath)
		m.setStatus("Source added: " + m.formLabel)
	}

	m.resetForm()
	m.persistSources()
	m.refreshDelegate()
	return m.scanCmd()
}

// handleFormKey processes key events while the source form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.resetForm()
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.formFocus = (m.formFocus + 1) % formFieldCount
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.formFocus = (m.formFocus + formFieldCount - 1) % formFieldCount
		return m, nil

	case tea.KeyEnter:
		return m, m.submitForm()

	case tea.KeyBackspace:
		field := m.focusedField()
		if len(*field) > 0 {
			runes := []rune(*field)
			*field = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeyRunes:
		*m.focusedField() += string(msg.Runes)
		return m, nil

	case tea.KeySpace:
		*m.focusedField() += " "
		return m, nil
	}

	return m, nil
}

// focusedField returns a pointer to the form field under the cursor.
func (m *Model) focusedField() *string {
	if m.formFocus == fieldPath {
		return &m.formPath
	}
	return &m.formLabel
}

// friendlyError maps registry validation errors to messages suitable for
// the form error line.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, registry.ErrEmptyInput):
		return "Label and path must not be empty"
	case errors.Is(err, registry.ErrDuplicateLabel):
		return "A source with that label already exists"
	case errors.Is(err, registry.ErrInvalidPath):
		return "Path does not exist or is not a directory"
	case errors.Is(err, registry.ErrNotFound):
		return "Source not found"
	default:
		return err.Error()
	}
}

// Form accessors used by the view and tests.

// IsFormOpen returns true while the source form is showing.
func (m Model) IsFormOpen() bool {
	return m.formOpen
}

// FormLabel returns the current label field contents.
func (m Model) FormLabel() string {
	return m.formLabel
}

// FormPath returns the current path field contents.
func (m Model) FormPath() string {
	return m.formPath
}

// FormError returns the current form validation message.
func (m Model) FormError() string {
	return m.formError
}
