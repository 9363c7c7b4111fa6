// Package tui is the terminal form shell: text inputs for name, surname and
// age next to a table of the registry, laid out inline or as a modal dialog.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"persona-registry/internal/domain/persona"
	usecase "persona-registry/internal/usecase/persona"
	pkgerrors "persona-registry/pkg/errors"
)

// FormMode selects how the form is presented.
type FormMode int

const (
	// FormInline shows the form and the table in the same view.
	FormInline FormMode = iota
	// FormModal shows the table and opens the form as a dialog.
	FormModal
)

// EditMode selects how an edit is committed.
type EditMode int

const (
	// EditAtomic keeps the record until the edited values are submitted.
	EditAtomic EditMode = iota
	// EditReinsert removes the record when it is selected for editing; the
	// values come back only when the form is submitted.
	EditReinsert
)

// Status line messages.
const (
	MsgAdded          = "person added successfully"
	MsgUpdated        = "person updated successfully"
	MsgDeleted        = "the selected person has been deleted"
	MsgSelectFirst    = "select a person first"
	MsgEditCancelled  = "edit cancelled"
	MsgCheckedOutHint = "editing: submit to add the person back"
)

// Options configures the shell.
type Options struct {
	Form FormMode
	Edit EditMode
}

const (
	fieldName = iota
	fieldSurname
	fieldAge
	focusTable
)

const ageColumnWidth = 5

// Model is the bubbletea model of the form shell. It owns no records; every
// change goes through the usecase.
type Model struct {
	ctx  context.Context // carries request-scoped log fields into the usecase
	uc   usecase.Usecase
	log  *zap.Logger
	opts Options

	inputs []textinput.Model
	table  table.Model
	items  []persona.Persona // rows currently shown, same order as the table
	focus  int

	modalOpen  bool
	editing    *persona.Persona // target of an atomic edit
	formErrors []string
	status     string
	statusErr  bool

	width  int
	styles Styles
}

// New creates the form shell model.
func New(ctx context.Context, uc usecase.Usecase, opts Options, log *zap.Logger) Model {
	labels := []string{"Name", "Surname", "Age"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.ToLower(label)
		ti.CharLimit = 64
		ti.Width = 30
		inputs[i] = ti
	}
	inputs[fieldAge].CharLimit = 11

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 20},
			{Title: "Surname", Width: 24},
			{Title: "  Age", Width: ageColumnWidth},
		}),
		table.WithHeight(10),
	)

	m := Model{
		ctx:    ctx,
		uc:     uc,
		log:    log,
		opts:   opts,
		inputs: inputs,
		table:  t,
		styles: DefaultStyles(),
	}

	if opts.Form == FormInline {
		m.setFocus(fieldName)
	} else {
		m.setFocus(focusTable)
	}
	m.refresh()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if h := msg.Height - 16; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.opts.Form == FormModal {
			return m.updateModal(msg)
		}
		return m.updateInline(msg)
	}

	return m.forward(msg)
}

func (m Model) updateInline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusTable {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			cmd := m.setFocus(fieldName)
			return m, cmd
		case "shift+tab":
			cmd := m.setFocus(fieldAge)
			return m, cmd
		case "e", "enter":
			cmd := m.editSelected()
			return m, cmd
		case "d", "delete":
			m.deleteSelected()
			return m, nil
		}
		return m.forward(msg)
	}

	switch msg.String() {
	case "tab", "down":
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.setFocus((m.focus + focusTable) % (focusTable + 1))
		return m, cmd
	case "enter":
		cmd := m.submit()
		return m, cmd
	case "esc":
		m.cancelEdit()
		return m, nil
	}
	return m.forward(msg)
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.modalOpen {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "a":
			cmd := m.openDialog()
			return m, cmd
		case "e", "enter":
			cmd := m.editSelected()
			return m, cmd
		case "d", "delete":
			m.deleteSelected()
			return m, nil
		}
		return m.forward(msg)
	}

	switch msg.String() {
	case "tab", "down":
		cmd := m.setFocus((m.focus + 1) % focusTable)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.setFocus((m.focus + focusTable - 1) % focusTable)
		return m, cmd
	case "enter":
		cmd := m.submit()
		return m, cmd
	case "esc":
		m.cancelEdit()
		return m, nil
	}
	return m.forward(msg)
}

// forward hands msg to whichever widget has focus.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusTable {
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(target int) tea.Cmd {
	m.focus = target % (focusTable + 1)

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.focus == focusTable {
		m.table.Focus()
		return nil
	}
	m.table.Blur()
	return m.inputs[m.focus].Focus()
}

func (m *Model) openDialog() tea.Cmd {
	m.modalOpen = true
	m.formErrors = nil
	return m.setFocus(fieldName)
}

func (m *Model) closeDialog() {
	m.modalOpen = false
	m.setFocus(focusTable)
}

func (m *Model) input() usecase.PersonaInput {
	return usecase.PersonaInput{
		Name:    m.inputs[fieldName].Value(),
		Surname: m.inputs[fieldSurname].Value(),
		Age:     m.inputs[fieldAge].Value(),
	}
}

func (m *Model) fill(in usecase.PersonaInput) {
	m.inputs[fieldName].SetValue(in.Name)
	m.inputs[fieldSurname].SetValue(in.Surname)
	m.inputs[fieldAge].SetValue(in.Age)
}

func (m *Model) clearForm() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.formErrors = nil
	m.editing = nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// submit validates the form and adds or updates the record.
func (m *Model) submit() tea.Cmd {
	var (
		p    *persona.Persona
		err  error
		done = MsgAdded
	)
	if m.editing != nil {
		p, err = m.uc.Update(m.ctx, *m.editing, m.input())
		done = MsgUpdated
	} else {
		p, err = m.uc.Create(m.ctx, m.input())
	}

	switch {
	case err == nil:
		m.log.Debug("form submitted", zap.Stringer("persona", p))
		m.clearForm()
		m.setStatus(done, false)
		m.refresh()
		if m.opts.Form == FormModal {
			m.closeDialog()
			return nil
		}
		return m.setFocus(fieldName)
	case pkgerrors.IsValidation(err):
		// The form stays open so the user can fix the fields.
		m.formErrors = pkgerrors.Messages(err)
		m.setStatus("", true)
		return nil
	default:
		m.formErrors = nil
		m.setStatus(err.Error(), true)
		if m.opts.Form == FormModal {
			m.closeDialog()
		}
		return nil
	}
}

func (m *Model) selected() (persona.Persona, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return persona.Persona{}, false
	}
	return m.items[i], true
}

func (m *Model) editSelected() tea.Cmd {
	p, ok := m.selected()
	if !ok {
		m.setStatus(MsgSelectFirst, true)
		return nil
	}

	m.formErrors = nil
	if m.opts.Edit == EditReinsert {
		in, _ := m.uc.Checkout(m.ctx, p)
		m.editing = nil
		m.fill(in)
		m.refresh()
		m.setStatus(MsgCheckedOutHint, false)
	} else {
		target := p
		m.editing = &target
		m.fill(usecase.InputFrom(p))
		m.setStatus("", false)
	}

	if m.opts.Form == FormModal {
		m.modalOpen = true
	}
	return m.setFocus(fieldName)
}

func (m *Model) deleteSelected() {
	p, ok := m.selected()
	if !ok {
		m.setStatus(MsgSelectFirst, true)
		return
	}

	m.uc.Remove(m.ctx, p)
	if m.editing != nil && m.editing.Equal(p) {
		m.clearForm()
	}
	m.refresh()
	m.setStatus(MsgDeleted, false)
}

// cancelEdit drops whatever is in the form. An atomic edit leaves the record
// untouched; a reinsert edit has already removed it.
func (m *Model) cancelEdit() {
	if m.editing != nil {
		m.setStatus(MsgEditCancelled, false)
	}
	m.clearForm()
	if m.opts.Form == FormModal {
		m.closeDialog()
	}
}

// refresh reloads the table from the registry.
func (m *Model) refresh() {
	m.items = m.uc.List(m.ctx)

	rows := make([]table.Row, len(m.items))
	for i, p := range m.items {
		rows[i] = table.Row{p.Name, p.Surname, fmt.Sprintf("%*d", ageColumnWidth, p.Age)}
	}
	m.table.SetRows(rows)

	switch {
	case len(rows) == 0, m.table.Cursor() < 0:
		m.table.SetCursor(0)
	case m.table.Cursor() >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Personas"))
	b.WriteString("\n")

	if m.opts.Form == FormInline {
		b.WriteString(m.styles.Form.Render(m.formView()))
		b.WriteString("\n")
		b.WriteString(m.table.View())
	} else {
		b.WriteString(m.table.View())
		if m.modalOpen {
			title := "Add person"
			if m.editing != nil {
				title = "Edit person"
			}
			dialog := m.styles.Dialog.Render(m.styles.DialogTitle.Render(title) + "\n" + m.formView())
			b.WriteString("\n")
			if m.width > 0 {
				dialog = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dialog)
			}
			b.WriteString(dialog)
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		style := m.styles.Info
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.helpText()))

	return b.String()
}

func (m Model) formView() string {
	labels := []string{"Name", "Surname", "Age"}
	lines := make([]string, 0, len(labels)+len(m.formErrors))
	for i, label := range labels {
		style := m.styles.Label
		if m.focus == i {
			style = m.styles.FocusLabel
		}
		lines = append(lines, style.Render(label)+m.inputs[i].View())
	}
	for _, e := range m.formErrors {
		lines = append(lines, m.styles.Error.Render(e))
	}
	return strings.Join(lines, "\n")
}

func (m Model) helpText() string {
	switch {
	case m.opts.Form == FormInline && m.focus == focusTable:
		return "e edit • d delete • tab form • q quit"
	case m.opts.Form == FormInline:
		return "enter save • tab next • esc clear • ctrl+c quit"
	case m.modalOpen:
		return "enter save • tab next • esc cancel"
	default:
		return "a add • e edit • d delete • q quit"
	}
}
