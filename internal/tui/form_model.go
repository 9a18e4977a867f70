package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ErikTaylerd/soletear-calculator/internal/engine"
	"github.com/ErikTaylerd/soletear-calculator/internal/format"
)

// Field indexes into CalculatorModel.fields.
const (
	fieldHousehold = iota
	fieldPrice
	fieldCost
	fieldGrant
	fieldKwh
	fieldCount
)

// Default dimensions for the calculator model.
const (
	calculatorDefaultWidth  = 80
	calculatorDefaultHeight = 24
	fieldInputWidth         = 12
)

// formField is one editable input with its sanitization rule. The textinput
// holds the raw draft text; committing happens when the field loses focus.
type formField struct {
	label string
	unit  string
	rule  engine.FieldRule
	input textinput.Model
}

// CalculatorModel is the Bubble Tea model for the interactive calculator.
// Derived results are a pure function of current input state and are
// recomputed on every keystroke; there is no other state to keep in sync.
type CalculatorModel struct {
	ctx    context.Context
	fields []formField

	// Fixed assumptions, never raw user text.
	maintenance  float64
	savingsRatio float64
	horizonYears int

	formatter *format.Formatter
	results   engine.Results

	focused   int
	showTable bool
	quitting  bool
	width     int
	height    int
}

// CalculatorOptions seeds the model with assumptions and presentation
// settings from configuration.
type CalculatorOptions struct {
	Maintenance  float64
	SavingsRatio float64
	HorizonYears int
	Formatter    *format.Formatter
}

// NewCalculatorModel creates the interactive calculator with empty inputs,
// mirroring the widget's initial state: a degenerate all-zero result until
// the required fields are filled in.
func NewCalculatorModel(ctx context.Context, opts CalculatorOptions) *CalculatorModel {
	m := &CalculatorModel{
		ctx:          ctx,
		maintenance:  opts.Maintenance,
		savingsRatio: opts.SavingsRatio,
		horizonYears: opts.HorizonYears,
		formatter:    opts.Formatter,
		width:        calculatorDefaultWidth,
		height:       calculatorDefaultHeight,
	}

	specs := [fieldCount]struct {
		label string
		unit  string
		rule  engine.FieldRule
	}{
		fieldHousehold: {"Household size", "people", engine.HouseholdSizeRule},
		fieldPrice:     {"Electricity price", "kr/kWh", engine.ElectricityPriceRule},
		fieldCost:      {"System cost", "kr", engine.SystemCostRule},
		fieldGrant:     {"Grant", "kr", engine.GrantRule},
		fieldKwh:       {"Hot water use", "kWh/person/yr", engine.KwhPerPersonRule},
	}

	m.fields = make([]formField, fieldCount)
	for i, spec := range specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = fieldInputWidth
		ti.CharLimit = 12
		m.fields[i] = formField{label: spec.label, unit: spec.unit, rule: spec.rule, input: ti}
	}
	m.fields[fieldHousehold].input.Focus()

	m.recompute()
	return m
}

// Init implements tea.Model.
func (m *CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only the navigation keys matter; runes fall through to the inputs.
func (m *CalculatorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyTab, tea.KeyEnter, tea.KeyDown:
		m.moveFocus(1)
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return m, nil

	case tea.KeyCtrlT:
		m.showTable = !m.showTable
		return m, nil
	}

	// Route everything else to the focused input, then recompute from the
	// new draft. Each event is handled synchronously, so every computation
	// reads a consistent snapshot of the inputs.
	var cmd tea.Cmd
	m.fields[m.focused].input, cmd = m.fields[m.focused].input.Update(msg)
	m.recompute()
	return m, cmd
}

// moveFocus blurs the current field, committing its value, and focuses the
// next one. Committing on blur is what guarantees no field persists as
// invalid: an empty field falls back to its rule minimum.
func (m *CalculatorModel) moveFocus(delta int) {
	m.commitField(m.focused)
	m.fields[m.focused].input.Blur()

	m.focused = (m.focused + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focused].input.Focus()
	m.recompute()
}

// commitField writes the sanitized, clamped value back into the field text.
func (m *CalculatorModel) commitField(i int) {
	committed := m.fields[i].rule.Commit(m.fields[i].input.Value())
	m.fields[i].input.SetValue(formatFieldValue(committed, m.fields[i].rule))
}

// formatFieldValue renders a committed value the way the field expects it:
// whole numbers for integer fields, trimmed decimals otherwise.
func formatFieldValue(v float64, rule engine.FieldRule) string {
	if rule.Integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// recompute rebuilds the derived results from the current drafts.
func (m *CalculatorModel) recompute() {
	m.results = engine.ComputeContext(m.ctx, m.inputs())
}

// inputs assembles the engine input record from the field drafts. Required
// fields stay absent while their text is empty or unparseable; cost and
// grant fall back to their minimums so they are always well-formed.
func (m *CalculatorModel) inputs() engine.Inputs {
	in := engine.Inputs{
		SystemCost:   m.fields[fieldCost].rule.Commit(m.fields[fieldCost].input.Value()),
		Grant:        m.fields[fieldGrant].rule.Commit(m.fields[fieldGrant].input.Value()),
		Maintenance:  m.maintenance,
		SavingsRatio: m.savingsRatio,
		HorizonYears: m.horizonYears,
	}

	if v, ok := m.fields[fieldHousehold].rule.Sanitize(m.fields[fieldHousehold].input.Value()); ok {
		in.HouseholdSize = engine.Float(v)
	}
	if v, ok := m.fields[fieldPrice].rule.Sanitize(m.fields[fieldPrice].input.Value()); ok {
		in.ElectricityPrice = engine.Float(v)
	}
	if v, ok := m.fields[fieldKwh].rule.Sanitize(m.fields[fieldKwh].input.Value()); ok {
		in.KwhPerPerson = engine.Float(v)
	}

	return in
}

// Results returns the current derived results.
func (m *CalculatorModel) Results() engine.Results {
	return m.results
}

// View implements tea.Model.
func (m *CalculatorModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("SOLETEAR SAVINGS CALCULATOR"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderForm())
	sb.WriteString("\n")
	sb.WriteString(RenderSummary(m.results, m.formatter, summaryWidth))
	sb.WriteString("\n")

	if m.showTable {
		t := NewCashFlowTable(m.results.CashFlow, m.formatter, chartDefaultHeight)
		sb.WriteString(t.View())
		sb.WriteString("\n")
	} else {
		sb.WriteString(RenderCashFlowChart(m.results.CashFlow, m.formatter, chartDefaultHeight))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render("tab/enter next field · ctrl+t chart/table · esc quit"))
	sb.WriteString("\n")
	return sb.String()
}

// renderForm renders the five input fields with the focused one highlighted.
func (m *CalculatorModel) renderForm() string {
	var sb strings.Builder
	for i, f := range m.fields {
		label := LabelStyle.Render(f.label)
		if i == m.focused {
			label = FocusedFieldStyle.Render(f.label)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(20).Render(label),
			f.input.View(),
			" ",
			SubtleStyle.Render(f.unit),
		)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
