// Package display provides the terminal UI using Bubble Tea.
//
// The [Model] renders the bill form: a header card with the per-person
// total, the bill field, and, once a bill is entered, the split buttons,
// the tip amount and the tip slider. Every key press is forwarded to a
// form.Controller; the view only reads derived values back.
package display

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/models"
)

const historySize = 3

// Committer stores a confirmed bill.
type Committer interface {
	Commit(ctx context.Context, state form.State) (*models.Receipt, error)
	Recent(ctx context.Context, limit int) ([]*models.Receipt, error)
}

// Options configures the screen.
type Options struct {
	Range       form.Range
	SliderSteps int
	Currency    string
	Observers   []form.Observer
}

// Model is the Bubble Tea model for the bill form.
type Model struct {
	ctrl      *form.Controller
	committer Committer
	input     textinput.Model
	slider    slider
	currency  string
	width     int
	status    string
	statusErr bool
	history   []*models.Receipt
}

// New builds the screen and its form controller.
func New(opts Options, committer Committer) (*Model, error) {
	currency := opts.Currency
	if currency == "" {
		currency = "$"
	}

	ti := textinput.New()
	ti.Prompt = currency + " "
	ti.Placeholder = "Enter Bill"
	ti.PromptStyle = labelStyle
	ti.TextStyle = valueStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa"))
	ti.CharLimit = 32
	ti.Width = 30
	ti.Focus()

	m := &Model{
		committer: committer,
		input:     ti,
		slider:    slider{steps: opts.SliderSteps},
		currency:  currency,
	}

	ctrl, err := form.New(opts.Range,
		form.WithOnCommit(m.commit),
		form.WithOnDismiss(m.dismiss),
	)
	if err != nil {
		return nil, err
	}
	for _, obs := range opts.Observers {
		ctrl.Subscribe(obs)
	}
	m.ctrl = ctrl
	return m, nil
}

// Controller exposes the form behind the screen.
func (m *Model) Controller() *form.Controller { return m.ctrl }

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one event.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.ctrl.ConfirmBill()
			return m, nil
		case "ctrl+r":
			m.reset()
			return m, nil
		case "+", "up":
			m.ctrl.IncrementSplit()
			return m, nil
		case "-", "down":
			m.ctrl.DecrementSplit()
			return m, nil
		case "]":
			m.moveSlider(1)
			return m, nil
		case "[":
			m.moveSlider(-1)
			return m, nil
		case "right":
			if !m.input.Focused() {
				m.moveSlider(1)
				return m, nil
			}
		case "left":
			if !m.input.Focused() {
				m.moveSlider(-1)
				return m, nil
			}
		}

		// Typing after a confirm brings the field back.
		if !m.input.Focused() && (msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace) {
			m.input.Focus()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetBillText(m.input.Value())
	return m, cmd
}

func (m *Model) moveSlider(delta int) {
	f := m.ctrl.Snapshot().TipFraction
	m.ctrl.SetTipFraction(m.slider.move(f, delta))
}

func (m *Model) reset() {
	m.ctrl.Reset()
	m.input.Reset()
	m.input.Focus()
	m.status = ""
	m.statusErr = false
}

// commit runs synchronously inside Update when the controller accepts a confirm.
func (m *Model) commit(billText string) {
	ctx := context.Background()
	receipt, err := m.committer.Commit(ctx, m.ctrl.Snapshot())
	if err != nil {
		m.statusErr = true
		if errors.Is(err, calculator.ErrInvalidBill) {
			m.status = fmt.Sprintf("%q is not a number", billText)
		} else {
			m.status = err.Error()
		}
		return
	}

	m.statusErr = false
	m.status = fmt.Sprintf("Saved: %s%s each", m.currency, calculator.FormatAmount(receipt.TotalPerPerson))

	history, err := m.committer.Recent(ctx, historySize)
	if err != nil {
		slog.Warn("Failed to load history", "error", err)
		return
	}
	m.history = history
}

func (m *Model) dismiss() {
	m.input.Blur()
}

// View renders the screen.
func (m *Model) View() string {
	state := m.ctrl.Snapshot()
	sum, sumErr := state.Summarize()

	width := m.width
	if width <= 0 || width > 60 {
		width = 60
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(sum.TotalPerPerson, width))
	b.WriteByte('\n')

	var body strings.Builder
	body.WriteString(labelStyle.Render("Enter Bill"))
	body.WriteByte('\n')
	body.WriteString(m.input.View())
	body.WriteByte('\n')

	if state.Valid() {
		if sumErr != nil {
			body.WriteString(errorStyle.Render("Bill must be a number"))
			body.WriteByte('\n')
		}
		body.WriteByte('\n')
		body.WriteString(m.renderSplitRow(state.SplitCount))
		body.WriteString("\n\n")
		body.WriteString(labelStyle.Render("Total Tip") + "  " +
			valueStyle.Render(m.currency+" "+calculator.FormatAmount(sum.TotalTip)))
		body.WriteString("\n\n")
		body.WriteString(valueStyle.Render(fmt.Sprintf("%d %%", sum.TipPercentage)))
		body.WriteByte('\n')
		body.WriteString(m.slider.render(state.TipFraction, width-6))
	}

	b.WriteString(formBorderStyle.Width(width - 2).Render(body.String()))
	b.WriteByte('\n')

	if m.status != "" {
		style := hintStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteByte('\n')
	}

	for _, r := range m.history {
		b.WriteString(historyStyle.Render(m.formatReceipt(r)))
		b.WriteByte('\n')
	}

	b.WriteString(hintStyle.Render("enter confirm · +/- split · [/] tip · ctrl+r reset · esc quit"))
	return b.String()
}

func (m *Model) renderHeader(totalPerPerson float64, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		headerLabelStyle.Render("Total Per Person"),
		headerAmountStyle.Render(m.currency+calculator.FormatAmount(totalPerPerson)),
	)
	return headerCardStyle.Width(width).Render(content)
}

func (m *Model) renderSplitRow(count int) string {
	rng := m.ctrl.Range()
	return labelStyle.Render("Split") + "    " +
		buttonStyle.Render("[-]") + " " +
		valueStyle.Render(fmt.Sprintf("%d", count)) + " " +
		buttonStyle.Render("[+]") + "  " +
		hintStyle.Render(fmt.Sprintf("%d-%d", rng.Min, rng.Max))
}

func (m *Model) formatReceipt(r *models.Receipt) string {
	return fmt.Sprintf("%s%s + %d%% = %s%s ÷ %d = %s%s each",
		m.currency, calculator.FormatAmount(r.Bill),
		r.TipPercentage,
		m.currency, calculator.FormatAmount(r.Total()),
		r.SplitBy,
		m.currency, calculator.FormatAmount(r.TotalPerPerson),
	)
}
