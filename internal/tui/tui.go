package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/cursed-forest/internal/game"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateLoading
	stateDefeated
)

type model struct {
	state     sessionState
	session   *game.Session
	textInput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	healthBar progress.Model
	errLine   string
	width     int
	height    int
	ready     bool
}

var (
	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	defeatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)
)

// NewModel builds the TUI around an existing game session.
func NewModel(session *game.Session) model {
	ti := textinput.New()
	ti.Placeholder = "What will you do next?"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = helpStyle

	return model{
		state:     statePlaying,
		session:   session,
		textInput: ti,
		spinner:   sp,
		healthBar: progress.New(progress.WithDefaultGradient()),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type turnDoneMsg struct {
	err error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state == stateLoading {
				// One turn in flight at a time; ignore input until it resolves.
				return m, nil
			}
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			m.textInput.Reset()
			return m.handleInput(input)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth := int(float64(msg.Width) * 0.72)
		if !m.ready {
			m.viewport = viewport.New(logWidth, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = logWidth
			m.viewport.Height = msg.Height - 6
		}
		m.healthBar.Width = int(float64(msg.Width)*0.22) - 4
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.state == stateLoading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case turnDoneMsg:
		m.state = statePlaying
		if msg.err != nil {
			m.errLine = msg.err.Error() + " Please try again."
		}
		if m.session.Phase() == game.PhaseDefeated {
			m.state = stateDefeated
		}
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()
		return m, nil
	}

	if m.state != stateLoading {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleInput routes a submitted line: slash commands act on the session
// directly, anything else is a story action and starts a turn.
func (m model) handleInput(input string) (tea.Model, tea.Cmd) {
	m.errLine = ""

	switch input {
	case "/quit":
		return m, tea.Quit

	case "/restart":
		m.session.Restart()
		m.state = statePlaying
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoTop()
		return m, nil
	}

	// Defeat is terminal: only /restart and /quit above remain usable.
	if m.state == stateDefeated {
		m.errLine = "You have perished. Type /restart to begin a new game."
		return m, nil
	}

	switch input {
	case "/pickup":
		if m.session.PendingItem() == "" {
			m.errLine = "There is nothing to pick up."
			return m, nil
		}
		m.session.ConfirmPickup()
		return m, nil

	case "/potion":
		if err := m.session.UsePotion(); err != nil {
			m.errLine = "You don't have any health potions!"
		}
		return m, nil
	}

	m.state = stateLoading
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
	return m, tea.Batch(m.spinner.Tick, m.submitAction(input))
}

func (m model) submitAction(action string) tea.Cmd {
	return func() tea.Msg {
		err := m.session.SubmitAction(context.Background(), action)
		return turnDoneMsg{err: err}
	}
}

func (m model) View() string {
	if !m.ready {
		return "\n  Entering the Cursed Forest...\n"
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderSidebar(),
	)

	var status string
	switch {
	case m.state == stateLoading:
		status = m.spinner.View() + helpStyle.Render(" The forest whispers...")
	case m.state == stateDefeated:
		status = defeatStyle.Render("You have perished in the Cursed Forest. Type /restart for a new game.")
	case m.errLine != "":
		status = errorStyle.Render(m.errLine)
	default:
		status = helpStyle.Render(m.hints())
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		status,
	) + "\n"
}

func (m model) hints() string {
	hints := []string{"/restart", "/quit"}
	if m.session.PendingItem() != "" {
		hints = append([]string{"/pickup (" + m.session.PendingItem() + ")"}, hints...)
	}
	if m.session.State().Has(game.ItemHealthPotion) {
		hints = append([]string{"/potion"}, hints...)
	}
	return "Commands: " + strings.Join(hints, ", ") + ", or just type what you want to do."
}

func (m model) renderSidebar() string {
	s := m.session.State()

	health := titleStyle.Render("HEALTH") + "\n" +
		m.healthBar.ViewAs(float64(s.Health)/float64(game.MaxHealth)) + "\n" +
		fmt.Sprintf("%d%%", s.Health) + "\n\n"

	inventory := titleStyle.Render("INVENTORY") + "\n"
	if len(s.Inventory) == 0 {
		inventory += "(empty)\n"
	} else {
		for _, item := range s.Inventory {
			line := "- " + item
			if item == game.ItemHealthPotion {
				line += " (use with /potion)"
			}
			inventory += line + "\n"
		}
	}
	inventory += "\n"

	choices := fmt.Sprintf("Choices made: %d\n", s.ChoicesMade)

	pending := ""
	if item := m.session.PendingItem(); item != "" {
		pending = "\n" + highlightStyle.Render(game.DiscoveryPhrase(item)) + "\n/pickup to take it\n"
	}

	width := int(float64(m.width) * 0.22)
	return sidebarStyle.Width(width).Height(m.viewport.Height).Render(health + inventory + choices + pending)
}

func (m model) renderLog() string {
	logWidth := m.viewport.Width
	var b strings.Builder
	for i, turn := range m.session.Log().Turns() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch turn.Role {
		case game.RolePlayer:
			b.WriteString(playerStyle.Width(logWidth).Render("> " + turn.Text))
		default:
			b.WriteString(narratorStyle.Width(logWidth).Render(highlightItems(turn.Text)))
		}
	}
	return b.String()
}

// highlightItems styles the **emphasized** spans the narrator uses to
// mark discoverable items, mirroring how the story text is generated.
func highlightItems(text string) string {
	parts := strings.Split(text, "**")
	if len(parts) < 3 {
		return text
	}
	var b strings.Builder
	for i, part := range parts {
		// Odd segments fell between a marker pair.
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString(highlightStyle.Render(part))
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}

// Run starts the TUI and blocks until the player quits.
func Run(session *game.Session) error {
	p := tea.NewProgram(NewModel(session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
