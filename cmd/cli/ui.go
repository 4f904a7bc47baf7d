package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"mtgsim/internal/action"
	"mtgsim/internal/catalog"
	"mtgsim/internal/state"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#06B6D4")
	accentColor    = lipgloss.Color("#10B981")
	warningColor   = lipgloss.Color("#F59E0B")
	errorColor     = lipgloss.Color("#EF4444")
	textColor      = lipgloss.Color("#F8FAFC")
	mutedColor     = lipgloss.Color("#94A3B8")

	baseStyle = lipgloss.NewStyle().Foreground(textColor)

	basePanelStyle = baseStyle.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Margin(1, 0)

	headerStyle = baseStyle.Foreground(primaryColor).Bold(true).Align(lipgloss.Center)

	lifeStyle   = baseStyle.Bold(true).Foreground(accentColor)
	mutedLine   = baseStyle.Foreground(mutedColor)
	activeStyle = baseStyle.Foreground(accentColor).Bold(true)
	errorStyle  = baseStyle.Foreground(errorColor).Bold(true)
)

// UI renders one session's board state as a set of lipgloss panels, grounded
// on the teacher's cmd/cli/ui.go panel-rendering style.
type UI struct {
	reg        catalog.Registry
	termWidth  int
	termHeight int

	lastCommand string
	lastResult  string
}

// NewUI creates a UI bound to a catalog registry for card-name lookups.
func NewUI(reg catalog.Registry) *UI {
	ui := &UI{reg: reg}
	ui.updateTerminalSize()
	return ui
}

func (ui *UI) updateTerminalSize() {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 100, 30
	}
	if width < 60 {
		width = 60
	}
	ui.termWidth = width
	ui.termHeight = height
}

func (ui *UI) panelStyle() lipgloss.Style {
	style := basePanelStyle
	if ui.termWidth >= 80 {
		style = style.Width((ui.termWidth - 8) / 2)
	}
	return style
}

func (ui *UI) SetLastCommand(command, result string) {
	ui.lastCommand = command
	ui.lastResult = result
}

func (ui *UI) cardName(scryfallID string) string {
	tmpl, ok := ui.reg.Get(scryfallID)
	if !ok {
		return scryfallID
	}
	return tmpl.Name
}

func (ui *UI) renderPlayer(g *state.GameState, pid state.PlayerID, title string) string {
	p := g.Players[pid]
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(title))
	fmt.Fprintf(&b, "Life: %s   Lands played: %d   Hand: %d   Library: %d\n",
		lifeStyle.Render(strconv.Itoa(p.Life)), p.LandsPlayedThisTurn, len(p.Hand), len(p.Library))

	if len(p.Battlefield) == 0 {
		b.WriteString(mutedLine.Render("Battlefield: (empty)"))
	} else {
		b.WriteString("Battlefield:\n")
		for _, c := range p.Battlefield {
			power, toughness := c.PowerToughnessDelta()
			tmpl, _ := ui.reg.Get(c.ScryfallID)
			line := ui.cardName(c.ScryfallID)
			if tmpl != nil && tmpl.IsCreature() {
				basePower, baseTough := 0, 0
				if tmpl.Power != nil {
					basePower, _ = strconv.Atoi(*tmpl.Power)
				}
				if tmpl.Toughness != nil {
					baseTough, _ = strconv.Atoi(*tmpl.Toughness)
				}
				line = fmt.Sprintf("%s (%d/%d)", line, basePower+power, baseTough+toughness)
			}
			if c.Tapped {
				line += " [tapped]"
			}
			b.WriteString("  - " + line + "\n")
		}
	}

	if pid == state.Player {
		b.WriteString("\nHand:\n")
		for i, c := range p.Hand {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, ui.cardName(c.ScryfallID))
		}
	}

	return b.String()
}

func (ui *UI) renderStack(g *state.GameState) string {
	if len(g.Stack) == 0 {
		return mutedLine.Render("Stack: (empty)")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Stack") + "\n")
	for i := len(g.Stack) - 1; i >= 0; i-- {
		so := g.Stack[i]
		if so.IsSpell() {
			fmt.Fprintf(&b, "  %s\n", ui.cardName(so.Card.ScryfallID))
		} else {
			fmt.Fprintf(&b, "  ability: %s\n", so.AbilityID)
		}
	}
	return b.String()
}

func (ui *UI) renderLegalActions(legal []action.Action) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Legal actions") + "\n")
	for i, a := range legal {
		fmt.Fprintf(&b, "  %d. %s\n", i, a.Description)
	}
	return b.String()
}

// Render builds the full frame: opponent panel, player panel, stack, legal
// actions, and the last command's result.
func (ui *UI) Render(g *state.GameState, legal []action.Action, turn int, phase state.Phase) string {
	ui.updateTerminalSize()

	top := ui.panelStyle().Render(ui.renderPlayer(g, state.Opponent, "Opponent"))
	bottom := ui.panelStyle().Render(ui.renderPlayer(g, state.Player, "You"))
	stack := basePanelStyle.Render(ui.renderStack(g))
	actions := basePanelStyle.Render(ui.renderLegalActions(legal))

	header := headerStyle.Render(fmt.Sprintf("Turn %d — %s", turn, phase))

	var out strings.Builder
	out.WriteString(header + "\n")
	out.WriteString(top + "\n")
	out.WriteString(bottom + "\n")
	out.WriteString(stack + "\n")
	out.WriteString(actions + "\n")

	if ui.lastCommand != "" {
		out.WriteString(mutedLine.Render("> "+ui.lastCommand) + "\n")
	}
	if ui.lastResult != "" {
		out.WriteString(ui.lastResult + "\n")
	}

	return out.String()
}

func renderError(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

func renderInfo(msg string) string {
	return activeStyle.Render(msg)
}
