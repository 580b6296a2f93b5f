package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/pkg/deck"
	"github.com/slidekit/slidekit/pkg/slide"
	"github.com/slidekit/slidekit/pkg/table"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [deck]",
		Short: "Browse a deck's objects interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			model := newObjectListModel(d)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// objectListModel is the bubbletea model for the deck object browser.
type objectListModel struct {
	title   string
	objects slide.Selection
	cursor  int
	height  int
	offset  int
}

func newObjectListModel(d *deck.Deck) objectListModel {
	title := d.Title
	if title == "" {
		title = "Deck"
	}
	return objectListModel{
		title:   title,
		objects: d.Objects(),
		height:  15,
	}
}

func (m objectListModel) Init() tea.Cmd {
	return nil
}

func (m objectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.objects)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m objectListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.objects) {
		end = len(m.objects)
	}

	for i := m.offset; i < end; i++ {
		o := m.objects[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		kind := "shape"
		if _, ok := o.(*table.TableBox); ok {
			kind = "table"
		} else if slide.IsLocked(o) {
			kind = "locked"
		}

		line := fmt.Sprintf("%s%-20s %-7s (%.1f, %.1f) %.1fx%.1f",
			cursor, o.ID(), kind, o.Left(), o.Top(), o.Width(), o.Height())

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if kind == "locked" {
			b.WriteString(listDimStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.objects))))

	return b.String()
}
