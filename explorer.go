// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/bstbench/printer"
	"github.com/cybrota/bstbench/tree"
)

// Styles holds all the styling for the explorer
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	Stats          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Stats: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Padding(0, 1),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct {
	err error
}

// explorerModel is the Bubble Tea state of the explore command.
type explorerModel struct {
	session *Session
	ready   bool

	input    textinput.Model
	treeView viewport.Model

	showingHelp bool
	message     string
	failed      bool

	display         DisplayConfig
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func newExplorerModel(session *Session, cfg *Config) explorerModel {
	ti := textinput.New()
	ti.Placeholder = "insert 50 30 70, remove 30, random 20, help..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := explorerModel{
		session:         session,
		input:           ti,
		treeView:        viewport.New(0, 0),
		display:         cfg.Display,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		message:         "type help for a list of commands",
	}
	m.refreshTree()
	return m
}

func (m explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.execute(m.input.Value())
			m.input.Reset()
			return m, nil
		case "ctrl+y":
			t := m.session.Tree()
			text := printer.Sprint(t.Root(), printer.WithHeights(t.Kind() == tree.AVL))
			return m, func() tea.Msg {
				return clipboardMsg{err: clipboard.WriteAll(text)}
			}
		case "pgup":
			m.treeView.LineUp(m.treeView.Height)
			return m, nil
		case "pgdown":
			m.treeView.LineDown(m.treeView.Height)
			return m, nil
		case "up":
			m.treeView.LineUp(1)
			return m, nil
		case "down":
			m.treeView.LineDown(1)
			return m, nil
		}

	case clipboardMsg:
		if msg.err != nil {
			m.setMessage(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setMessage("📋 tree copied to clipboard", false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *explorerModel) execute(line string) {
	r, err := m.session.Execute(line)
	if err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	if r.Help {
		m.showHelp(r.Message)
		return
	}
	if r.Message != "" {
		m.setMessage(r.Message, false)
	}
	m.refreshTree()
}

func (m *explorerModel) setMessage(msg string, failed bool) {
	m.message = msg
	m.failed = failed
}

func (m *explorerModel) showHelp(md string) {
	m.showingHelp = true
	m.message = "showing help, enter any command to return to the tree"
	m.failed = false
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(md); err == nil {
			m.treeView.SetContent(rendered)
			return
		}
	}
	m.treeView.SetContent(md)
}

func (m *explorerModel) refreshTree() {
	m.showingHelp = false
	root := m.session.Tree().Root()
	if root == nil {
		m.treeView.SetContent("(empty tree)")
		return
	}
	m.treeView.SetContent(printer.Sprint(root, printOptions(m.display, m.session.Tree().Kind())...))
}

func (m *explorerModel) updateLayout() {
	// title, stats, message, input and footer around the bordered view
	m.treeView.Width = max(m.width-4, 0)
	m.treeView.Height = max(m.height-9, 0)
	m.input.Width = max(m.width-6, 0)
}

func (m explorerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	title := fmt.Sprintf(" 🌳 %s tree ", m.session.Tree().Kind())
	if m.showingHelp {
		title = " 📖 Help "
	}

	box := m.styles.Border.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			m.treeView.View(),
		))

	msgStyle := m.styles.SuccessMessage
	if m.failed {
		msgStyle = m.styles.ErrorMessage
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		box,
		m.styles.Stats.Render(m.session.Summary()),
		lipgloss.NewStyle().Padding(0, 1).Render(msgStyle.Render(m.message)),
		m.input.View(),
		m.renderKeyHelp(),
	)
}

func (m explorerModel) renderKeyHelp() string {
	keys := []string{"enter", "↑/↓", "pgup/pgdown", "ctrl+y", "esc"}
	descs := []string{"run command", "scroll", "page", "copy tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runExplorer starts the Bubble Tea explorer on session.
func runExplorer(session *Session, cfg *Config) error {
	program := tea.NewProgram(
		newExplorerModel(session, cfg),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
