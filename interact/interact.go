package interact

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goroom "github.com/jdginn/go-mirror-room/room"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	image goroom.VirtualImage
	path  goroom.RayPath
}

func (i item) Title() string {
	return i.image.ID
}

func (i item) Description() string {
	return fmt.Sprintf("depth %d at (%.1f, %.1f), %d bounces", i.image.Depth, i.image.Position.X, i.image.Position.Y, len(i.path)-2)
}

func (i item) FilterValue() string {
	return i.Title()
}

type model struct {
	list     list.Model
	view     goroom.View
	output   string
	selected string
	err      error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if selected, ok := m.list.SelectedItem().(item); ok && selected.image.ID != m.selected {
		m.selected = selected.image.ID
		m.view.Scene.Paths = []goroom.RayPath{selected.path}
		m.err = m.view.Save(m.output)
	}
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return docStyle.Render(m.list.View() + "\n" + m.err.Error())
	}
	return docStyle.Render(m.list.View())
}

// Interact opens a terminal list of the images. Each selection re-renders the
// scene with that image's ray path to output.
func Interact(view goroom.View, sightings []goroom.Sighting, output string) error {
	items := make([]list.Item, len(sightings))
	for i, s := range sightings {
		items[i] = item{image: s.Image, path: s.Path}
	}

	m := model{list: list.New(items, list.NewDefaultDelegate(), 0, 0), view: view, output: output}
	m.list.Title = "Virtual images"

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
