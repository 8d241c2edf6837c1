package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/taskview/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.keyBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	}) + "\n" + views.RenderMarkdown(HelpMarkdown)
}

// HelpMarkdown is the long-form help body shown through the markdown
// renderer.
const HelpMarkdown = `# taskview

Tasks are fetched once at startup. Add, toggle, and remove are local to
this session and are not written back to the server.

- ` + "`a`" + ` add a task, ` + "`esc`" + ` back to the list
- ` + "`space`" + `/` + "`enter`" + ` toggle the selected task
- ` + "`x`" + ` remove the selected task
- ` + "`/`" + ` command palette: add <name>, toggle <id>, remove <id>
`

func (m Model) keyBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Add, Action: "add a task"},
		{Key: "j/k", Action: "move selection"},
		{Key: "space/" + m.Keys.Toggle, Action: "toggle done"},
		{Key: m.Keys.Remove, Action: "remove task"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.keyBindings()))
	for _, kb := range m.keyBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
