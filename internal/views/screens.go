package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID   int64
	Name string
	Done bool
}

type TaskListPanelData struct {
	Title      string
	Items      []TaskItemData
	SelectedID int64
}

type AddBarData struct {
	InputView   string
	CaptureMode bool
}

type LoadingPanelData struct {
	SpinnerView string
	Endpoint    string
}

type ErrorPanelData struct {
	Message string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderLoadingPanel(data LoadingPanelData) string {
	var b strings.Builder
	b.WriteString(loadingStyle.Render(data.SpinnerView+" loading tasks") + "\n")
	if data.Endpoint != "" {
		b.WriteString(fmt.Sprintf("from: %s", data.Endpoint))
	}
	return strings.TrimSpace(b.String())
}

func RenderErrorPanel(data ErrorPanelData) string {
	return errorStyle.Render("fetch failed") + "\n" + data.Message
}

func RenderAddBar(data AddBarData) string {
	if data.CaptureMode {
		return data.InputView
	}
	return "press [a] to add a task"
}

func RenderTaskListPanel(data TaskListPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d):\n", data.Title, len(data.Items)))
	if len(data.Items) == 0 {
		b.WriteString("  (none)")
		return b.String()
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		box := "[ ]"
		name := item.Name
		if item.Done {
			box = "[x]"
			name = doneStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, box, name))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "\ncommand: " + inputView
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	for _, binding := range data.Bindings {
		b.WriteString(binding + "\n")
	}
	b.WriteString(data.HelpView)
	return strings.TrimSpace(b.String())
}
