package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

func newFilterModel() textinput.Model {
	input := textinput.New()
	input.Placeholder = "filter boards"
	input.Prompt = " / "
	input.CharLimit = 64
	return input
}

func newComposerModel() textarea.Model {
	input := textarea.New()
	input.Placeholder = "message"
	input.Prompt = "┃ "
	input.CharLimit = 0
	input.ShowLineNumbers = false
	input.Blur()
	return input
}

func newEditorModel() textarea.Model {
	input := textarea.New()
	input.Prompt = ""
	input.CharLimit = 0
	input.ShowLineNumbers = false
	input.Blur()
	return input
}
