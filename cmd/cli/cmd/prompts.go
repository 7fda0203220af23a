package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/manifoldco/promptui"
)

type selectPromptData struct {
	Name        string
	Value       string
	Description string
}

// Starts the default editor for users to interactively edit a template string
func EditorPrompt(template string, fileext string) (string, error) {
	dir, err := os.MkdirTemp("", "tensorfx-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	f, err := os.CreateTemp(dir, fmt.Sprintf("*.%s", fileext))
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())
	f.Write([]byte(template))

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}
	cmd := exec.Command(editor, f.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	err = cmd.Run()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.Name())
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func SelectPrompt(label string, help string, items []selectPromptData) (selectPromptData, error) {
	templates := &promptui.SelectTemplates{
		Label:    fmt.Sprintf(`{{ "%s" | faint }}`, help),
		Active:   "> {{ .Name }} ({{ .Value | red }})",
		Inactive: "  {{ .Name }} ({{ .Value | red }})",
		Selected: fmt.Sprintf(`{{ "%s: " | faint }} {{ .Name }}`, label),
		Details: `
	{{ .Description }}`,
		Help: fmt.Sprintf(`{{ "%s" | bold }}`, label),
	}
	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return selectPromptData{}, err
	}
	return items[i], nil
}

func TextPrompt(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

func BoolPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if err == promptui.ErrAbort {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
