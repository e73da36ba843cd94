package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/internal/theme"
	"github.com/spf13/cobra"
)

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// findEditor returns the first editor from $EDITOR, $VISUAL or a common list
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := strings.TrimSpace(os.Getenv(env)); e != "" {
			return e, nil
		}
	}
	for _, e := range []string{"vim", "vi", "nano", "emacs"} {
		if _, err := exec.LookPath(e); err == nil {
			return e, nil
		}
	}
	return "", fmt.Errorf("no editor found: set $EDITOR")
}

func editConfigFile() error {
	// Loading creates the default file on first use
	if _, err := config.LoadUserConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: current config is invalid: %v\n", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}
	// $EDITOR may carry arguments, e.g. "code --wait"
	fields := strings.Fields(editor)
	// #nosec G204 - the editor is chosen by the user
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return validateConfigFile(path)
}

func resetConfigToDefaults(cmd *cobra.Command, force bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if !force {
		fmt.Printf("This will overwrite %s with the default configuration.\nContinue? [y/N] ", path)
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := config.WriteConfigFile(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("Configuration reset: %s\n", path)
	return nil
}

// validateConfigFile loads path (default: the user config) and reports the result
func validateConfigFile(path string) error {
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}
	// LoadUserConfigFile prints the individual issues
	if _, err := config.LoadUserConfigFile(path); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", path)
	return nil
}

// keybindTable renders rows of (action, keys, description) as a themed table
func keybindTable(headers []string, rows [][]string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader()).Padding(0, 1)
	key := lipgloss.NewStyle().Foreground(theme.CLITableKey()).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	dim := lipgloss.NewStyle().Foreground(theme.CLITableDim()).Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableBorder())).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 1:
				return key
			case col == len(headers)-1:
				return dim
			default:
				return cell
			}
		})
}

// loadConfigForListing loads the user config without applying flags
func loadConfigForListing() *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, showing defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return userConfig
}

func listKeybindings() error {
	registry := config.NewKeybindRegistry(loadConfigForListing())

	for _, section := range config.GetKeybindings(registry) {
		if len(section.Bindings) == 0 {
			continue
		}
		rows := make([][]string, 0, len(section.Bindings))
		for _, b := range section.Bindings {
			rows = append(rows, []string{section.Title, b.Key, b.Description})
		}
		fmt.Println(lipgloss.NewStyle().Bold(true).Render(section.Title))
		lipgloss.Println(keybindTable([]string{"Section", "Keys", "Action"}, rows).Render())
		fmt.Println()
	}
	return nil
}

func listCustomKeybindings() error {
	custom := config.NewKeybindRegistry(loadConfigForListing())
	defaults := config.NewKeybindRegistry(config.DefaultConfig())

	var rows [][]string
	for _, action := range config.AllActions() {
		got, want := custom.KeysFor(action), defaults.KeysFor(action)
		if slices.Equal(got, want) {
			continue
		}
		rows = append(rows, []string{action, keysOrNone(got), keysOrNone(want)})
	}

	if len(rows) == 0 {
		fmt.Println("No customized keybindings; everything uses the defaults.")
		return nil
	}
	lipgloss.Println(keybindTable([]string{"Action", "Custom", "Default"}, rows).Render())
	return nil
}

func keysOrNone(keys []string) string {
	if len(keys) == 0 {
		return "(none)"
	}
	return strings.Join(keys, ", ")
}
