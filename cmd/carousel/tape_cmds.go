package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Gaurav-Gosain/carousel/internal/app"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/internal/tape"
	"github.com/spf13/cobra"
)

// parseTape resolves a path or saved tape name and parses it
func parseTape(nameOrPath string) (string, []tape.Command, error) {
	path, err := tape.Resolve(nameOrPath)
	if err != nil {
		return "", nil, err
	}
	cmds, err := tape.ParseFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, cmds, nil
}

func validateTapeFile(nameOrPath string) error {
	path, cmds, err := parseTape(nameOrPath)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d commands, OK\n", path, len(cmds))
	return nil
}

// runTapeInteractive plays the tape inside the TUI
func runTapeInteractive(cmd *cobra.Command, nameOrPath string, args []string) error {
	_, cmds, err := parseTape(nameOrPath)
	if err != nil {
		return err
	}
	return runProgram(cmd, args, cmds)
}

// runTapeHeadless executes the tape against a model without a terminal
func runTapeHeadless(cmd *cobra.Command, nameOrPath string, args []string) error {
	path, cmds, err := parseTape(nameOrPath)
	if err != nil {
		return err
	}
	items, err := loadItems(args)
	if err != nil {
		return err
	}

	userConfig := loadConfig(cmd)
	logger, closeLog, err := setupLogger(userConfig, false)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	model := app.New(app.Options{
		Items:           items,
		Config:          userConfig,
		KeybindRegistry: config.NewKeybindRegistry(userConfig),
		Logger:          logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exec := tape.NewCommandExecutor(model)
	exec.SkipSleep = true
	if err := exec.Run(ctx, cmds); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("%s: %d commands, final slide %d of %d\n", path, len(cmds), model.CurrentSlide(), len(model.Items()))
	return nil
}

func listTapeFiles() error {
	files, err := tape.List()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		dir, _ := tape.Dir()
		fmt.Printf("No tapes in %s\n", dir)
		return nil
	}

	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{f.Name, fmt.Sprintf("%d B", f.Size), f.Modified.Format(time.DateTime)})
	}
	t := inspectTable([]string{"Name", "Size", "Modified"}, rows, func(int) bool { return false })
	_, err = fmt.Fprintln(stdout(), t.Render())
	return err
}

func showTapeDirectory() error {
	dir, err := tape.Dir()
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}

func deleteTapeFile(name string) error {
	if err := tape.Delete(name); err != nil {
		return err
	}
	fmt.Printf("Deleted tape %s\n", name)
	return nil
}

// showTapeFile prints the tape normalised, one command per line
func showTapeFile(nameOrPath string) error {
	_, cmds, err := parseTape(nameOrPath)
	if err != nil {
		return err
	}
	fmt.Print(tape.Format(cmds))
	return nil
}
