package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const historyFile = ".formula_history"

func runREPL(s session) error {
	line := liner.NewLiner()
	defer func() { _ = line.Close() }()
	line.SetCtrlCAborts(true)

	historyPath := loadHistory(line)
	defer saveHistory(line, historyPath)

	fmt.Println("formula repl, :help for commands")
	for {
		input, err := line.Prompt("formula> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("prompt: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch {
		case input == ":quit" || input == ":q":
			return nil
		case input == ":help":
			fmt.Println(":vars        list variables\n:ast <expr>  dump the parsed tree\n:quit        leave")
		case input == ":vars":
			for _, v := range s.vars() {
				fmt.Println(v)
			}
		case strings.HasPrefix(input, ":ast "):
			out, err := s.dumpAST(strings.TrimSpace(strings.TrimPrefix(input, ":ast ")))
			if err != nil {
				log.WithError(err).Error("compile failed")
				continue
			}
			fmt.Println(out)
		default:
			out, err := s.eval(input)
			if err != nil {
				log.WithError(err).Error("evaluate failed")
				continue
			}
			fmt.Println(out)
		}
	}
}

func loadHistory(line *liner.State) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, historyFile)
	f, err := os.Open(path)
	if err != nil {
		return path
	}
	defer func() { _ = f.Close() }()
	_, _ = line.ReadHistory(f)
	return path
}

func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.WithError(err).Warn("cannot save history")
		return
	}
	defer func() { _ = f.Close() }()
	_, _ = line.WriteHistory(f)
}
