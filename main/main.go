package main

import (
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dball/cons/core"
	"github.com/dball/cons/pipeline"
	"github.com/dball/cons/printer"
	"github.com/dball/cons/types"
	"github.com/peterh/liner"
)

func historyFile() string {
	if path := os.Getenv("CONS_HISTORY"); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), ".cons-history")
}

func printerConfig() printer.Config {
	config := printer.Config{Readably: true}
	if s := os.Getenv("CONS_MAX_SEQ"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			log.Printf("ignoring CONS_MAX_SEQ=%q: want a non-negative integer", s)
		} else {
			config.MaxSeqLength = n
		}
	}
	return config
}

func interactiveRepl(env *types.Env, config printer.Config) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	history := historyFile()
	if f, err := os.Open(history); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	for {
		text, err := line.Prompt("cons> ")
		if err == nil {
			text = pipeline.Do(text).Pipe(strings.TrimSpace).Return()
			if text == "" {
				continue
			}
			line.AppendHistory(text)
			os.Stdout.WriteString(core.Rep(env, config, text))
			os.Stdout.WriteString("\n")
		} else if err == liner.ErrPromptAborted {
		} else if err == io.EOF {
			break
		} else {
			log.Fatalf("liner err %v", err)
		}
		if f, err := os.Create(history); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("cons: ")
	env := core.BuildEnv()
	config := printerConfig()
	if len(os.Args) < 2 {
		interactiveRepl(env, config)
		return
	}
	bytes, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	values, err := core.EvalAll(env, string(bytes))
	for _, value := range values {
		os.Stdout.WriteString(printer.PrintStr(config, value) + "\n")
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}
