// Command sharedstore reads and writes a shared store kept in a single slot
// of the configured backend.
//
//	sharedstore init
//	sharedstore get <key>
//	sharedstore set <key> <json-or-string>
//	sharedstore remove <key>
//	sharedstore clear
//	sharedstore keys
//	sharedstore dump
//
// The backend is configured through SHAREDSTORE_* environment variables.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/movio/sharedstore"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

const usage = "usage: sharedstore <init|get|set|remove|clear|keys|dump> [key] [value]"

func main() {
	config, err := ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	os.Exit(run(os.Args[1:], config, os.Stdout, os.Stderr))
}

func newLogger(config *Config) sharedstore.Logger {
	if config.LogFormat == "json" {
		return sharedstore.NewJSONLogger(config.Slot, config.Debug)
	}
	return sharedstore.NewTextLogger(config.Slot, config.Debug)
}

// arity is the number of arguments each command takes after its name
var arity = map[string]int{
	"init":   0,
	"get":    1,
	"set":    2,
	"remove": 1,
	"clear":  0,
	"keys":   0,
	"dump":   0,
}

func run(args []string, config *Config, stdout io.Writer, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}
	command := args[0]
	expected, known := arity[command]
	if !known || len(args)-1 != expected {
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}

	storeConfig := &sharedstore.Config{
		StoreName: config.Slot,
		Logger:    newLogger(config),
	}
	slot, closer, err := openSlot(config, storeConfig)
	if err != nil {
		fmt.Fprintf(stderr, "cannot open %s slot: %s\n", config.Backend, err)
		return exitFailed
	}
	defer closer.Close()

	if command == "dump" {
		content, err := slot.Read()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitFailed
		}
		fmt.Fprintln(stdout, content)
		return exitOK
	}

	store := sharedstore.NewSharedStore(slot, storeConfig)
	store.Initialize()
	switch command {
	case "init":
		return exitOK
	case "get":
		return printJSON(stdout, stderr, store.Get(args[1]))
	case "set":
		return exitCode(store.Set(args[1], parseValue(args[2])))
	case "remove":
		return exitCode(store.Remove(args[1]))
	case "clear":
		return exitCode(store.Clear())
	case "keys":
		keys := store.Keys()
		if keys == nil {
			return exitFailed
		}
		for _, key := range keys {
			fmt.Fprintln(stdout, key)
		}
		return exitOK
	}
	return exitUsage
}

// parseValue decodes raw as JSON, falling back to the raw string
func parseValue(raw string) interface{} {
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

func printJSON(stdout io.Writer, stderr io.Writer, value interface{}) int {
	bytes, err := json.Marshal(value)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	fmt.Fprintln(stdout, string(bytes))
	return exitOK
}

func exitCode(ok bool) int {
	if ok {
		return exitOK
	}
	return exitFailed
}
