package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"papyr"
	"papyr/adapters"
	"papyr/codec"
	"papyr/internal/config"
	"papyr/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	storePath := flag.String("store", "", "document path (overrides config)")
	codecName := flag.String("codec", "", "payload codec: json or toml (overrides config)")
	sealed := flag.Bool("sealed", false, "encrypt the document with a passphrase")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	flag.Usage = usage
	flag.Parse()

	// Load config (TOML file with defaults)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// CLI flags override config file values
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}
	if *codecName != "" {
		cfg.Store.Codec = *codecName
	}
	if *sealed {
		cfg.Store.Sealed = true
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.Init(cfg.Log.Level, cfg.Log.Format)

	path := config.ExpandHome(cfg.Store.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		log.Fatalf("creating store dir: %v", err)
	}

	var payloadCodec codec.Codec = codec.JSON{}
	if cfg.Store.Codec == "toml" {
		payloadCodec = codec.TOML{}
	}
	if cfg.Store.Sealed {
		pass, err := readPassphrase()
		if err != nil {
			log.Fatalf("passphrase: %v", err)
		}
		payloadCodec = codec.Sealed(payloadCodec, pass)
	}

	adapter := adapters.NewFile[Document](path).WithCodec(payloadCodec)
	db, err := papyr.New(adapter, Document{})
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	if err := runCommand(os.Stdout, db, args[0], args[1:]); err != nil {
		log.Fatalf("%s: %v", args[0], err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `papyr - a single-document note store

Usage:
  papyr [flags] add <text...>   add a note
  papyr [flags] list            list notes
  papyr [flags] get <id>        show one note (id prefix is enough)
  papyr [flags] done <id>       mark a note done
  papyr [flags] rm <id>         remove a note

Flags:
`)
	flag.PrintDefaults()
}

func readPassphrase() (string, error) {
	fmt.Fprint(os.Stderr, "Passphrase: ")
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	if len(pass) == 0 {
		return "", fmt.Errorf("empty passphrase")
	}
	return string(pass), nil
}
