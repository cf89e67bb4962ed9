package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/riftwar-games/riftwar/internal/game"
	"github.com/riftwar-games/riftwar/internal/log"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "demo":
		runDemo(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  riftwar play [--covenant FILE] [--riftcaller FILE] [--seed N] [--debug]")
	fmt.Println("  riftwar demo [--seed N]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Start a hot-seat game; both sides play at one terminal")
	fmt.Println("  demo    Run a short scripted game and print each update")
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	covenantFile := fs.String("covenant", "decks/covenant.yaml", "path to the Covenant deck list")
	riftcallerFile := fs.String("riftcaller", "decks/riftcaller.yaml", "path to the Riftcaller deck list")
	seed := fs.Uint64("seed", 0, "fixed RNG seed (0 means random)")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Parse(args)

	logger, err := log.New(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	covenant, err := game.LoadDeck(*covenantFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	riftcaller, err := game.LoadDeck(*riftcallerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	config := game.GameConfig{}.WithLogger(logger)
	if *seed != 0 {
		config.Deterministic = true
		config.Seed = *seed
	}
	g, err := game.NewGame(game.NewGameId(), covenant, riftcaller, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session := &Session{Game: g, In: os.Stdin, Out: os.Stdout}
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	seed := fs.Uint64("seed", 1, "fixed RNG seed")
	fs.Parse(args)

	if err := demo(os.Stdout, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
