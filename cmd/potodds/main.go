package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/potodds/internal/deck"
	"github.com/lox/potodds/internal/engine"
	"github.com/lox/potodds/internal/evaluator"
)

type CLI struct {
	Hand     string `arg:"" help:"Hole cards in format 'AsKs'" required:""`
	Board    string `short:"b" help:"Community board cards (e.g., '7s3sJd')"`
	Workers  int    `short:"w" help:"Number of evaluation workers (default: CPU count)"`
	LogLevel string `short:"l" help:"Log level (debug, info, warn, error)" default:"warn"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	nutsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	ratioStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.New(os.Stderr)
	switch cli.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}

	hole, err := deck.ParseCards(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hand: %v\n", err)
		ctx.Exit(1)
	}
	if len(hole) != 2 {
		fmt.Fprintf(os.Stderr, "Hand must contain exactly 2 cards, got %d\n", len(hole))
		ctx.Exit(1)
	}

	var board []deck.Card
	if cli.Board != "" {
		board, err = deck.ParseCards(cli.Board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			ctx.Exit(1)
		}
	}

	var opts []engine.Option
	if cli.Workers > 0 {
		opts = append(opts, engine.WithWorkers(cli.Workers))
	}
	eng := engine.New(evaluator.NewLookupOracle(), logger, opts...)

	result, err := eng.Calculate(context.Background(), hole, board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	displayResult(hole, board, result)
}

func displayResult(hole, board []deck.Card, result engine.Result) {
	fmt.Printf("%s  %s\n", headerStyle.Render("hand"), handStyle.Render(formatCards(hole)))
	if len(board) > 0 {
		fmt.Printf("%s %s\n", headerStyle.Render("board"), handStyle.Render(formatCards(board)))
	}
	fmt.Printf("\n")

	if result.PotOddsRatio == engine.RatioUnbeatable {
		fmt.Printf("%s\n", nutsStyle.Render("NUTS! This hand cannot be beaten."))
		return
	}

	if len(result.Outs) > 0 {
		displayOuts(result.Outs)
		fmt.Printf("\n")
	}

	street, err := engine.ResolveStreet(len(board))
	if err == nil {
		if p := engine.WinProbability(street, len(result.Outs)); p > 0 {
			fmt.Printf("%s  %d\n", headerStyle.Render("outs"), len(result.Outs))
			fmt.Printf("%s   %.1f%%\n", headerStyle.Render("win"), p*100)
		}
	}
	fmt.Printf("%s  %s\n", headerStyle.Render("odds"), ratioStyle.Render(result.PotOddsRatio))
}

// displayOuts groups outs by the hand they make, strongest first
func displayOuts(outs []engine.Out) {
	grouped := make(map[evaluator.Category][]deck.Card)
	for _, out := range outs {
		grouped[out.Draw] = append(grouped[out.Draw], out.Card)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for cat := evaluator.RoyalFlush; ; cat-- {
		if cards, ok := grouped[cat]; ok {
			fmt.Fprintf(w, "%s\t%s\n",
				categoryStyle.Render(cat.Display()),
				formatCards(cards))
		}
		if cat == evaluator.HighCard {
			break
		}
	}
	w.Flush()
}

func formatCards(cards []deck.Card) string {
	var parts []string
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
