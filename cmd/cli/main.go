// Command cli is an interactive local terminal client: it drives a
// session.Manager in-process against a bot opponent, grounded on the
// teacher's cmd/cli command-loop shape but talking to the game engine
// directly instead of over a websocket.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mtgsim/internal/catalog"
	"mtgsim/internal/logger"
	"mtgsim/internal/session"
	"mtgsim/internal/state"
)

const cliName = "mtgsim CLI"

func main() {
	fmt.Printf("%s\n", cliName)
	fmt.Println("Type 'help' for commands, 'quit' to exit.")
	fmt.Println()

	if err := logger.Init(nil); err != nil {
		panic(err)
	}

	reg := catalog.NewRegistry(catalog.StarterCards)
	manager := session.NewManager(reg)

	playerDeck := "red-aggro"
	opponentDeck := "red-aggro"
	opponentKind := "random"
	if len(os.Args) > 1 {
		playerDeck = os.Args[1]
	}
	if len(os.Args) > 2 {
		opponentDeck = os.Args[2]
	}
	if len(os.Args) > 3 {
		opponentKind = os.Args[3]
	}

	opponent, resolvedKind := session.ResolveOpponent(opponentKind, 1)
	sess, err := manager.Create(playerDeck, opponentDeck, opponent, resolvedKind, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create session: %v\n", err)
		os.Exit(1)
	}

	ui := NewUI(reg)
	reader := bufio.NewReader(os.Stdin)

	result := sess.State()
	for {
		legal := sess.Legal(state.Player)
		fmt.Print("\033[2J\033[H")
		fmt.Println(ui.Render(sess.Game, legal, result.Turn, result.Phase))
		if result.Done {
			fmt.Println(renderInfo(outcomeText(result)))
		}
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.TrimSpace(line)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return
		case "help", "h":
			ui.SetLastCommand(cmd, helpText())
			result = sess.State()
			continue
		case "reset":
			nextSeed := sess.Seed + 1
			result = sess.Reset(&nextSeed)
			ui.SetLastCommand(cmd, renderInfo("session reset"))
			continue
		}

		idx, err := strconv.Atoi(cmd)
		if err != nil || idx < 0 || idx >= len(legal) {
			ui.SetLastCommand(cmd, renderError("unknown command or action index out of range"))
			continue
		}

		result = sess.Step(idx)
		ui.SetLastCommand(cmd, fmt.Sprintf("reward: %.3f", result.Reward))
	}
}

func helpText() string {
	return `Commands:
  <number>   play the legal action with that index
  reset      start a fresh game with a new shuffle
  help, h    show this text
  quit, q    exit`
}

func outcomeText(r session.StepResult) string {
	if r.Winner == nil {
		return "Game over: draw"
	}
	return fmt.Sprintf("Game over: %s wins", *r.Winner)
}
