// cmd/play/main.go
//
// Terminal client for the maths trainer: arithmetic and money-counting
// rounds against the gamification engine, with the final score sent to
// the leaderboard server when the lives run out.
//
// Environment variables:
//   LEADERBOARD_URL  base URL of the server (default http://localhost:5175)
//   LOG_LEVEL        zerolog level (default warn; keeps the play loop quiet)

package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Sn4kyGit/learning-maths/internal/arith"
	"github.com/Sn4kyGit/learning-maths/internal/game"
	"github.com/Sn4kyGit/learning-maths/internal/hero"
	"github.com/Sn4kyGit/learning-maths/internal/leaderboard"
	"github.com/Sn4kyGit/learning-maths/internal/money"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	in := bufio.NewScanner(os.Stdin)
	client := leaderboard.New(getEnv("LEADERBOARD_URL", "http://localhost:5175"))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	name := promptHeroName(in)
	sess := game.NewSession(name, client)

	fmt.Printf("\nLos geht's, %s! Du hast %d Leben.\n", name, game.MaxLives)
	printTopPlayers(client)

	for {
		playRound(in, rng, sess)

		st := sess.State()
		if !st.GameOver {
			continue
		}

		fmt.Printf("\nGame Over! Endstand: %d Punkte.\n", st.Points)
		// Give the detached submission a moment before fetching.
		time.Sleep(500 * time.Millisecond)
		printTopPlayers(client)

		fmt.Print("Nochmal spielen? (j/n) ")
		if !in.Scan() || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(in.Text())), "j") {
			fmt.Println("Bis bald!")
			return
		}
		sess.Reset()
	}
}

// promptHeroName reads a hero name until it passes validation.
func promptHeroName(in *bufio.Scanner) string {
	for {
		fmt.Print("Dein Helden-Name: ")
		if !in.Scan() {
			os.Exit(0)
		}
		name, err := hero.Validate(in.Text())
		switch err {
		case nil:
			return name
		case hero.ErrNameForbidden:
			fmt.Println("Wähle bitte einen schöneren Helden-Namen!")
		case hero.ErrNameTooLong:
			fmt.Printf("Höchstens %d Zeichen, bitte.\n", hero.MaxNameLen)
		default:
			fmt.Println("Bitte gib deinen Namen ein!")
		}
	}
}

// playRound asks one question and feeds the answer into the session.
func playRound(in *bufio.Scanner, rng *rand.Rand, sess *game.Session) {
	st := sess.State()
	fmt.Printf("\n[Punkte %d | Leben %d | Serie %d]\n", st.Points, st.Lives, st.Streak)

	var correct bool
	if rng.Intn(2) == 0 {
		correct = arithRound(in, rng)
	} else {
		correct = moneyRound(in, rng)
	}

	if correct {
		fmt.Println("Richtig! ⭐")
		sess.AddSuccess()
		return
	}
	fmt.Println("Leider falsch.")
	sess.AddFailure()
}

// arithRound asks a column-arithmetic task.
func arithRound(in *bufio.Scanner, rng *rand.Rand) bool {
	p := arith.NewProblem(rng)
	fmt.Printf("Rechne: %s = ", p)
	if !in.Scan() {
		os.Exit(0)
	}
	got, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil {
		return false
	}
	if !p.CheckResult(got) {
		fmt.Printf("Die richtige Antwort war %d.\n", p.Result())
		return false
	}
	return true
}

// moneyRound asks the player to assemble an amount from bills and coins.
func moneyRound(in *bufio.Scanner, rng *rand.Rand) bool {
	target := money.RandomTarget(rng)
	fmt.Printf("Lege %s mit Scheinen und Münzen (z.B. \"20€ 2€ 50ct\"): ", money.FormatCents(target))
	if !in.Scan() {
		os.Exit(0)
	}
	items, err := money.ParseLabels(in.Text())
	if err != nil {
		fmt.Println(err)
		return false
	}
	if !money.Matches(target, items) {
		fmt.Printf("Das waren %s.\n", money.FormatCents(money.Sum(items)))
		return false
	}
	return true
}

// printTopPlayers renders the current top-10; failures just show an
// empty board.
func printTopPlayers(client *leaderboard.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	top := client.GetTopPlayers(ctx)
	if len(top) == 0 {
		fmt.Println("\nNoch keine Einträge in der Bestenliste.")
		return
	}
	fmt.Println("\n--- Bestenliste ---")
	for i, e := range top {
		fmt.Printf("%2d. %-15s %d\n", i+1, e.Name, e.Score)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
