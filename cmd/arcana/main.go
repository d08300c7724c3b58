// Package main is the arcana command line client. It draws a daily card
// against the backend service when one is configured, and falls back to a
// fully offline local ledger otherwise.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/domain/selection"
	"github.com/arcanadaily/arcana-api/internal/ledger"
	"github.com/arcanadaily/arcana-api/internal/metrics"
	"github.com/arcanadaily/arcana-api/internal/remote"
	"github.com/arcanadaily/arcana-api/internal/service"
)

const usage = `Usage: arcana [flags] <command> [args]

Commands:
  draw -mood <mood> -question <text>   draw (or replay) today's card
  today                                show today's draw, if any
  history                              list past draws, newest first
  card <id>                            show a card's full catalog entry
  register <email>                     create an account on the server
  login <email>                        log in to the server
  enhance                              premium interpretation for today's card

Flags:
  -server <url>   backend base URL, e.g. https://arcana.example.com/api
                  (defaults to $ARCANA_SERVER_URL)
  -data <dir>     local data directory (default ~/.arcana)
`

// session is the persisted login state.
type session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// cli bundles the pieces each command needs.
type cli struct {
	dataDir string
	logger  *slog.Logger
	client  *remote.Client
	local   *ledger.LocalLedger
	draws   service.DrawService
}

func main() {
	serverURL := flag.String("server", os.Getenv("ARCANA_SERVER_URL"), "backend base URL")
	dataDir := flag.String("data", "", "local data directory")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*serverURL, *dataDir, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(serverURL, dataDir string, args []string) error {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".arcana")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	local, err := ledger.NewLocalLedger(filepath.Join(dataDir, "ledger"), logger)
	if err != nil {
		return err
	}

	app := &cli{dataDir: dataDir, logger: logger, local: local}

	var remoteLedger ledger.DrawLedger
	if serverURL != "" {
		app.client = remote.NewClient(serverURL, nil, logger)
		if sess, err := app.loadSession(); err == nil && sess.Token != "" {
			app.client.SetToken(sess.Token)
			remoteLedger = ledger.NewRemoteLedger(app.client, logger)
		}
	}

	selector := selection.NewSelector(domain.Cards(), nil, nil)
	app.draws, err = service.NewDrawService(local, remoteLedger, selector, metrics.Noop{}, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	command, rest := args[0], args[1:]
	switch command {
	case "draw":
		return app.cmdDraw(ctx, rest)
	case "today":
		return app.cmdToday(ctx)
	case "history":
		return app.cmdHistory(ctx)
	case "card":
		return app.cmdCard(rest)
	case "register":
		return app.cmdAuth(ctx, "register", rest)
	case "login":
		return app.cmdAuth(ctx, "login", rest)
	case "enhance":
		return app.cmdEnhance(ctx)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (c *cli) cmdDraw(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	mood := fs.String("mood", "", "your current mood")
	question := fs.String("question", "", "what is on your mind")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mood == "" || *question == "" {
		moods := make([]string, 0, len(domain.AllMoods()))
		for _, m := range domain.AllMoods() {
			moods = append(moods, string(m))
		}
		return fmt.Errorf("draw requires -mood and -question; moods: %s",
			strings.Join(moods, ", "))
	}

	record, err := c.draws.Draw(ctx, domain.Mood(*mood), *question)
	switch {
	case errors.Is(err, ledger.ErrQuotaExceeded):
		return errors.New("daily draw limit reached; upgrade to premium for more")
	case err != nil:
		return err
	}

	printRecord(record)
	return nil
}

func (c *cli) cmdToday(ctx context.Context) error {
	record, err := c.draws.TodaysDraw(ctx)
	if err != nil {
		return err
	}
	if record == nil {
		fmt.Println("No draw yet today.")
		return nil
	}
	printRecord(record)
	return nil
}

func (c *cli) cmdHistory(ctx context.Context) error {
	records, err := c.draws.History(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No draws recorded yet.")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%s  %-20s  mood=%s\n", r.Date, r.Card.Name, r.Context.Mood)
	}
	return nil
}

func (c *cli) cmdCard(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: arcana card <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid card ID %q", args[0])
	}

	card, err := domain.CardByID(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n\n", card.Name, card.Number)
	fmt.Printf("Keywords: %s\n", strings.Join(card.Keywords, ", "))
	fmt.Printf("Meaning:  %s\n", card.TraditionalMeaning)
	fmt.Printf("Light:    %s\n", strings.Join(card.LightAspects, ", "))
	fmt.Printf("Shadow:   %s\n", strings.Join(card.ShadowAspects, ", "))
	return nil
}

func (c *cli) cmdAuth(ctx context.Context, kind string, args []string) error {
	if c.client == nil {
		return errors.New("no server configured; pass -server or set ARCANA_SERVER_URL")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: arcana %s <email>", kind)
	}
	email := args[0]

	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	var result *remote.AuthResult
	if kind == "register" {
		result, err = c.client.Register(ctx, email, password)
	} else {
		result, err = c.client.Login(ctx, email, password)
	}
	if err != nil {
		return err
	}

	if err := c.saveSession(session{Token: result.Token, Email: result.User.Email}); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s", result.User.Email)
	if result.User.Premium {
		fmt.Print(" (premium)")
	}
	fmt.Println()
	return nil
}

func (c *cli) cmdEnhance(ctx context.Context) error {
	if c.client == nil || !c.client.Authenticated() {
		return errors.New("enhance requires a server login; run `arcana login` first")
	}

	record, err := c.draws.TodaysDraw(ctx)
	if err != nil {
		return err
	}
	if record == nil {
		return errors.New("no draw yet today; run `arcana draw` first")
	}

	text, err := c.client.GetEnhancedInterpretation(
		ctx,
		record.Card.ID,
		string(record.Context.Mood),
		record.Context.Question,
		record.Date,
	)
	if err != nil {
		if remote.StatusOf(err) == http.StatusForbidden {
			return errors.New("enhanced interpretations require a premium subscription")
		}
		return err
	}

	fmt.Println(text)
	return nil
}

func (c *cli) sessionPath() string {
	return filepath.Join(c.dataDir, "session.json")
}

func (c *cli) loadSession() (*session, error) {
	data, err := os.ReadFile(c.sessionPath())
	if err != nil {
		return nil, err
	}
	var sess session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &sess, nil
}

func (c *cli) saveSession(sess session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(c.sessionPath(), data, 0o600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func printRecord(record *domain.DrawRecord) {
	fmt.Printf("%s (%s)\n\n", record.Card.Name, record.Card.Number)
	if record.Interpretation != "" {
		fmt.Println(record.Interpretation)
	} else {
		fmt.Println(record.Card.TraditionalMeaning)
	}
	fmt.Printf("\nDrawn %s for mood %q.\n", record.Date, record.Context.Mood)
}
