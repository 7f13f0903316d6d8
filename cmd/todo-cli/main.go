package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"todo/internal/util"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - signup / login / logout: manage the stored token
// - list:                    show todos
// - add <title>:             create a todo
// - done <id> / undo <id>:   toggle completion
// - rm <id>:                 delete a todo

const defaultServer = "http://localhost:8080"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	global := flag.NewFlagSet("todo-cli", flag.ExitOnError)
	server := global.String("server", envOr("TODO_SERVER", defaultServer), "Base URL of the todo server")
	_ = global.Parse(os.Args[2:])

	store, err := newDefaultCredentialStore()
	if err != nil {
		fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app := &cli{
		client: newClient(*server, nil),
		store:  store,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		prompt: readPasswordFromTerminal,
	}

	if err := app.run(ctx, os.Args[1], global.Args()); err != nil {
		fail(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func fail(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// cli wires the subcommands to the API client and the token store.
type cli struct {
	client *client
	store  *credentialStore
	in     *bufio.Reader
	out    io.Writer
	prompt func(w io.Writer) (string, error)
}

func (a *cli) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return a.signup(ctx)
	case "login":
		return a.login(ctx)
	case "logout":
		return a.logout()
	case "list":
		return a.list(ctx)
	case "add":
		return a.add(ctx, strings.Join(args, " "))
	case "done":
		return a.setCompleted(ctx, args, true)
	case "undo":
		return a.setCompleted(ctx, args, false)
	case "rm":
		return a.remove(ctx, args)
	default:
		printUsage(a.out)

		return errors.Errorf("unknown subcommand %q", command)
	}
}

func (a *cli) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)

	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}

func (a *cli) signup(ctx context.Context) error {
	email, err := a.readLine("Email: ")
	if err != nil {
		return err
	}
	name, err := a.readLine("Name: ")
	if err != nil {
		return err
	}
	password, err := a.prompt(a.out)
	if err != nil {
		return err
	}

	out, err := a.client.Signup(ctx, email, password, name)
	if err != nil {
		return err
	}

	return a.saveToken(out)
}

func (a *cli) login(ctx context.Context) error {
	email, err := a.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := a.prompt(a.out)
	if err != nil {
		return err
	}

	out, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	return a.saveToken(out)
}

func (a *cli) saveToken(out *authResult) error {
	if err := a.store.Save(out.Token); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(a.out, "Logged in as %s\n", out.Email)

	return nil
}

func (a *cli) logout() error {
	if err := a.store.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out")

	return nil
}

func (a *cli) token() (string, error) {
	token, err := a.store.Load()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", errors.New("not logged in; run 'todo-cli login' first")
	}

	return token, nil
}

func (a *cli) list(ctx context.Context) error {
	token, err := a.token()
	if err != nil {
		return err
	}

	todos, err := a.client.ListTodos(ctx, token)
	if err != nil {
		return err
	}

	if len(todos) == 0 {
		fmt.Fprintln(a.out, "No todos yet")

		return nil
	}

	done := color.New(color.FgGreen)
	open := color.New(color.FgCyan)
	age := color.New(color.Faint)
	now := time.Now()
	for _, t := range todos {
		if t.Completed {
			done.Fprintf(a.out, "[x] %s  %s", t.ID, t.Title)
		} else {
			open.Fprintf(a.out, "[ ] %s  %s", t.ID, t.Title)
		}
		age.Fprintf(a.out, "  (%s)\n", util.FormatAge(now, t.CreatedAt))
	}

	return nil
}

func (a *cli) add(ctx context.Context, title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("usage: todo-cli add <title>")
	}

	token, err := a.token()
	if err != nil {
		return err
	}

	t, err := a.client.CreateTodo(ctx, token, title)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(a.out, "Added %s\n", t.ID)

	return nil
}

func (a *cli) setCompleted(ctx context.Context, args []string, completed bool) error {
	if len(args) != 1 {
		return errors.New("usage: todo-cli done|undo <id>")
	}

	token, err := a.token()
	if err != nil {
		return err
	}

	t, err := a.client.SetCompleted(ctx, token, args[0], completed)
	if err != nil {
		return err
	}

	state := "open"
	if t.Completed {
		state = "done"
	}
	fmt.Fprintf(a.out, "%s is now %s\n", t.ID, state)

	return nil
}

func (a *cli) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: todo-cli rm <id>")
	}

	token, err := a.token()
	if err != nil {
		return err
	}

	if err := a.client.DeleteTodo(ctx, token, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %s\n", args[0])

	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: todo-cli <command> [-server URL] [args]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  signup        Create an account and log in")
	fmt.Fprintln(w, "  login         Log in and store the token")
	fmt.Fprintln(w, "  logout        Forget the stored token")
	fmt.Fprintln(w, "  list          List todos")
	fmt.Fprintln(w, "  add <title>   Add a todo")
	fmt.Fprintln(w, "  done <id>     Mark a todo as completed")
	fmt.Fprintln(w, "  undo <id>     Mark a todo as not completed")
	fmt.Fprintln(w, "  rm <id>       Delete a todo")
}
