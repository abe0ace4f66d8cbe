package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls  []string
	bookID string

	askErr error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Ask(ctx context.Context) error {
	f.calls = append(f.calls, "ask")
	return f.askErr
}
func (f *fakeExec) Search(ctx context.Context) error {
	f.calls = append(f.calls, "search")
	return nil
}
func (f *fakeExec) Book(ctx context.Context, flightID string) error {
	f.calls = append(f.calls, "book")
	f.bookID = flightID
	return nil
}
func (f *fakeExec) MyFlights(ctx context.Context) error {
	f.calls = append(f.calls, "flights")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"ask",
		"search",
		"book 42",
		"flights",
		"whoami",
		"logout",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "ask", "search", "book", "flights", "whoami", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.bookID != "42" {
		t.Fatalf("book arg not passed: %q", exec.bookID)
	}
}

func TestRunREPL_BookWithoutArgumentPrintsUsage(t *testing.T) {
	var lines []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("book\nexit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("book must not be dispatched without an id: %v", exec.calls)
	}
	found := false
	for _, l := range lines {
		if strings.Contains(l, "Usage: book <flight-id>") {
			found = true
		}
	}
	if !found {
		t.Fatalf("usage line not printed, got: %v", lines)
	}
}

func TestRunREPL_HandlerErrorIsSurfacedAndLoopContinues(t *testing.T) {
	var lines []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{loggedIn: true, askErr: errors.New("missing token")}
	input := strings.NewReader("ask\nwhoami\nexit\n")

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	errFound := false
	for _, l := range lines {
		if strings.Contains(l, "Error: missing token") {
			errFound = true
		}
	}
	if !errFound {
		t.Fatalf("handler error not surfaced, got: %v", lines)
	}
	// the loop kept going after the failed command
	if got := exec.calls[len(exec.calls)-1]; got != "whoami" {
		t.Fatalf("loop did not continue after error, calls: %v", exec.calls)
	}
}
