package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"taskman/internal/cli"
	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/testutil"
)

// runMenu runs the default menu against svc with scripted answers.
func runMenu(t *testing.T, ctx context.Context, svc *testutil.FakeService, answers ...string) (stdout, stderr string, code int) {
	t.Helper()

	cfg := &config.Config{Dir: t.TempDir()}
	menu := cli.NewMenu(commands.DefaultRegistry, cfg, svc, nil)

	var outBuf, errBuf bytes.Buffer
	code = menu.Run(ctx, testutil.NewScriptedPrompter(answers...), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestMenu_Exit(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runMenu(t, context.Background(), svc, "8")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{
		"Welcome to Task Manager!",
		"TASK MANAGER\n",
		"1. Add a new task\n",
		"5. Clear completed tasks\n",
		"8. Exit\n",
		"Thank you for using Task Manager! Goodbye!\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestMenu_AddThenList(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runMenu(t, context.Background(), svc, "1", "Buy milk", "LIST", "q")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "✓ Task added: [1] Buy milk\n") {
		t.Errorf("expected add confirmation in output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "○ [1] Buy milk\n") {
		t.Errorf("expected task listing in output:\n%s", stdout)
	}
	if len(svc.Tasks()) != 1 {
		t.Errorf("expected 1 task, got %d", len(svc.Tasks()))
	}
}

func TestMenu_InvalidChoice(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runMenu(t, context.Background(), svc, "9", "  ", "exit")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	msg := "Invalid choice. Please enter a number between 1 and 8.\n"
	if n := strings.Count(stdout, msg); n != 2 {
		t.Errorf("expected invalid choice message twice, got %d:\n%s", n, stdout)
	}
}

func TestMenu_UserErrorContinues(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runMenu(t, context.Background(), svc, "1", "", "3", "8")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "error: task description cannot be empty\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if !strings.Contains(stdout, "No tasks found. Add some tasks to get started!") {
		t.Errorf("expected list after error in output:\n%s", stdout)
	}
}

func TestMenu_InputEnds(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runMenu(t, context.Background(), svc, "2")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.HasSuffix(stdout, "Exiting Task Manager. Goodbye!\n") {
		t.Errorf("expected goodbye at end of output:\n%s", stdout)
	}
}

func TestMenu_InputEndsMidCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)

	stdout, _, code := runMenu(t, context.Background(), svc, "delete", "1")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.HasSuffix(stdout, "Exiting Task Manager. Goodbye!\n") {
		t.Errorf("expected goodbye at end of output:\n%s", stdout)
	}
	if len(svc.Tasks()) != 1 {
		t.Error("expected task to remain")
	}
}

func TestMenu_StorageErrorAborts(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddErr = fmt.Errorf("%w: rename tasks.json: read-only file system", service.ErrStorage)

	stdout, stderr, code := runMenu(t, context.Background(), svc, "1", "Buy milk", "8")

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if !strings.HasPrefix(stderr, "error: storage error: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if strings.Contains(stdout, "Goodbye") {
		t.Errorf("expected no goodbye after storage failure:\n%s", stdout)
	}
}

func TestMenu_CancelledContext(t *testing.T) {
	svc := testutil.NewFakeService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &config.Config{Dir: t.TempDir()}
	menu := cli.NewMenu(commands.DefaultRegistry, cfg, svc, nil)
	in := testutil.NewScriptedPrompter("1", "never read")

	var stdout bytes.Buffer
	code := menu.Run(ctx, in, &stdout, io.Discard)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if len(in.Labels) != 0 {
		t.Errorf("expected no prompts, got %q", in.Labels)
	}
}

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := cli.NewLinePrompter(strings.NewReader("first\r\nsecond"), &out)

	got, err := p.Prompt("a: ")
	if err != nil || got != "first" {
		t.Errorf("expected \"first\", got %q (err %v)", got, err)
	}
	got, err = p.Prompt("b: ")
	if err != nil || got != "second" {
		t.Errorf("expected \"second\", got %q (err %v)", got, err)
	}
	if _, err = p.Prompt("c: "); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if out.String() != "a: b: c: " {
		t.Errorf("expected labels written in order, got %q", out.String())
	}
}
