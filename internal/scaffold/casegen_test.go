package scaffold

import (
	"context"
	"strings"
	"testing"
)

// stubRemote is a scripted Remote for orchestration tests.
type stubRemote struct {
	body  string
	ok    bool
	calls int
}

func (s *stubRemote) Generate(ctx context.Context, c CaseContext) (string, bool) {
	s.calls++
	return s.body, s.ok
}

func TestBuildCaseWrapsDeclaration(t *testing.T) {
	e := New(nil)
	c := NewCaseContext("LoginForm", "Enter valid credentials", CategoryHappy)

	got := e.BuildCase(context.Background(), c, Options{})

	if !strings.HasPrefix(got, "it('enter valid credentials', () => {") {
		t.Errorf("declaration not named from description\nGot:\n%s", got)
	}
	if !strings.HasSuffix(got, "});") {
		t.Errorf("declaration not closed\nGot:\n%s", got)
	}
	if !strings.Contains(got, Sentinel) {
		t.Errorf("declaration missing sentinel\nGot:\n%s", got)
	}
}

func TestBuildCaseAsyncWhenBodyAwaits(t *testing.T) {
	e := New(&stubRemote{body: "await user.click(screen.getByRole('button'));", ok: true})
	c := NewCaseContext("Widget", "clicks the button", CategoryHappy)

	got := e.BuildCase(context.Background(), c, Options{UseRemote: true})

	if !strings.Contains(got, "async () => {") {
		t.Errorf("awaiting body should get an async callback\nGot:\n%s", got)
	}
}

func TestBuildCaseRemoteFirst(t *testing.T) {
	remote := &stubRemote{body: "expect(screen.getByText('hi')).toBeInTheDocument();", ok: true}
	e := New(remote)
	c := NewCaseContext("Widget", "shows a greeting", CategoryHappy)

	got := e.BuildCase(context.Background(), c, Options{UseRemote: true})

	if remote.calls != 1 {
		t.Fatalf("remote called %d times, want 1", remote.calls)
	}
	if !strings.Contains(got, "getByText('hi')") {
		t.Errorf("remote body not used\nGot:\n%s", got)
	}
	if strings.Contains(got, Sentinel) {
		t.Errorf("remote body should not carry the local sentinel\nGot:\n%s", got)
	}
}

func TestBuildCaseRemoteNotCalledWhenDisabled(t *testing.T) {
	remote := &stubRemote{body: "irrelevant", ok: true}
	e := New(remote)
	c := NewCaseContext("Widget", "shows a greeting", CategoryHappy)

	e.BuildCase(context.Background(), c, Options{UseRemote: false})

	if remote.calls != 0 {
		t.Errorf("remote called %d times with UseRemote=false, want 0", remote.calls)
	}
}

func TestBuildCaseFallbackMonotonicity(t *testing.T) {
	// A remote that returns absent must leave output byte-identical to
	// the local-only path, for both assistant modes.
	for _, assistant := range []bool{false, true} {
		failing := New(&stubRemote{ok: false})
		local := New(nil)
		c := NewCaseContext("Widget", "shows a greeting", CategoryHappy)

		withRemote := failing.BuildCase(context.Background(), c, Options{UseRemote: true, AssistantMode: assistant})
		withoutRemote := local.BuildCase(context.Background(), c, Options{UseRemote: false, AssistantMode: assistant})

		if withRemote != withoutRemote {
			t.Errorf("assistant=%v: fallback output differs from local-only output", assistant)
		}
	}
}

func TestBuildCaseAssistantMode(t *testing.T) {
	e := New(nil)
	c := NewCaseContext("Widget", "shows a greeting", CategoryHappy)

	got := e.BuildCase(context.Background(), c, Options{AssistantMode: true})

	if !strings.Contains(got, "// STEP 1: Arrange") {
		t.Errorf("assistant mode should produce step-by-step guidance\nGot:\n%s", got)
	}
}

func TestBuildCaseEscapesQuotesInName(t *testing.T) {
	e := New(&stubRemote{body: "expect(1).toBe(1);", ok: true})
	c := CaseContext{Subject: "Widget", Scenario: "x", Category: CategoryHappy, Description: "it's fine"}

	got := e.BuildCase(context.Background(), c, Options{UseRemote: true})

	if !strings.Contains(got, `it('it\'s fine'`) {
		t.Errorf("single quote in description not escaped\nGot:\n%s", got)
	}
}
