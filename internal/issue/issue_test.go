// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique and sequential
	ids := []Id{
		ConfigLoadFailedId,
		ProjectManifestNotFoundId,
		ExternalToolFailedId,
		ToolNotFoundId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}
}

func TestIssue_Id(t *testing.T) {
	issue := Get(ConfigLoadFailedId)
	if issue == nil {
		t.Fatal("Get(ConfigLoadFailedId) returned nil")
	}

	if issue.Id() != ConfigLoadFailedId {
		t.Errorf("issue.Id() = %d, want %d", issue.Id(), ConfigLoadFailedId)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(ProjectManifestNotFoundId)
	if issue == nil {
		t.Fatal("Get(ProjectManifestNotFoundId) returned nil")
	}

	msg := issue.MarkdownMsg()
	if msg == "" {
		t.Error("MarkdownMsg() returned empty string")
	}

	if !strings.Contains(string(msg), "No project manifest found") {
		t.Error("MarkdownMsg() should contain 'No project manifest found'")
	}
}

func TestGet_UnknownId(t *testing.T) {
	if got := Get(Id(9999)); got != nil {
		t.Errorf("Get(9999) = %v, want nil", got)
	}
}

func TestValues_CoversCatalog(t *testing.T) {
	values := Values()
	if len(values) != 4 {
		t.Errorf("Values() returned %d issues, want 4", len(values))
	}

	for _, issue := range values {
		if Get(issue.Id()) != issue {
			t.Errorf("catalog entry %d not reachable via Get", issue.Id())
		}
	}
}

func TestIssue_Render(t *testing.T) {
	// Stub the markdown renderer so the test does not depend on terminal
	// detection.
	orig := render
	render = func(in string, _ string) (string, error) { return in, nil }
	defer func() { render = orig }()

	issue := Get(ToolNotFoundId)
	out, err := issue.Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Platform tool not found") {
		t.Errorf("Render() output missing heading:\n%s", out)
	}
}
