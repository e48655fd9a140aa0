package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("moodymap %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestRecordThenGet(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MOODYMAP_PATH", dir)
	t.Setenv("MOODYMAP_CONFIG_PATH", dir)

	out := run(t, "record", "--on", "2020-1-2", "--mood", "72.4", "--json", "long", "walk")
	var recorded struct {
		Date string `json:"date"`
		Mood int    `json:"mood"`
		Note string `json:"note"`
	}
	if err := json.Unmarshal([]byte(out), &recorded); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if recorded.Date != "2020-01-02" || recorded.Mood != 72 || recorded.Note != "long walk" {
		t.Fatalf("unexpected record output %+v", recorded)
	}

	out = run(t, "get", "--on", "2020-01-02", "--json")
	if !strings.Contains(out, `"note": "long walk"`) {
		t.Fatalf("expected stored entry, got:\n%s", out)
	}

	out = run(t, "summary", "--month", "2020-01", "--json")
	if !strings.Contains(out, `"totalDays": 1`) || !strings.Contains(out, `"averageMood": 72`) {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestRecordRequiresMood(t *testing.T) {
	t.Setenv("MOODYMAP_PATH", t.TempDir())

	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"record", "--note", "no score"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected missing --mood to fail")
	}
}

func TestCommandsRegistered(t *testing.T) {
	root := New()
	for _, name := range []string{"record", "get", "show", "summary", "ui", "mcp", "key", "info", "version", "completion"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Fatalf("expected %s command", name)
		}
	}
}
