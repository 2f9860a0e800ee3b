package registry

import (
	"sort"
	"testing"

	"github.com/rayraychen2011/tui-breaker/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stubFactory(id, title string) Factory {
	return func() Game {
		return &stubGame{id: id, title: title}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", stubFactory("stub-a", "Stub A"))

	if !Exists("stub-a") {
		t.Fatal("registered game should exist")
	}

	g1, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g1.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected %q", g1.ID(), "stub-a")
	}

	g2, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g1 == g2 {
		t.Error("Create() should return a fresh instance each call")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
	if Exists("no-such-game") {
		t.Error("unknown id should not exist")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-z", stubFactory("stub-z", "Stub Z"))
	Register("stub-b", stubFactory("stub-b", "Stub B"))

	games := List()
	if !sort.SliceIsSorted(games, func(i, j int) bool { return games[i].ID < games[j].ID }) {
		t.Errorf("List() not sorted by id: %v", games)
	}

	titles := make(map[string]string, len(games))
	for _, g := range games {
		titles[g.ID] = g.Title
	}
	if titles["stub-z"] != "Stub Z" {
		t.Errorf("title for stub-z = %q, expected %q", titles["stub-z"], "Stub Z")
	}
	if titles["stub-b"] != "Stub B" {
		t.Errorf("title for stub-b = %q, expected %q", titles["stub-b"], "Stub B")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", stubFactory("stub-dup", "Stub"))
	Register("stub-dup", stubFactory("stub-dup", "Stub"))
}
