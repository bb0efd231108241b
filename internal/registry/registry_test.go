package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

type stubGame struct {
	id    string
	title string
	best  int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) SetHighScore(score int)               { g.best = score }

func registerStub(t *testing.T, id, title string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id, title: title} })
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	registerStub(t, "zz_test", "Test Game")

	if !Exists("zz_test") {
		t.Fatal("Exists should report a registered id")
	}

	g, err := Create("zz_test")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if g.ID() != "zz_test" || g.Title() != "Test Game" {
		t.Errorf("Create returned %q/%q", g.ID(), g.Title())
	}
	if Title("zz_test") != "Test Game" {
		t.Errorf("Title() = %q", Title("zz_test"))
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) error = %v, expected ErrUnknownGame", err)
	}
	if Title("does_not_exist") != "does_not_exist" {
		t.Error("Title of an unknown id should fall back to the id")
	}
}

func TestListSorted(t *testing.T) {
	registerStub(t, "zz_b", "B")
	registerStub(t, "zz_a", "A")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerStub(t, "zz_dup", "Dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestApplyHighScore(t *testing.T) {
	g := &stubGame{id: "x"}
	ApplyHighScore(g, 4200)
	if g.best != 4200 {
		t.Errorf("best = %d, expected 4200", g.best)
	}

	// Games without the interface are left alone
	ApplyHighScore(struct{ Game }{}, 10)
}
