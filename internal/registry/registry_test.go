package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/course-arcade/internal/core"
)

type stubGame struct {
	id      string
	opts    Options
	loads   int
	loadErr error
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Scene() core.Scene { return core.NewScene(1, 1) }
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Configure(opts Options) { g.opts = opts }

func (g *stubGame) Load() error {
	g.loads++
	return g.loadErr
}

func TestRegisterAndList(t *testing.T) {
	Register("stub-list", func() Game { return &stubGame{id: "stub-list"} })

	if !Exists("stub-list") {
		t.Fatal("registered game should exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-list" {
			found = true
			if info.Title != "Stub stub-list" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-list")
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

type lessonGame struct{ stubGame }

func (g *lessonGame) Lesson() string { return "Week 1" }

func TestListCarriesLesson(t *testing.T) {
	Register("stub-lesson", func() Game { return &lessonGame{stubGame{id: "stub-lesson"}} })

	for _, info := range List() {
		switch info.ID {
		case "stub-lesson":
			if info.Lesson != "Week 1" {
				t.Errorf("Lesson = %q, expected %q", info.Lesson, "Week 1")
			}
		case "stub-list":
			if info.Lesson != "" {
				t.Errorf("game without Describer has lesson %q", info.Lesson)
			}
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create error = %v, expected ErrUnknownGame", err)
	}
}

func TestPrepareConfiguresThenLoads(t *testing.T) {
	Register("stub-prepare", func() Game { return &stubGame{id: "stub-prepare"} })

	opts := Options{ConfigPath: "custom.yaml", Difficulty: "hard", AssetDir: "tex"}
	g, err := Prepare("stub-prepare", opts)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	stub := g.(*stubGame)
	if stub.opts != opts {
		t.Errorf("options = %+v, expected %+v", stub.opts, opts)
	}
	if stub.loads != 1 {
		t.Errorf("Load called %d times, expected 1", stub.loads)
	}
}

func TestPrepareLoadError(t *testing.T) {
	errBroken := errors.New("texture missing")
	Register("stub-broken", func() Game { return &stubGame{id: "stub-broken", loadErr: errBroken} })

	_, err := Prepare("stub-broken", Options{})
	if !errors.Is(err, errBroken) {
		t.Errorf("Prepare error = %v, expected to wrap %v", err, errBroken)
	}

	if _, err := Prepare("nope", Options{}); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Prepare unknown error = %v, expected ErrUnknownGame", err)
	}
}
