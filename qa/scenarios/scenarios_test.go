package scenarios

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScenario(t *testing.T) {
	files, err := filepath.Glob("*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no scenario files")
	}
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		t.Run(sc.Name, func(t *testing.T) {
			RunScenario(t, sc)
		})
	}
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmp, err := os.CreateTemp(t.TempDir(), "sc*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}
	return tmp.Name()
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load("no-file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeTemp(t, ":")); err == nil {
		t.Fatal("expected unmarshal error")
	}
	cases := map[string]string{
		"no name":         "shift_length: 2\nunits: [1, 1]\n",
		"zero length":     "name: x\nshift_length: 0\nunits: [1, 1]\n",
		"negative unit":   "name: x\nshift_length: 2\nunits: [1, -1]\n",
		"negative expect": "name: x\nshift_length: 2\nunits: [1, 1]\nexpected: {shifts: -1}\n",
	}
	for name, body := range cases {
		if _, err := Load(writeTemp(t, body)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestInstanceIsACopy(t *testing.T) {
	sc := Scenario{Name: "x", ShiftLength: 1, Units: []int{1, 2}}
	u := sc.Instance()
	u[0] = 9
	if sc.Units[0] != 1 {
		t.Fatal("instance shares storage with the scenario")
	}
}
