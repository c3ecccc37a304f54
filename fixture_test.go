// fixture_test.go: end-to-end script fixtures
//
// Each testdata/*.yaml file holds a list of cases: a source program plus
// either the expected stdout or a fragment of the expected error. Running
// them through the full lex → parse → run pipeline keeps the three stages
// honest against each other without hand-building tokens or trees.
package interpreter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type fixtureCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

func loadFixtures(t *testing.T, path string) []fixtureCase {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read fixture %s: %v", path, err)
	}
	var cases []fixtureCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		t.Fatalf("cannot decode fixture %s: %v", path, err)
	}
	return cases
}

func Test_Fixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixture files found under testdata")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			for _, c := range loadFixtures(t, path) {
				t.Run(c.Name, func(t *testing.T) {
					ip, buf := newTestInterp()
					runErr := ip.RunSource(c.Source)

					if c.Error != "" {
						if runErr == nil {
							t.Fatalf("expected error containing %q, got none\noutput: %q", c.Error, buf.String())
						}
						if !strings.Contains(runErr.Error(), c.Error) {
							t.Fatalf("want error containing %q, got %q", c.Error, runErr.Error())
						}
						return
					}
					if runErr != nil {
						t.Fatalf("unexpected error: %v", runErr)
					}
					if buf.String() != c.Output {
						t.Fatalf("\nsource:\n%s\nwant output:\n%q\ngot output:\n%q", c.Source, c.Output, buf.String())
					}
				})
			}
		})
	}
}
