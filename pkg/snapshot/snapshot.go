// Package snapshot compares test objects against JSON fixtures in the
// package's testdata directory. A missing fixture is written on first run and
// should be reviewed and committed.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// calls counts fixture lookups per test function so a test can validate more
// than one snapshot
var calls = make(map[string]int)

// ValidateSnapshot asserts that obj matches the calling test's stored
// fixture. depth is how many frames sit between the test function and this
// call.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	pc, _, _, _ := runtime.Caller(1 + depth)
	name := filepath.Base(runtime.FuncForPC(pc).Name())

	n := calls[name]
	calls[name] = n + 1

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, n))

	actual, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal snapshot object: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			t.Fatalf("could not read snapshot %s: %v", filename, err)
		}

		logrus.WithField("filename", filename).Info("writing snapshot file")
		if err := os.WriteFile(filename, append(actual, '\n'), 0644); err != nil {
			t.Fatalf("could not write snapshot %s: %v", filename, err)
		}

		return
	}

	if !assert.Equal(t, strings.TrimRight(string(expects), "\n"), string(actual), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}
