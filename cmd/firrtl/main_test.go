// cmd/firrtl/main_test.go
package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript re-exec the test binary as the `firrtl`
// command for each script, the standard rogpeppe/go-internal
// pattern for CLI golden tests.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"firrtl": func() int { return run(os.Args[1:]) },
	}))
}

func TestCLIScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
