package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const generatedBy = "lutrig/trig/internal/generator"

// widthSpec describes one concrete table type emitted from templates/table.go.tmpl.
type widthSpec struct {
	Name      string
	Bits      int
	Type      string
	AbsImport string
	AbsFunc   string
}

func main() {
	specs := []widthSpec{
		{Name: "Table32", Bits: 32, Type: "float32", AbsImport: "github.com/chewxy/math32", AbsFunc: "math32.Abs"},
		{Name: "Table64", Bits: 64, Type: "float64", AbsImport: "math", AbsFunc: "math.Abs"},
	}

	// go generate runs this from the trig package directory.
	tmpl := filepath.Join("internal", "generator", "templates", "table.go.tmpl")
	for _, spec := range specs {
		out := fmt.Sprintf("table_f%d.go", spec.Bits)
		assertNoError(bavard.GenerateFromFiles(out, []string{tmpl}, spec,
			bavard.Package("trig"),
			bavard.GeneratedBy(generatedBy),
		), "for %s", spec.Name)
	}

	runCmd("gofmt", "-w", ".")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 && contextAndArgs[0] != "" {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
