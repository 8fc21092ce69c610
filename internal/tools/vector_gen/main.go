// Command vector_gen recomputes the expected outcome of every vector in a
// conformance file using the default catalog and prints the result.
//
//	go run ./internal/tools/vector_gen > testdata/conformance/varbin/vectors.json.new
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"xdao.co/varbin/function"
	"xdao.co/varbin/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	fs := pflag.NewFlagSet("vector_gen", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	in := fs.String("in", filepath.Join("testdata", "conformance", "varbin", "vectors.json"), "vector file supplying the calls")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f, err := model.LoadVectors(*in)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	outFile, err := regenerate(f)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	b, err := json.MarshalIndent(outFile, "", "  ")
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	_, _ = out.Write(append(b, '\n'))
	return 0
}

func regenerate(f model.VectorFile) (model.VectorFile, error) {
	out := model.VectorFile{Version: f.Version, Vectors: make([]model.Vector, 0, len(f.Vectors))}
	for i, v := range f.Vectors {
		arg, err := v.Arg.Value()
		if err != nil {
			return out, fmt.Errorf("vector %d: %w", i, err)
		}
		vec, err := model.Outcome(function.Invoke, v.Function, arg)
		if err != nil {
			return out, fmt.Errorf("vector %d (%s): %w", i, v.Function, err)
		}
		out.Vectors = append(out.Vectors, vec)
	}
	return out, nil
}
