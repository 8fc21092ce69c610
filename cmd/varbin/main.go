package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"xdao.co/varbin/evalrpc"
	"xdao.co/varbin/function"
	"xdao.co/varbin/model"
	"xdao.co/varbin/varbin"
)

// stdin is swapped out by tests.
var stdin io.Reader = os.Stdin

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "list":
		return cmdList(args[1:], out, errOut)
	case "eval":
		return cmdEval(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "varbin: varbinary codec and digest functions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  varbin list [--category <c> ...] [--json]")
	fmt.Fprintln(w, "  varbin eval <function> (--hex <H> | --text <S> | --int <N> | --file <path> | --stdin) [--type <t>] [--raw] [--json] [--remote <host:port>] [--timeout <d>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - categories: length, codec, integer, digest, contentid, all")
	fmt.Fprintln(w, "  - types: varbinary, varchar, bigint, integer")
	fmt.Fprintln(w, "  - --hex, --file and --stdin default to varbinary; --text to varchar; --int to bigint")
	fmt.Fprintln(w, "  - varbinary results print as uppercase hex unless --raw is given")
	fmt.Fprintln(w, "  - --remote evaluates through a varbind daemon")
	fmt.Fprintln(w, "  - exit status: 0 ok, 1 evaluation failed, 2 usage error")
}

func cmdList(args []string, out io.Writer, errOut io.Writer) int {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	categories := fs.StringSlice("category", nil, "Restrict to category (repeatable)")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: varbin list [--category <c> ...] [--json]")
		return 2
	}
	cat, err := function.ParseCategories(*categories)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	infos := model.ListFunctions(function.Default(), cat)
	if *asJSON {
		return writeJSON(out, errOut, infos)
	}
	for _, fn := range infos {
		_, _ = fmt.Fprintf(out, "%-40s %-10s %s\n", fn.Signature, fn.Category, fn.Description)
	}
	return 0
}

type evalFlags struct {
	hexIn    string
	textIn   string
	intIn    int64
	file     string
	useStdin bool
	typ      string
	raw      bool
	asJSON   bool
	remote   string
	timeout  time.Duration
}

func cmdEval(args []string, out io.Writer, errOut io.Writer) int {
	fs := pflag.NewFlagSet("eval", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	var f evalFlags
	fs.StringVar(&f.hexIn, "hex", "", "Argument bytes as hex")
	fs.StringVar(&f.textIn, "text", "", "Argument as text")
	fs.Int64Var(&f.intIn, "int", 0, "Argument as an integer")
	fs.StringVar(&f.file, "file", "", "Read argument bytes from file")
	fs.BoolVar(&f.useStdin, "stdin", false, "Read argument bytes from stdin")
	fs.StringVar(&f.typ, "type", "", "Argument type (varbinary|varchar|bigint|integer)")
	fs.BoolVar(&f.raw, "raw", false, "Write varbinary results as raw bytes")
	fs.BoolVar(&f.asJSON, "json", false, "Print the result (or error) as JSON")
	fs.StringVar(&f.remote, "remote", "", "Evaluate via varbind at host:port")
	fs.DurationVar(&f.timeout, "timeout", 10*time.Second, "Remote call timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: varbin eval <function> (--hex <H> | --text <S> | --int <N> | --file <path> | --stdin) [flags]")
		return 2
	}
	if f.raw && f.asJSON {
		fmt.Fprintln(errOut, "--raw and --json are mutually exclusive")
		return 2
	}
	name := fs.Arg(0)

	arg, err := readArg(fs, f)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	result, err := evaluate(name, arg, f)
	if err != nil {
		if f.asJSON {
			_ = writeJSON(errOut, errOut, model.ErrorFrom(err))
			return 1
		}
		fmt.Fprintf(errOut, "%s: %v\n", name, err)
		return 1
	}

	switch {
	case f.asJSON:
		s, _ := function.Default().Lookup(name, arg.Type)
		return writeJSON(out, errOut, model.EvalResponse{
			Function:  name,
			Signature: s.Signature(),
			Result:    model.FromValue(result),
		})
	case f.raw && (result.Type == function.TypeVarbinary || result.Type == function.TypeVarchar):
		_, _ = out.Write(result.Bytes)
	default:
		_, _ = fmt.Fprintln(out, result.String())
	}
	return 0
}

// readArg builds the argument from exactly one input flag and an optional
// --type override.
func readArg(fs *pflag.FlagSet, f evalFlags) (function.Value, error) {
	var sources []string
	for _, n := range []string{"hex", "text", "int", "file", "stdin"} {
		if fs.Changed(n) {
			sources = append(sources, n)
		}
	}
	if len(sources) != 1 {
		return function.Value{}, errors.New("exactly one of --hex, --text, --int, --file, --stdin is required")
	}

	var (
		b   []byte
		typ function.Type
		err error
	)
	switch sources[0] {
	case "hex":
		typ = function.TypeVarbinary
		if b, err = varbin.FromHex([]byte(f.hexIn)); err != nil {
			return function.Value{}, fmt.Errorf("--hex: %w", err)
		}
	case "text":
		typ = function.TypeVarchar
		b = []byte(f.textIn)
	case "file":
		typ = function.TypeVarbinary
		if b, err = os.ReadFile(f.file); err != nil {
			return function.Value{}, err
		}
	case "stdin":
		typ = function.TypeVarbinary
		if b, err = io.ReadAll(stdin); err != nil {
			return function.Value{}, err
		}
	case "int":
		typ = function.TypeBigint
	}

	if f.typ != "" {
		if typ, err = function.ParseType(f.typ); err != nil {
			return function.Value{}, err
		}
	}

	isInt := sources[0] == "int"
	switch {
	case typ.IsInteger() != isInt:
		return function.Value{}, fmt.Errorf("--type %s cannot be used with --%s", typ, sources[0])
	case typ == function.TypeInteger:
		if f.intIn < -1<<31 || f.intIn > 1<<31-1 {
			return function.Value{}, fmt.Errorf("--int %d out of 32-bit range", f.intIn)
		}
		return function.Integer(int32(f.intIn)), nil
	case typ == function.TypeBigint:
		return function.Bigint(f.intIn), nil
	default:
		return function.Value{Type: typ, Bytes: b}, nil
	}
}

func evaluate(name string, arg function.Value, f evalFlags) (function.Value, error) {
	if f.remote == "" {
		return function.Invoke(name, arg)
	}
	client, err := evalrpc.Dial(f.remote, evalrpc.DialOptions{Timeout: f.timeout})
	if err != nil {
		return function.Value{}, err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()
	return client.Eval(ctx, name, arg)
}

func writeJSON(out io.Writer, errOut io.Writer, v any) int {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(errOut, "encode json: %v\n", err)
		return 1
	}
	_, _ = out.Write(append(b, '\n'))
	return 0
}
