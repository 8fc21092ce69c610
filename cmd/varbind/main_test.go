package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_ListFunctions(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "varbind.yaml")
	if err := os.WriteFile(cfg, []byte("categories: [integer]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--config", cfg, "--list-functions"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("code=%d err=%q", code, errOut.String())
	}
	want := strings.Join([]string{
		"/xdao.varbin.evalrpc.v1.Scalar/FromBigEndian32Varbinary\tfrom_big_endian_32(varbinary) -> integer",
		"/xdao.varbin.evalrpc.v1.Scalar/FromBigEndian64Varbinary\tfrom_big_endian_64(varbinary) -> bigint",
		"/xdao.varbin.evalrpc.v1.Scalar/ToBigEndian32Integer\tto_big_endian_32(integer) -> varbinary",
		"/xdao.varbin.evalrpc.v1.Scalar/ToBigEndian64Bigint\tto_big_endian_64(bigint) -> varbinary",
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRun_BadConfig(t *testing.T) {
	cases := [][]string{
		{"--config", filepath.Join(t.TempDir(), "missing.json")},
		{"--log-level", "loud", "--list-functions"},
		{"--max-msg-bytes", "-1", "--list-functions"},
		{"--bogus"},
	}
	for _, args := range cases {
		var out, errOut bytes.Buffer
		if code := run(context.Background(), args, &out, &errOut); code != 2 {
			t.Fatalf("%v: code=%d", args, code)
		}
	}
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	code := run(ctx, []string{"--listen", "127.0.0.1:0"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("code=%d err=%q", code, errOut.String())
	}
	if !strings.Contains(errOut.String(), `"msg":"varbind listening"`) {
		t.Fatalf("missing listen log: %q", errOut.String())
	}
}
