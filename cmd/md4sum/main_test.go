package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"jayconrod.com/md4"
)

func TestRun(t *testing.T) {
	for _, tt := range []struct {
		name        string
		in          string
		keepNewline bool
		want        string
	}{
		{"strips newline", "abc\n", false, "a448017aaf21d8525fc10ae87aa6729d"},
		{"strips crlf", "abc\r\n", false, "a448017aaf21d8525fc10ae87aa6729d"},
		{"no trailing newline", "abc", false, "a448017aaf21d8525fc10ae87aa6729d"},
		{"empty input", "", false, "31d6cfe0d16ae931b73c59d7e0c089c0"},
		{"keeps newline", "abc\n", true, md4.HexSum([]byte("abc\n"))},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(strings.NewReader(tt.in), &out, tt.keepNewline))
			require.Equal(t, tt.want+"\n", out.String())
		})
	}
}

func TestRunRejectsInvalidUTF8(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("\xff\xfe\n"), &out, false)
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestAppKeepNewlineAlias(t *testing.T) {
	var out bytes.Buffer
	app := newApp(strings.NewReader("abc\n"), &out)
	require.NoError(t, app.Run([]string{"md4sum", "-n"}))
	require.Equal(t, md4.HexSum([]byte("abc\n"))+"\n", out.String())
}

func TestAppInvalidInputExitCode(t *testing.T) {
	origExiter := cli.OsExiter
	defer func() { cli.OsExiter = origExiter }()
	var code int
	cli.OsExiter = func(c int) { code = c }

	var out bytes.Buffer
	app := newApp(strings.NewReader("\xff\xfe\n"), &out)
	app.ErrWriter = io.Discard

	err := app.Run([]string{"md4sum"})
	require.Error(t, err)
	require.Equal(t, 1, code)
	require.Empty(t, out.String())
}
