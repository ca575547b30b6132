// Command md4sum reads one line of UTF-8 text from standard input and
// prints its MD4 digest as a lowercase hex string.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"jayconrod.com/md4"
)

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:  "md4sum",
		Usage: "print the MD4 digest of one line read from standard input",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "keep-newline",
				Aliases: []string{"n"},
				Usage:   "hash the line terminator too instead of stripping it",
			},
		},
		Action: func(c *cli.Context) error {
			if err := run(in, out, c.Bool("keep-newline")); err != nil {
				return cli.Exit(fmt.Sprintf("md4sum: %v", err), 1)
			}
			return nil
		},
	}
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "md4sum:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, keepNewline bool) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if !keepNewline {
		line = strings.TrimRight(line, "\r\n")
	}
	if !utf8.ValidString(line) {
		return errors.New("input is not valid UTF-8")
	}
	fmt.Fprintln(out, md4.HexSum([]byte(line)))
	return nil
}
