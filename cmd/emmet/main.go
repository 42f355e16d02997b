// Command emmet expands a markup or stylesheet abbreviation typed on the
// command line (or piped on stdin) to stdout, e.g.:
//
//	emmet 'ul>li.item$*3'
//	echo 'bd1-s#fc0' | emmet --type=stylesheet
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emmetio/py-emmet/pkg/emmet"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "emmet:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("emmet", flag.ContinueOnError)
	typeFlag := fs.String("type", "markup", "abbreviation type: markup | stylesheet")
	syntaxFlag := fs.String("syntax", "", "dialect, e.g. html, jsx, pug, haml, scss, stylus (default per type)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	abbreviation := strings.Join(fs.Args(), " ")
	if abbreviation == "" {
		data, err := io.ReadAll(bufio.NewReader(stdin))
		if err != nil {
			return err
		}
		abbreviation = strings.TrimSpace(string(data))
	}
	if abbreviation == "" {
		return fmt.Errorf("no abbreviation given (pass it as an argument or pipe it on stdin)")
	}

	t := emmet.TypeMarkup
	if *typeFlag == "stylesheet" {
		t = emmet.TypeStylesheet
	}

	out, err := emmet.Expand(abbreviation, emmet.Config{
		Type:   t,
		Syntax: emmet.Syntax(*syntaxFlag),
	}, emmet.Config{})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, out)
	return nil
}
