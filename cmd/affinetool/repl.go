package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/akeil/affinetool"
	"github.com/akeil/affinetool/pkg/render"
	"github.com/akeil/affinetool/pkg/shell"
)

// doRepl runs one session, handling the intents read from r line by line.
//
// Unknown intents are reported and skipped. Empty lines and lines starting
// with '#' are ignored. "quit" or EOF end the session.
func doRepl(s settings, r io.Reader, w io.Writer, out string) error {
	p, err := loadPolygon(s)
	if err != nil {
		return err
	}
	rc, err := renderContext(s)
	if err != nil {
		return err
	}

	var target shell.Target = &shell.Recorder{}
	if out != "" {
		_, err = render.FormatForPath(out)
		if err != nil {
			return err
		}
		target = render.NewImageTarget(rc, out)
	}

	sess, err := shell.NewSession(p, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "intents: %v\n", intentList())
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		i, err := sess.HandleName(line)
		if affinetool.IsValidationError(err) {
			fmt.Fprintf(w, "%v %v\n", crossmark, err)
			continue
		} else if err != nil {
			return err
		}

		fmt.Fprintf(w, "%v %v\n", checkmark, i)
		err = printVertices(w, sess.Current(), "text")
		if err != nil {
			return err
		}
	}

	return scanner.Err()
}

func intentList() string {
	names := make([]string, 0)
	for _, i := range affinetool.Intents() {
		names = append(names, i.String())
	}
	return strings.Join(names, ", ")
}
