package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	calls []string
	args  [][]string
}

func (s *stubExec) List(context.Context) error { s.calls = append(s.calls, "list"); return nil }
func (s *stubExec) Add(context.Context) error  { s.calls = append(s.calls, "add"); return nil }
func (s *stubExec) Get(_ context.Context, args []string) error {
	s.calls = append(s.calls, "get")
	s.args = append(s.args, args)
	return nil
}
func (s *stubExec) Delete(_ context.Context, args []string) error {
	s.calls = append(s.calls, "delete")
	s.args = append(s.args, args)
	return nil
}

func TestRunREPL_Dispatch(t *testing.T) {
	in := "help\n\nlist\nl\nadd\nget 3\ndelete 4\nrm 5\nbogus\nexit\nlist\n"
	s := &stubExec{}
	var out bytes.Buffer

	runREPL(context.Background(), s, bufio.NewReader(strings.NewReader(in)), &out, false)

	assert.Equal(t, []string{"list", "list", "add", "get", "delete", "delete"}, s.calls)
	assert.Equal(t, [][]string{{"3"}, {"4"}, {"5"}}, s.args)
	assert.Contains(t, out.String(), "Available commands")
	assert.Contains(t, out.String(), "Unknown command: bogus")
	assert.Contains(t, out.String(), "Bye!")
	assert.NotContains(t, out.String(), "members> ")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	s := &stubExec{}
	var out bytes.Buffer

	runREPL(context.Background(), s, bufio.NewReader(strings.NewReader("list")), &out, true)

	assert.Equal(t, []string{"list"}, s.calls)
	assert.Equal(t, 2, strings.Count(out.String(), "members> "))
}
