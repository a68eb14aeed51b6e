package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-courier/logr"
	"github.com/pkg/errors"

	testingx "github.com/octohelm/x/testing"

	"github.com/octohelm/textx/internal/logging"
)

func TestText(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	l := logging.Text(buf, slog.LevelInfo)

	l.WithValues("kind", "plural").Info("registered %d rules", 3)
	l.Debug("hidden")
	l.Warn(errors.New("bad rule"))

	out := buf.String()

	testingx.Expect(t, strings.Contains(out, "registered 3 rules"), testingx.Be(true))
	testingx.Expect(t, strings.Contains(out, "kind=plural"), testingx.Be(true))
	testingx.Expect(t, strings.Contains(out, "hidden"), testingx.Be(false))
	testingx.Expect(t, strings.Contains(out, "bad rule"), testingx.Be(true))
}

func TestStartSpans(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	l := logging.Text(buf, slog.LevelDebug)

	ctx, ll := l.Start(context.Background(), "load", "path", "rules.yaml")
	ll.End()

	out := buf.String()

	testingx.Expect(t, strings.Contains(out, "span=load"), testingx.Be(true))
	testingx.Expect(t, strings.Contains(out, "path=rules.yaml"), testingx.Be(true))
	testingx.Expect(t, strings.Contains(out, "cost="), testingx.Be(true))

	t.Run("span logger is carried by the context", func(t *testing.T) {
		buf.Reset()

		_, nested := logr.FromContext(ctx).Start(ctx, "parse")
		nested.Info("parsed")

		testingx.Expect(t, strings.Contains(buf.String(), "load parse"), testingx.Be(true))
		testingx.Expect(t, strings.Contains(buf.String(), "path=rules.yaml"), testingx.Be(true))
	})
}

func TestDiscard(t *testing.T) {
	l := logging.Discard()
	l.Info("nothing")
	l.Error(errors.New("nothing"))
}
