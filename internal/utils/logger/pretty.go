package logger

import (
	"context"
	"encoding/json"
	"io"
	stdLog "log"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"
)

type PrettyHandlerOptions struct {
	SlogOpts *slog.HandlerOptions
	NoColor  bool
}

// PrettyHandler prints one colored line per record with the attributes as
// indented JSON. Level filtering is delegated to the wrapped JSON handler.
type PrettyHandler struct {
	slog.Handler
	l       *stdLog.Logger
	attrs   []slog.Attr
	// group is the dotted prefix of the open groups, e.g. "request.".
	group   string
	noColor bool
}

func (opts PrettyHandlerOptions) NewPrettyHandler(out io.Writer) *PrettyHandler {
	return &PrettyHandler{
		Handler: slog.NewJSONHandler(out, opts.SlogOpts),
		l:       stdLog.New(out, "", 0),
		noColor: opts.NoColor,
	}
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	paint := func(c *color.Color, s string) string {
		if h.noColor {
			return s
		}
		return c.Sprint(s)
	}

	level := r.Level.String() + ":"
	switch r.Level {
	case slog.LevelDebug:
		level = paint(color.New(color.FgMagenta), level)
	case slog.LevelInfo:
		level = paint(color.New(color.FgBlue), level)
	case slog.LevelWarn:
		level = paint(color.New(color.FgYellow), level)
	case slog.LevelError:
		level = paint(color.New(color.FgRed), level)
	}

	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		addField(fields, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addField(fields, h.group, a)
		return true
	})

	var b []byte
	if len(fields) > 0 {
		var err error
		b, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	msg := paint(color.New(color.FgCyan), r.Message)

	h.l.Println(timeStr, level, msg, paint(color.New(color.FgWhite), string(b)))

	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: h.group + a.Key, Value: a.Value})
	}

	return &PrettyHandler{
		Handler: h.Handler.WithAttrs(attrs),
		l:       h.l,
		attrs:   merged,
		group:   h.group,
		noColor: h.noColor,
	}
}

// WithGroup prefixes the keys of later attributes with name and a dot.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{
		Handler: h.Handler.WithGroup(name),
		l:       h.l,
		attrs:   h.attrs,
		group:   h.group + name + ".",
		noColor: h.noColor,
	}
}

func addField(fields map[string]any, prefix string, a slog.Attr) {
	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			addField(fields, sub, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	fields[prefix+a.Key] = attrValue(a)
}

func attrValue(a slog.Attr) any {
	v := a.Value.Resolve()
	if err, ok := v.Any().(error); ok {
		return err.Error()
	}
	return v.Any()
}
