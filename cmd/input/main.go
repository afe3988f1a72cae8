// input shows every event received from the terminal. Press Ctrl+C to exit
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/avada"
	"git.sr.ht/~rockorager/avada/log"
)

func main() {
	logBuf := bytes.NewBuffer(nil)
	logger := slog.New(tint.NewHandler(logBuf, &tint.Options{
		Level:      log.LevelTrace,
		TimeFormat: "15:04:05.000",
	}))
	err := run(logger)
	io.Copy(os.Stderr, logBuf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	vt, err := avada.New(avada.Options{Logger: logger})
	if err != nil {
		return err
	}
	defer vt.Close()
	rows, cols, err := vt.Size()
	if err != nil {
		return err
	}
	fb := avada.NewFrameBuffer(rows, cols)

	var lines []string
	draw := func() error {
		fb.Clear()
		fb.Print(0, 0, "Ctrl+C to exit", avada.Default, avada.Default, avada.AttrItalic)
		rows, _ := fb.Size()
		// Newest last, as many as fit under the title
		if keep := rows - 1; len(lines) > keep && keep >= 0 {
			lines = lines[len(lines)-keep:]
		}
		for i, line := range lines {
			fb.Print(i+1, 0, line, avada.Default, avada.Default, avada.AttrNone)
		}
		return vt.Render(fb)
	}
	if err := draw(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for ev := range vt.Events(ctx) {
		logger.Info("event", "type", fmt.Sprintf("%T", ev), "value", ev)
		switch ev := ev.(type) {
		case avada.Key:
			if ev.Matches('c', avada.ModCtrl) {
				return nil
			}
			lines = append(lines, "Key "+ev.String())
		case avada.Mouse:
			lines = append(lines, "Mouse "+ev.String())
		case avada.Resize:
			fb.Resize(ev.Rows, ev.Cols)
			lines = append(lines, fmt.Sprintf("Resize %dx%d", ev.Cols, ev.Rows))
		}
		if err := draw(); err != nil {
			return err
		}
	}
	return nil
}
