// demo is a small paint program. Hold the left button to draw, scroll to
// change the brush and press p or o to repaint the box.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/avada"
	"git.sr.ht/~rockorager/avada/log"
)

var logger *slog.Logger

func main() {
	imagePath := flag.String("image", "", "show an image below the box")
	verbose := flag.Bool("v", false, "log at trace level")
	flag.Parse()

	// The terminal owns stdout until Close, logs are printed afterwards
	logBuf := bytes.NewBuffer(nil)
	level := log.LevelDebug
	if *verbose {
		level = log.LevelTrace
	}
	logger = slog.New(tint.NewHandler(logBuf, &tint.Options{
		AddSource:  true,
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))
	err := run(*imagePath)
	io.Copy(os.Stderr, logBuf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(imagePath string) error {
	logger.Info("start")
	vt, err := avada.New(avada.Options{Logger: logger})
	if err != nil {
		return err
	}
	defer vt.Close()

	p, err := newPainter(vt)
	if err != nil {
		return err
	}
	if imagePath != "" {
		if err := p.loadImage(imagePath); err != nil {
			return err
		}
	}
	p.scene('@')
	if err := p.render(); err != nil {
		return err
	}

	for !p.quit {
		ev, err := vt.Poll(time.Second)
		var malformed *avada.MalformedInputError
		switch {
		case errors.As(err, &malformed):
			logger.Debug("unparsed input", "error", err)
			continue
		case errors.Is(err, io.EOF):
			logger.Info("hangup")
			return nil
		case err != nil:
			return err
		}
		if err := p.update(ev); err != nil {
			return err
		}
	}
	logger.Info("nice exit")
	return nil
}
