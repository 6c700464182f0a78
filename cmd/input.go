package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/mcuc-cli/mcuc/argb"
	"github.com/mcuc-cli/mcuc/dominant"
	"github.com/mcuc-cli/mcuc/filesystem"
	"github.com/mcuc-cli/mcuc/format"
	"github.com/mcuc-cli/mcuc/log"
	"github.com/mcuc-cli/mcuc/scheme"
)

// ErrMissingInput is returned when a command needs a color and none was given.
var ErrMissingInput = errors.New("no input color or image provided")

// source describes where the seed color of a command comes from.
type source struct {
	input  string
	image  string
	random bool
}

func newRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>1))
}

// seed resolves the color of s. An image path wins over a random seed, which
// wins over the positional input. A positional input naming an existing file
// is treated as an image.
func (s source) seed() (argb.ARGB, error) {
	switch {
	case s.image != "":
		return fromImage(s.image)
	case s.random:
		c := scheme.Random(newRand())
		log.Infof("Generated random seed color: %s", c)
		return c, nil
	case s.input == "":
		return 0, ErrMissingInput
	}

	if exists, _ := filesystem.API().Exists(s.input); exists {
		return fromImage(s.input)
	}

	return argb.Parse(s.input)
}

func fromImage(path string) (argb.ARGB, error) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	log.Infof("Loading image: %s", path)
	c, err := dominant.FromFile(path)
	if err != nil {
		return 0, err
	}

	log.Infof("Dominant color: %s", c)
	return c, nil
}

// warnUnsupported logs the closest known syntax when output is the
// unknown-syntax sentinel.
func warnUnsupported(output, name string, among []format.Syntax) {
	if format.IsUnsupported(output) {
		log.Warnf("unknown format %q, did you mean %q?", name, format.Suggest(name, among))
	}
}

// emit writes text to path through the filesystem API, or to the command
// output when path is empty. Empty text is not printed.
func emit(out io.Writer, path, text, what string) error {
	if path == "" {
		log.Successf("%s output:", what)
		if text != "" {
			_, _ = fmt.Fprintln(out, text)
		}
		return nil
	}

	if err := filesystem.API().WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Successf("%s written to %s", what, path)
	return nil
}
