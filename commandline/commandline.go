// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	conDebug bool
	flipH    bool
	flipV    bool
	info     bool
	window   bool

	size = sizeFlag{800, 800}

	basedir string
	modelF  string
	pngOut  string
)

// sizeFlag parses "WIDTHxHEIGHT".
type sizeFlag struct {
	w, h int
}

func (s *sizeFlag) Set(v string) error {
	ws, hs, ok := strings.Cut(strings.ToLower(v), "x")
	if !ok {
		return fmt.Errorf("size %q is not WIDTHxHEIGHT", v)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return err
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("size %q must be positive", v)
	}
	s.w, s.h = w, h
	return nil
}

func (s *sizeFlag) String() string {
	return fmt.Sprintf("%dx%d", s.w, s.h)
}

func register(fs *flag.FlagSet) {
	fs.BoolVar(&conDebug, "condebug", false, "enable debug logging")
	fs.BoolVar(&flipH, "fliph", false, "mirror the decoded image left to right")
	fs.BoolVar(&flipV, "flipv", false, "mirror the decoded image top to bottom")
	fs.BoolVar(&info, "info", false, "only print the header of the image")
	fs.BoolVar(&window, "window", false, "show the result in a window")
	fs.BoolVar(&window, "w", false, "")

	fs.Var(&size, "size", "canvas size for -model, WIDTHxHEIGHT")

	fs.StringVar(&basedir, "basedir", "", "asset directory, pak files inside it are searched first")
	fs.StringVar(&modelF, "model", "", "draw the wireframe of this obj model")
	fs.StringVar(&pngOut, "png", "", "write the result as png to this file")
}

func init() {
	register(flag.CommandLine)
}

func BaseDirectory() string {
	return basedir
}

func Model() string {
	return modelF
}

func PNG() string {
	return pngOut
}

// Size returns the canvas size used when drawing a model.
func Size() (int, int) {
	return size.w, size.h
}

func ConsoleDebug() bool {
	return conDebug
}

func FlipHorizontal() bool {
	return flipH
}

func FlipVertical() bool {
	return flipV
}

func Info() bool {
	return info
}

func Window() bool {
	return window
}
