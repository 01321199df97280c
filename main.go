// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"

	"github.com/liusijiaaa/test-render/commandline"
	"github.com/liusijiaaa/test-render/conlog"
	"github.com/liusijiaaa/test-render/filesystem"
	"github.com/liusijiaaa/test-render/image"
	"github.com/liusijiaaa/test-render/model"
	"github.com/liusijiaaa/test-render/render"
	"github.com/liusijiaaa/test-render/texture"
	"github.com/liusijiaaa/test-render/window"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file.tga]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	log.SetFlags(0)
	conlog.SetDebug(commandline.ConsoleDebug())
	if err := run(flag.Args()); err != nil {
		conlog.Printf("%s", describe(err))
		os.Exit(1)
	}
}

// describe renders decode failures with their kind and position.
func describe(err error) string {
	var de *image.Error
	if errors.As(err, &de) {
		return fmt.Sprintf("error: %v (kind: %v, offset: %d)", err, de.Kind, de.Offset)
	}
	return fmt.Sprintf("error: %v", errors.Cause(err))
}

func run(args []string) error {
	if dir := commandline.BaseDirectory(); dir != "" {
		if err := filesystem.Mount(dir); err != nil {
			return err
		}
		defer filesystem.Unmount()
		conlog.DPrintf("search path: %v", filesystem.Search())
	}

	if commandline.Info() {
		if len(args) != 1 {
			return errors.New("-info needs exactly one image")
		}
		return printInfo(args[0])
	}

	img, name, err := source(args)
	if err != nil {
		return err
	}
	defer image.Release(img)

	if commandline.FlipVertical() {
		image.FlipVertical(img)
	}
	if commandline.FlipHorizontal() {
		image.FlipHorizontal(img)
	}

	if out := commandline.PNG(); out != "" {
		if err := image.WritePNG(out, img); err != nil {
			return errors.Wrap(err, "write png")
		}
		conlog.Printf("wrote %s", out)
	}

	if commandline.Window() {
		return view(name, img)
	}
	return nil
}

// source decodes the image argument or draws the model given by -model.
func source(args []string) (*image.Image, string, error) {
	if m := commandline.Model(); m != "" {
		w, h := commandline.Size()
		img, err := image.New(w, h, 3)
		if err != nil {
			return nil, "", err
		}
		mdl, err := model.Load(m)
		if err != nil {
			return nil, "", err
		}
		render.DrawModel(img, mdl, render.White)
		conlog.Printf("%s: %d faces drawn on %dx%d", m, mdl.NumFaces(), w, h)
		return img, m, nil
	}
	if len(args) != 1 {
		flag.Usage()
		return nil, "", errors.New("need exactly one image or -model")
	}
	img, err := image.Load(args[0])
	if err != nil {
		return nil, "", err
	}
	conlog.Printf("%s: %dx%d, %d channels, pitch %d", args[0], img.Width, img.Height, img.Channels, img.Pitch)
	return img, args[0], nil
}

func printInfo(name string) error {
	var (
		f   filesystem.File
		err error
	)
	if filesystem.Mounted() {
		f, err = filesystem.Open(name)
	} else {
		f, err = os.Open(name)
	}
	if err != nil {
		return err
	}
	defer f.Close()
	c, err := image.DecodeConfig(f)
	if err != nil {
		return err
	}
	conlog.Printf("%s: %v %dx%d, %d channels, top-to-bottom %v, right-to-left %v",
		name, c.Type, c.Width, c.Height, c.Channels, c.TopToBottom(), c.RightToLeft())
	return nil
}

// view shows img until the window is closed.
func view(name string, img *image.Image) error {
	var err error
	mainthread.Run(func() {
		tex := texture.NewManager().Put(name, img)
		mainthread.Call(func() {
			err = window.Create(name, img.Width, img.Height)
		})
		if err != nil {
			return
		}
		defer mainthread.Call(window.Destroy)
		for {
			closed := false
			mainthread.Call(func() {
				window.PollEvents()
				closed = window.ShouldClose()
				if !closed {
					err = window.DrawImage(tex)
				}
			})
			if closed || err != nil {
				return
			}
		}
	})
	return err
}
