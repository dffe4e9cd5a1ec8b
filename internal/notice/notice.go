// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notice prints advisory messages for the user. Notices are
// informational only; they never replace an error return.
package notice

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

//go:generate mockgen -source=notice.go -destination=../mock/notifier_mock.go -package=mock

// Notifier shows a one-line notice to the user.
type Notifier interface {
	Notify(msg string)
}

// Console writes notices to an output stream, one per line.
type Console struct {
	out   io.Writer
	paint *color.Color
}

// NewConsole returns a Console writing to out. When colored is false the
// notices are written as plain text regardless of the terminal.
func NewConsole(out io.Writer, colored bool) *Console {
	paint := color.New(color.FgYellow)
	if !colored {
		paint.DisableColor()
	}

	return &Console{out: out, paint: paint}
}

func (c *Console) Notify(msg string) {
	_, _ = fmt.Fprintln(c.out, c.paint.Sprint(msg))
}
