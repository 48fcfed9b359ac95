// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package logger

import "log/slog"

// Standard field keys so log lines stay greppable across commands.
const (
	KeyPath     = "path"
	KeyOutput   = "output"
	KeyVersion  = "tex_version"
	KeyFormat   = "format"
	KeyWidth    = "width"
	KeyHeight   = "height"
	KeyRepairs  = "repairs"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

// Path returns a slog.Attr for an input path.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Output returns a slog.Attr for an output path.
func Output(p string) slog.Attr {
	return slog.String(KeyOutput, p)
}

// Err returns a slog.Attr for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
