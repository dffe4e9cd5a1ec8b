// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package manifest reads a single named section of a project manifest
// (pyproject.toml) as raw key/value strings.
//
// Two dialects are supported:
//   - [DialectINI] (default) follows Python's ConfigParser where it matters
//     for autolog: section names are taken literally ("tool.autolog"), keys
//     are case-insensitive, [DEFAULT] keys apply to every section, a
//     trailing backslash is kept as text, duplicate sections or keys are
//     parse errors, and single and double quotes are preserved. Unlike
//     ConfigParser, values wrapped in backticks or triple double quotes are
//     unwrapped by the underlying ini parser.
//   - [DialectTOML] decodes the file as TOML and walks dotted section names
//     into nested tables. Strings come back unquoted, other scalars are
//     rendered with fmt.
//
// Absent keys are reported with [ErrKeyNotFound] and absent sections with
// [ErrSectionNotFound]. A missing file surfaces as an error wrapping
// fs.ErrNotExist. All other errors are parse failures.
package manifest
