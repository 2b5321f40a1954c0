// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package text provides the text model behind the macro editor.
//
// A Buffer owns a single string. It can be replaced wholesale (Set),
// extended in place with copies of itself (Repeat), and truncated to its
// own length (Reset).
//
// # Repeat semantics
//
// Repeat(n) leaves the content equal to the original content repeated n
// times for n >= 1. Repeat(0) and Repeat(1) are both identity: the loop
// that builds the extra copies runs from 1 to n-1 and never executes for
// n <= 1. The original content is snapshotted once before any copy is
// built, so the result never doubles per iteration.
//
// # Usage
//
//	buf := text.New()
//	defer buf.Destroy()
//
//	buf.Set("ab")
//	buf.Repeat(3)
//	fmt.Println(buf.String()) // ababab
package text
