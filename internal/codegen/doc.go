// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codegen generates Fields methods from struct tags.
//
// A struct opts in by tagging at least one exported attribute:
//
//	type Message struct {
//		ID   int64
//		Text string `crypt:"encrypted"`
//	}
//
// Every exported attribute of such a struct is listed in the generated
// method. string and *string attributes get accessors; any other type is
// listed as a scalar. A crypt tag on an attribute that is not string or
// *string is an error, so a misplaced marker fails the build step instead
// of being silently ignored at runtime.
package codegen
