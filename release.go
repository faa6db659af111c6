// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build !debug

package libsa

// assertf and debugCheckSA compile to no-ops outside debug builds (see
// debug.go), so production builds never pay for the internal-consistency
// checks the original C source ran unconditionally with assert().

func assertf(cond bool, format string, args ...interface{}) {}

func assertPartialUnique(sa []int32) {}

func debugCheckSA(sa []int32, text []int32) {}
