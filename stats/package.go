// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats is a small set of descriptive statistics over rating samples.
package stats // import "github.com/moviestats/ratingstats/stats"
