// brandkit - build-time theme tooling for the VixSeg site
//
// brandkit derives the site colour palette from the company favicon and
// writes it out as JSON and CSS custom properties.
//
// Copyright (c) 2026 VixSeg
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/vixseg/brandkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
