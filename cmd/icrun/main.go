// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Command icrun builds a small fixed demonstration term, reduces it,
// and prints the result. It exists to exercise ic.Context end to end
// (allocation, reduction, collapse, rendering, and snapshotting)
// outside of a test binary; it does not parse interaction calculus
// source (spec.md's surface-syntax non-goal still applies here).
package main

import (
	"flag"
	"log"
	"os"

	"github.com/icalc/ic"
	"github.com/icalc/ic/term"
)

func main() {
	configFile := flag.String("config", "", "Optional YAML options file (heapSize, stackSize)")
	snapshotFile := flag.String("snapshot", "", "Optional path to write a compressed heap snapshot after reduction")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	opts, err := loadOptions(*configFile)
	if err != nil {
		log.Fatalf("icrun: loading config: %v", err)
	}

	c, err := ic.NewContext(opts)
	if err != nil {
		log.Fatalf("icrun: creating context: %v", err)
	}
	defer c.Close()

	if *verbose {
		log.Printf("icrun: context %s, heap %d words, stack %d frames", c.ID(), opts.HeapSize, opts.StackSize)
	}

	result, err := runDemo(c)
	if err != nil {
		log.Fatalf("icrun: %v", err)
	}

	log.Printf("result: %s", c.Show(result))
	log.Printf("interactions: %d", c.Interactions())

	if *snapshotFile != "" {
		f, err := os.Create(*snapshotFile)
		if err != nil {
			log.Fatalf("icrun: opening snapshot file: %v", err)
		}
		defer f.Close()
		if err := c.Snapshot(f); err != nil {
			log.Fatalf("icrun: writing snapshot: %v", err)
		}
		if *verbose {
			log.Printf("icrun: wrote snapshot to %s", *snapshotFile)
		}
	}
}

// runDemo builds ((λx.x) (λy.y)) and collapses it -- the same E1
// scenario scenarios_test.go checks, kept here as a minimal smoke test
// of the whole pipeline rather than a second source of truth for it.
func runDemo(c *ic.Context) (term.Term, error) {
	id, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		return 0, err
	}
	other, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		return 0, err
	}
	app, err := c.App(id, other)
	if err != nil {
		return 0, err
	}
	return c.Collapse(app)
}
