/*
Package stagger sequences staggered, dependency-driven animations.

A scene is a flat list of nodes. Each node may name a predecessor and a trigger
threshold: the node starts moving toward completion once its predecessor's
progress reaches that threshold (0.95 by default). Nodes without a predecessor
start immediately.

# Concept

The engine is split in two. The sequencer decides, from the previous snapshot
only, which idle nodes may start. A stepper (a spring by default) then moves the
running nodes one frame closer to 1.0. The host owns the frame cadence and turns
progress into pixels, bars or anything else.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/stagger"
	)

	func main() {
		// An empty path plays the built-in landing scene
		eng, err := stagger.New("")
		if err != nil {
			log.Fatal(err)
		}

		final, err := eng.Run(context.Background(), func(ctx context.Context, snap stagger.Snapshot) error {
			// Draw snap here
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Println("settled:", final.Settled())
	}
*/
package stagger
