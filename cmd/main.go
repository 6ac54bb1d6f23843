/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"os"

	"github.com/dc-tec/runner-fleet-provisioner/cmd/planner"
)

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("missing command (valid commands: planner)")
	}

	// Shift args so flag parsing works inside sub-functions.
	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "planner":
		return planner.Run(args)
	default:
		return fmt.Errorf("unknown command %q (valid commands: planner)", command)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
