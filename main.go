// SPDX-License-Identifier: MPL-2.0

// sitrep prints a reproducible report of the runtime environment and the
// versions of the components compiled into a binary.
package main

import cmd "sitrep-cli/cmd/sitrep"

func main() {
	cmd.Execute()
}
