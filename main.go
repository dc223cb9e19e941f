// SPDX-License-Identifier: MPL-2.0

package main

import cmd "rebrand-cli/cmd/rebrand"

func main() {
	cmd.Execute()
}
