// SPDX-License-Identifier: MPL-2.0

// quilldoc validates quill code snippets embedded in markdown documentation.
package main

import cmd "quilldoc/cmd/quilldoc"

func main() {
	cmd.Execute()
}
