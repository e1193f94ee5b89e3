/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import "github.com/orien/ipamup/cmd"

func main() {
	cmd.Execute()
}
