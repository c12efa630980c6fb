/*
Copyright © 2026 AssignWatch <dev@assignwatch.app>
*/
package main

import "github.com/assignwatch/assignwatch/cmd"

func main() {
	cmd.Execute()
}
