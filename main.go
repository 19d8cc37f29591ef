package main

import "github.com/Sena-ops/lintreport/cmd"

func main() {
	cmd.Execute()
}
