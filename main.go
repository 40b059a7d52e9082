package main

import "gear-auditor/cmd"

func main() {
	cmd.Execute()
}
