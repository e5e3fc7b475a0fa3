package main

import "github.com/hubastard/xui/cmd/xuidemo/cmd"

func main() {
	cmd.Execute()
}
