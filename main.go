package main

import "github.com/StinkyLord/gwt-launcher/cmd"

func main() {
	cmd.Execute()
}
