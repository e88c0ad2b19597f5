package main

import "github.com/oshokin/clockrobustus/cmd/clock-listener/cmd"

func main() {
	cmd.Execute()
}
