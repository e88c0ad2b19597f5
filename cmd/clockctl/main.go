package main

import "github.com/oshokin/clockrobustus/cmd/clockctl/cmd"

func main() {
	cmd.Execute()
}
