package main

import "github.com/oshokin/clockrobustus/cmd/clockd/cmd"

func main() {
	cmd.Execute()
}
