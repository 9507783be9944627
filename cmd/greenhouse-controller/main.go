package main

import "github.com/oshokin/greenhouse-controller/cmd/greenhouse-controller/cmd"

func main() {
	cmd.Execute()
}
