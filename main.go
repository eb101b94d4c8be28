package main

import "github.com/pranav244872/cvreview/cmd"

func main() {
	cmd.Execute()
}
