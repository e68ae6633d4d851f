package main

import "github.com/final-project/speechprep/cli"

func main() {
	cli.Execute()
}
