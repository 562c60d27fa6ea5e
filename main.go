package main

import "limeal.fr/runclient/cmd"

func main() {
	cmd.Execute()
}
