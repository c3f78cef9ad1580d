package main

import "github.com/chrisdamba/foodbrowse/cmd"

func main() {
	cmd.Execute()
}
