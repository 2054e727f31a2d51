package main

import "github.com/josephlewis42/rush/cmd"

func main() {
	cmd.Execute()
}
