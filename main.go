package main

import "github.com/tiliamara/worklog/cmd"

func main() {
	cmd.Execute()
}
