package main

import "github.com/taskdesk/taskdesk/cmd"

func main() {
	cmd.Execute()
}
