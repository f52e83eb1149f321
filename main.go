package main

import "github.com/orgadmin/orgadmin-console/cmd"

func main() {
	cmd.Execute()
}
