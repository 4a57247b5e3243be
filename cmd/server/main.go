package main

import "dataapi/cmd/server/cmd"

func main() {
	cmd.Execute()
}
