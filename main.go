package main

import "mend/cmd"

func main() {
	cmd.Execute()
}
