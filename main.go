package main

import "github.com/saifk/ramadan-companion/cmd"

func main() {
	cmd.Execute()
}
