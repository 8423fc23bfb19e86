package main

import "github.com/aerogrow/aerobuild/cmd"

func main() {
	cmd.Execute()
}
