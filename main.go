package main

import "github.com/quocvuong92/tassist/cmd"

func main() {
	cmd.Execute()
}
