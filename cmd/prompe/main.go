package main

import "github.com/B1NYL/Promp-E-sub000/cmd/prompe/root"

func main() {
	root.Execute()
}
