package main

import "product-alternatives/cmd"

func main() {
	cmd.Execute()
}
