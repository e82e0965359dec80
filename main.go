package main

import "github.com/frahmantamala/cashbook-management/cmd"

func main() {
	cmd.Execute()
}
