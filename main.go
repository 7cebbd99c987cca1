package main

import "github/chapool/mvx-signer/cmd"

func main() {
	cmd.Execute()
}
